package sregex

import (
	"regexp"
	"testing"

	"github.com/dlclark/regexp2"
)

const benchPattern = "(a+b)*c(ab)*"

var benchInputs = []string{
	"c",
	"ababbabac",
	"abababababababcababab",
	"ababababababababababababababab",
	"cx",
	"",
}

func BenchmarkAcceptsNFA(b *testing.B) {
	re := MustCompile(benchPattern)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range benchInputs {
			re.Accepts(input)
		}
	}
}

func BenchmarkAcceptsDFA(b *testing.B) {
	d, err := MustCompile(benchPattern).DFA()
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range benchInputs {
			d.Accepts(input)
		}
	}
}

func BenchmarkAcceptsStdRegexp(b *testing.B) {
	re := regexp.MustCompile(`^(?:a|b)*c(?:ab)*$`)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range benchInputs {
			re.MatchString(input)
		}
	}
}

func BenchmarkAcceptsRegexp2(b *testing.B) {
	re := regexp2.MustCompile(`\A(?:a|b)*c(?:ab)*\z`, regexp2.None)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for _, input := range benchInputs {
			re.MatchString(input)
		}
	}
}

func BenchmarkSampleMatches(b *testing.B) {
	re := MustCompile(benchPattern)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		re.SampleMatches()
	}
}

func BenchmarkCompile(b *testing.B) {
	for i := 0; i < b.N; i++ {
		MustCompile(benchPattern)
	}
}
