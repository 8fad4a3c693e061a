package sregex

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateOptionsValidate(t *testing.T) {
	valid := GenerateOptions{Pattern: "a*", Name: "Stars", OutputFile: "stars.go", Package: "stars"}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(o *GenerateOptions)
	}{
		{"empty name", func(o *GenerateOptions) { o.Name = "" }},
		{"bad name", func(o *GenerateOptions) { o.Name = "my matcher" }},
		{"empty output", func(o *GenerateOptions) { o.OutputFile = "" }},
		{"empty package", func(o *GenerateOptions) { o.Package = "" }},
		{"bad package", func(o *GenerateOptions) { o.Package = "my-pkg" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := valid
			tt.mutate(&o)
			assert.Error(t, o.Validate())
			assert.Error(t, Generate(o))
		})
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "pairs.go")

	err := Generate(GenerateOptions{
		Pattern:          "(ab)*",
		Name:             "pairs",
		OutputFile:       out,
		Package:          "pairs",
		GenerateTestFile: true,
		TestFileInputs:   []string{"aba", "abab"},
	})
	require.NoError(t, err)

	src, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(src), "Code generated by sregex for pattern: (ab)*. DO NOT EDIT.")
	assert.Contains(t, string(src), "type Pairs struct{}")

	testSrc, err := os.ReadFile(filepath.Join(dir, "pairs_test.go"))
	require.NoError(t, err)
	assert.Contains(t, string(testSrc), `{"aba", false}`)
	assert.Contains(t, string(testSrc), `{"abab", true}`)
	assert.Equal(t, 1, strings.Count(string(testSrc), `{"abab", true}`), "inputs are deduplicated")
}

func TestGenerateParseError(t *testing.T) {
	err := Generate(GenerateOptions{
		Pattern:    "(ab",
		Name:       "Broken",
		OutputFile: filepath.Join(t.TempDir(), "broken.go"),
		Package:    "broken",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse pattern")

	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.ErrorIs(t, err, ErrUnclosedGroup)
}

func TestTestFilePath(t *testing.T) {
	assert.Equal(t, "out/m_test.go", testFilePath("out/m.go"))
	assert.Equal(t, "m_test.go", testFilePath("m"))
}
