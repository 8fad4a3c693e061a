package syntax

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    []Token
	}{
		{
			name:    "empty",
			pattern: "",
			want:    []Token{{Value: EndValue, Kind: End, Offset: 0}},
		},
		{
			name:    "whitespace only",
			pattern: "   ",
			want:    []Token{{Value: EndValue, Kind: End, Offset: 0}},
		},
		{
			name:    "literal run",
			pattern: "abc",
			want: []Token{
				{Value: "abc", Kind: Char, Offset: 0},
				{Value: EndValue, Kind: End, Offset: 3},
			},
		},
		{
			name:    "all operators",
			pattern: "a(bc)+d*",
			want: []Token{
				{Value: "a", Kind: Char, Offset: 0},
				{Value: "(", Kind: GroupStart, Offset: 1},
				{Value: "bc", Kind: Char, Offset: 2},
				{Value: ")", Kind: GroupEnd, Offset: 4},
				{Value: "+", Kind: OrOperator, Offset: 5},
				{Value: "d", Kind: Char, Offset: 6},
				{Value: "*", Kind: GreedyOperator, Offset: 7},
				{Value: EndValue, Kind: End, Offset: 8},
			},
		},
		{
			name:    "byte offsets",
			pattern: "é+a",
			want: []Token{
				{Value: "é", Kind: Char, Offset: 0},
				{Value: "+", Kind: OrOperator, Offset: 2},
				{Value: "a", Kind: Char, Offset: 3},
				{Value: EndValue, Kind: End, Offset: 4},
			},
		},
		{
			name:    "spaces are characters",
			pattern: "a b",
			want: []Token{
				{Value: "a b", Kind: Char, Offset: 0},
				{Value: EndValue, Kind: End, Offset: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.pattern)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestIsOperator(t *testing.T) {
	for _, r := range Operators {
		if !IsOperator(r) {
			t.Errorf("IsOperator(%q) = false, want true", r)
		}
	}
	for _, r := range "ab|?. " {
		if IsOperator(r) {
			t.Errorf("IsOperator(%q) = true, want false", r)
		}
	}
}

func TestKindString(t *testing.T) {
	if got := OrOperator.String(); got != "OrOperator" {
		t.Errorf("OrOperator.String() = %q", got)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", got)
	}
}
