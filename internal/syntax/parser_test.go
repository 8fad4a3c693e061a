package syntax

import (
	"bytes"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func char(v string) *Character     { return &Character{Value: v} }
func starChar(v string) *Character { return &Character{Value: v, Quantifier: Star()} }
func or(l, r Node) *Disjunction    { return &Disjunction{Left: l, Right: r} }
func group(nodes ...Node) *Group   { return &Group{Expression: nodes} }
func starGroup(nodes ...Node) *Group {
	return &Group{Expression: nodes, Quantifier: Star()}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		alphabet []string
		want     []Node
	}{
		{name: "empty", pattern: "", want: nil},
		{name: "literal run", pattern: "abc", want: []Node{char("abc")}},
		{name: "split by alphabet", pattern: "abc", alphabet: []string{"a", "b", "c"},
			want: []Node{char("a"), char("b"), char("c")}},
		{name: "alternation", pattern: "a+b", want: []Node{or(char("a"), char("b"))}},
		{name: "left associative alternation", pattern: "a+b+c",
			want: []Node{or(or(char("a"), char("b")), char("c"))}},
		{name: "star binds the whole run", pattern: "ab*", want: []Node{starChar("ab")}},
		{name: "star binds last rune with alphabet", pattern: "ab*", alphabet: []string{"a", "b"},
			want: []Node{char("a"), starChar("b")}},
		{name: "star binds right operand", pattern: "a+b*",
			want: []Node{or(char("a"), starChar("b"))}},
		{name: "repeated star", pattern: "a**", want: []Node{starChar("a")}},
		{name: "starred group", pattern: "(ab)*", want: []Node{starGroup(char("ab"))}},
		{name: "starred alternation group", pattern: "(a+b)*c",
			want: []Node{starGroup(or(char("a"), char("b"))), char("c")}},
		{name: "nested groups", pattern: "a(b(c))",
			want: []Node{char("a"), group(char("b"), group(char("c")))}},
		{name: "group as right operand", pattern: "a+(bc)",
			want: []Node{or(char("a"), group(char("bc")))}},
		{name: "empty group", pattern: "a()b", want: []Node{char("a"), char("b")}},
		{name: "dangling alternation", pattern: "a+", want: []Node{char("a")}},
		{name: "leading alternation", pattern: "+a", want: []Node{char("a")}},
		{name: "doubled alternation", pattern: "a++b", want: []Node{or(char("a"), char("b"))}},
		{name: "empty alphabet entries ignored", pattern: "xyz", alphabet: []string{""},
			want: []Node{char("xyz")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.pattern, tt.alphabet)
			require.NoError(t, err)
			want := &Regex{Body: tt.want}
			if diff := cmp.Diff(want, res.AST, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", tt.pattern, diff)
			}
		})
	}
}

func TestParseKeepsTokens(t *testing.T) {
	res, err := Parse("(a)", nil)
	require.NoError(t, err)
	assert.Equal(t, Tokenize("(a)"), res.Tokens)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		pattern  string
		alphabet []string
		kind     ErrorKind
		sentinel error
		value    string
		offset   int
	}{
		{"unclosed group", "(ab", nil, UnclosedGroup, ErrUnclosedGroup, "(", 0},
		{"innermost unclosed group", "a(b(c)", nil, UnclosedGroup, ErrUnclosedGroup, "(", 1},
		{"unmatched group end", "ab)", nil, UnmatchedGroupEnd, ErrUnmatchedGroupEnd, ")", 2},
		{"disallowed character", "abc", []string{"a", "b"}, DisallowedCharacter, ErrDisallowedCharacter, "c", 2},
		{"disallowed inside group", "a(c", []string{"a", "b"}, DisallowedCharacter, ErrDisallowedCharacter, "c", 2},
		{"disallowed multibyte", "aéa", []string{"a"}, DisallowedCharacter, ErrDisallowedCharacter, "é", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Parse(tt.pattern, tt.alphabet)
			require.Error(t, err)
			assert.Nil(t, res)
			assert.True(t, errors.Is(err, tt.sentinel), "errors.Is(%v, %v)", err, tt.sentinel)

			var perr *ParseError
			require.True(t, errors.As(err, &perr))
			assert.Equal(t, tt.kind, perr.Kind)
			assert.Equal(t, tt.value, perr.Value)
			assert.Equal(t, tt.offset, perr.Offset)
			assert.NotEmpty(t, perr.Error())
		})
	}
}

func TestParseErrorIsExclusive(t *testing.T) {
	_, err := Parse("(a", nil)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrDisallowedCharacter))
	assert.False(t, errors.Is(err, ErrUnmatchedGroupEnd))
}

func TestRegexString(t *testing.T) {
	tests := []struct {
		pattern  string
		alphabet []string
		want     string
	}{
		{"", nil, ""},
		{"abc", nil, "abc"},
		{"(a+b)*c", nil, "(a+b)*c"},
		{"ab*", nil, "(ab)*"},
		{"ab*", []string{"a", "b"}, "ab*"},
		{"a+b*", nil, "a+b*"},
		{"a(b(c))", nil, "a(b(c))"},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			res, err := Parse(tt.pattern, tt.alphabet)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.AST.String())
		})
	}
}

func TestDump(t *testing.T) {
	res, err := Parse("(a+b)*c", nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	Dump(&buf, res.AST)

	want := "Regex\n" +
		"  Group *\n" +
		"    Disjunction\n" +
		"      Character \"a\"\n" +
		"      Character \"b\"\n" +
		"  Character \"c\"\n"
	assert.Equal(t, want, buf.String())
}
