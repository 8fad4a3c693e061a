package syntax

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Operators lists the characters that are lexed as single-character tokens.
const Operators = "()+*"

// patternLexer splits a pattern into operator characters and maximal runs of
// everything else. The two rules cover every input, so lexing cannot fail.
var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Operator", Pattern: `[()+*]`},
	{Name: "Char", Pattern: `[^()+*]+`},
})

var (
	operatorType = patternLexer.Symbols()["Operator"]
	charType     = patternLexer.Symbols()["Char"]
)

// IsOperator reports whether r is one of the operator characters.
func IsOperator(r rune) bool {
	return strings.ContainsRune(Operators, r)
}

// Tokenize converts a pattern into its token sequence. The sequence always
// ends with an End token whose offset is the pattern length; an empty or
// whitespace-only pattern yields only that End token, at offset 0.
func Tokenize(pattern string) []Token {
	if strings.TrimSpace(pattern) == "" {
		return []Token{{Value: EndValue, Kind: End, Offset: 0}}
	}

	lex, err := patternLexer.LexString("", pattern)
	if err != nil {
		panic(fmt.Sprintf("syntax: lexer setup failed: %v", err))
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		panic(fmt.Sprintf("syntax: unexpected lexer error on %q: %v", pattern, err))
	}

	tokens := make([]Token, 0, len(raw))
	for _, t := range raw {
		switch t.Type {
		case operatorType:
			tokens = append(tokens, Token{Value: t.Value, Kind: operatorKind(t.Value), Offset: t.Pos.Offset})
		case charType:
			tokens = append(tokens, Token{Value: t.Value, Kind: Char, Offset: t.Pos.Offset})
		}
	}
	return append(tokens, Token{Value: EndValue, Kind: End, Offset: len(pattern)})
}

func operatorKind(op string) Kind {
	switch op {
	case "(":
		return GroupStart
	case ")":
		return GroupEnd
	case "+":
		return OrOperator
	default:
		return GreedyOperator
	}
}
