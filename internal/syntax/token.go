package syntax

import "fmt"

// Kind identifies the lexical class of a Token.
type Kind int

const (
	Char           Kind = iota // run of literal characters
	GroupStart                 // (
	GroupEnd                   // )
	OrOperator                 // +
	GreedyOperator             // *
	End                        // synthetic end of pattern
)

// EndValue is the value carried by the synthetic End token.
const EndValue = "end"

var kindNames = [...]string{
	Char:           "Char",
	GroupStart:     "GroupStart",
	GroupEnd:       "GroupEnd",
	OrOperator:     "OrOperator",
	GreedyOperator: "GreedyOperator",
	End:            "End",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Token is a lexed unit of a pattern. Offset is the byte offset of the
// token's first character in the source pattern.
type Token struct {
	Value  string `json:"value"`
	Kind   Kind   `json:"kind"`
	Offset int    `json:"offset"`
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Value, t.Offset)
}
