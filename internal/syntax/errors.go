package syntax

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ParseError.
type ErrorKind int

const (
	// UnclosedGroup: a "(" has no matching ")" before the end of the pattern.
	UnclosedGroup ErrorKind = iota + 1
	// DisallowedCharacter: a character is not permitted by the alphabet.
	DisallowedCharacter
	// UnmatchedGroupEnd: a ")" appears with no open group.
	UnmatchedGroupEnd
)

// Sentinel errors matched by ParseError.Is.
var (
	ErrUnclosedGroup       = errors.New("unclosed group")
	ErrDisallowedCharacter = errors.New("disallowed character")
	ErrUnmatchedGroupEnd   = errors.New("unmatched group end")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnclosedGroup:
		return ErrUnclosedGroup
	case DisallowedCharacter:
		return ErrDisallowedCharacter
	case UnmatchedGroupEnd:
		return ErrUnmatchedGroupEnd
	}
	return nil
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError reports why a pattern was rejected. Value is the offending
// token value and Offset its byte offset in the pattern.
type ParseError struct {
	Kind   ErrorKind
	Value  string
	Offset int
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case DisallowedCharacter:
		return fmt.Sprintf("character %q at offset %d is not in the alphabet", e.Value, e.Offset)
	case UnclosedGroup:
		return fmt.Sprintf("unclosed group opened at offset %d", e.Offset)
	case UnmatchedGroupEnd:
		return fmt.Sprintf("unmatched %q at offset %d", e.Value, e.Offset)
	}
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// Is makes errors.Is(err, ErrUnclosedGroup) and friends work.
func (e *ParseError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
