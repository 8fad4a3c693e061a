// Package codegen emits Go source for matchers compiled from patterns.
package codegen

import "fmt"

// Variable names used in generated code
const (
	InputName = "input"
	StateName = "state"
	RuneName  = "r"
	SizeName  = "size"
)

// StateComment returns the comment placed above a generated state case.
func StateComment(id int, accepting bool) string {
	if accepting {
		return fmt.Sprintf("State %d (accepting)", id)
	}
	return fmt.Sprintf("State %d", id)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]|0x20) + s[1:]
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]&^0x20) + s[1:]
}
