// Package codegen provides code generation helpers and constants.
package codegen

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Variable names used in generated code
const (
	InputName    = "input"
	StateName    = "state"
	NextName     = "next"
	RuneName     = "r"
	SizeName     = "size"
	ReceiverName = "m"
)

// StartName returns the name of the constant holding a matcher's initial
// state.
func StartName(matcher string) string {
	return LowerFirst(matcher) + "Start"
}

// CompiledName returns the name of the ready-to-use matcher variable.
func CompiledName(matcher string) string {
	return "Compiled" + UpperFirst(matcher)
}

// StateComment describes a state in generated comments.
func StateComment(id int, final bool) string {
	if final {
		return fmt.Sprintf("state %d (final)", id)
	}
	return fmt.Sprintf("state %d", id)
}

// LowerFirst converts the first character of a string to lowercase.
func LowerFirst(s string) string {
	return mapFirst(s, unicode.ToLower)
}

// UpperFirst converts the first character of a string to uppercase.
func UpperFirst(s string) string {
	return mapFirst(s, unicode.ToUpper)
}

func mapFirst(s string, f func(rune) rune) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(f(r)) + s[size:]
}
