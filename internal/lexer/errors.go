package lexer

import (
	"fmt"

	"github.com/zamotany/lunatic/internal/position"
)

// ErrorCategory classifies lexical errors
type ErrorCategory int

const (
	CategoryUnterminatedString          ErrorCategory = iota // short string closed by newline or EOF
	CategoryUnterminatedLongString                           // [[ or --[[ without matching close
	CategoryUndeterminedStringDelimiter                      // [= not followed by [
	CategoryUnknownCharacter                                 // character outside the Lua alphabet
)

var categoryNames = map[ErrorCategory]string{
	CategoryUnterminatedString:          "UnterminatedString",
	CategoryUnterminatedLongString:      "UnterminatedLongString",
	CategoryUndeterminedStringDelimiter: "UndeterminedStringDelimiter",
	CategoryUnknownCharacter:            "UnknownCharacter",
}

// String returns the category name.
func (c ErrorCategory) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(c))
}

// LexicalError is returned by the lexer. Scanning stops at the first one.
type LexicalError struct {
	Category ErrorCategory
	Message  string
	Line     int
	Column   int
	Offset   int
	Char     rune // offending or opening character
}

// Error implements the error interface.
func (e *LexicalError) Error() string {
	return fmt.Sprintf("Lexical error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// Pos returns where the error was detected.
func (e *LexicalError) Pos() position.Position {
	return position.Position{Line: e.Line, Column: e.Column, Offset: e.Offset}
}
