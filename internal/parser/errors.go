package parser

import (
	"errors"
	"fmt"

	"github.com/zamotany/lunatic/internal/lexer"
	"github.com/zamotany/lunatic/internal/position"
)

// ErrorKind classifies parse errors
type ErrorKind int

const (
	UnexpectedToken         ErrorKind = iota // a token matched no alternative
	UnexpectedEndOfTokens                    // input ran out mid-production
	MissingClosingDelimiter                  // ) ] or } expected
	MissingOperand                           // operator without a right-hand expression
	MissingFieldSeparator                    // = expected after [key] in a table
	NestingTooDeep                           // Options.MaxDepth exceeded
	UnsupportedOperator                      // operator not available in the target dialect
)

var kindNames = map[ErrorKind]string{
	UnexpectedToken:         "UnexpectedToken",
	UnexpectedEndOfTokens:   "UnexpectedEndOfTokens",
	MissingClosingDelimiter: "MissingClosingDelimiter",
	MissingOperand:          "MissingOperand",
	MissingFieldSeparator:   "MissingFieldSeparator",
	NestingTooDeep:          "NestingTooDeep",
	UnsupportedOperator:     "UnsupportedOperator",
}

// String returns the kind name.
func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(k))
}

// ParseError represents a parsing error. Token is the token found where the
// parser gave up; at end of input it is the EOF token.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Token   *lexer.Token
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Parse error at %s: %s", e.Pos(), e.Message)
}

// Pos returns the position of the offending token.
func (e *ParseError) Pos() position.Position {
	return e.Token.Pos()
}

// IsIncomplete reports whether err was caused by input that stopped too
// early, so that appending more text could make it parse.
func IsIncomplete(err error) bool {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		switch parseErr.Kind {
		case UnexpectedEndOfTokens:
			return true
		case MissingClosingDelimiter, MissingOperand, MissingFieldSeparator:
			return parseErr.Token.Type == lexer.TokenEOF
		}
		return false
	}

	var lexErr *lexer.LexicalError
	if errors.As(err, &lexErr) {
		return lexErr.Category == lexer.CategoryUnterminatedLongString
	}

	return false
}

func (p *Parser) errorAt(kind ErrorKind, tok *lexer.Token, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Message: fmt.Sprintf(format, args...), Token: tok}
}

// unexpected reports tok where something else was expected. Running into
// EOF is always UnexpectedEndOfTokens.
func (p *Parser) unexpected(tok *lexer.Token, expected string) *ParseError {
	if tok.Type == lexer.TokenEOF {
		return p.errorAt(UnexpectedEndOfTokens, tok, "unexpected end of input, expected %s", expected)
	}
	return p.errorAt(UnexpectedToken, tok, "unexpected %s, expected %s", describe(tok), expected)
}

func describe(tok *lexer.Token) string {
	if tok.Type == lexer.TokenEOF {
		return "end of input"
	}
	return "`" + tok.Lexeme + "`"
}
