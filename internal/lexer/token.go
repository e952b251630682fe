package lexer

import (
	"fmt"

	"github.com/zamotany/lunatic/internal/position"
)

// TokenType represents the type of a token
type TokenType int

// String returns a string representation of the token type
func (tt TokenType) String() string {
	if name, ok := tokenNames[tt]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(tt))
}

// Token types
const (
	TokenEOF TokenType = iota

	// Punctuation
	TokenDot       // .
	TokenComma     // ,
	TokenColon     // :
	TokenSemicolon // ;

	// Comparison and assignment
	TokenAssign // =
	TokenEq     // ==
	TokenNe     // ~=
	TokenLt     // <
	TokenLe     // <=
	TokenShl    // <<
	TokenGt     // >
	TokenGe     // >=
	TokenShr    // >>

	// Arithmetic and bitwise
	TokenPlus      // +
	TokenMinus     // -
	TokenStar      // *
	TokenSlash     // /
	TokenFloorDiv  // //
	TokenCaret     // ^
	TokenPercent   // %
	TokenAmpersand // &
	TokenTilde     // ~
	TokenPipe      // |
	TokenHash      // #

	// Brackets
	TokenLBracket // [
	TokenRBracket // ]
	TokenLParen   // (
	TokenRParen   // )
	TokenLBrace   // {
	TokenRBrace   // }

	TokenConcat // ..
	TokenVararg // ...

	// Literals
	TokenIdentifier
	TokenString
	TokenNumeral

	// Keywords
	TokenAnd
	TokenBreak
	TokenDo
	TokenElse
	TokenElseif
	TokenEnd
	TokenFalse
	TokenFor
	TokenFunction
	TokenGoto
	TokenIf
	TokenIn
	TokenLocal
	TokenNil
	TokenNot
	TokenOr
	TokenRepeat
	TokenReturn
	TokenThen
	TokenTrue
	TokenUntil
	TokenWhile
)

// tokenNames provides string representations for token types
var tokenNames = map[TokenType]string{
	TokenEOF: "EOF",

	TokenDot:       "DOT",
	TokenComma:     "COMMA",
	TokenColon:     "COLON",
	TokenSemicolon: "SEMICOLON",

	TokenAssign: "ASSIGN",
	TokenEq:     "EQ",
	TokenNe:     "NE",
	TokenLt:     "LT",
	TokenLe:     "LE",
	TokenShl:    "SHL",
	TokenGt:     "GT",
	TokenGe:     "GE",
	TokenShr:    "SHR",

	TokenPlus:      "PLUS",
	TokenMinus:     "MINUS",
	TokenStar:      "STAR",
	TokenSlash:     "SLASH",
	TokenFloorDiv:  "FLOOR_DIV",
	TokenCaret:     "CARET",
	TokenPercent:   "PERCENT",
	TokenAmpersand: "AMPERSAND",
	TokenTilde:     "TILDE",
	TokenPipe:      "PIPE",
	TokenHash:      "HASH",

	TokenLBracket: "LBRACKET",
	TokenRBracket: "RBRACKET",
	TokenLParen:   "LPAREN",
	TokenRParen:   "RPAREN",
	TokenLBrace:   "LBRACE",
	TokenRBrace:   "RBRACE",

	TokenConcat: "CONCAT",
	TokenVararg: "VARARG",

	TokenIdentifier: "IDENTIFIER",
	TokenString:     "STRING",
	TokenNumeral:    "NUMERAL",

	TokenAnd:      "AND",
	TokenBreak:    "BREAK",
	TokenDo:       "DO",
	TokenElse:     "ELSE",
	TokenElseif:   "ELSEIF",
	TokenEnd:      "END",
	TokenFalse:    "FALSE",
	TokenFor:      "FOR",
	TokenFunction: "FUNCTION",
	TokenGoto:     "GOTO",
	TokenIf:       "IF",
	TokenIn:       "IN",
	TokenLocal:    "LOCAL",
	TokenNil:      "NIL",
	TokenNot:      "NOT",
	TokenOr:       "OR",
	TokenRepeat:   "REPEAT",
	TokenReturn:   "RETURN",
	TokenThen:     "THEN",
	TokenTrue:     "TRUE",
	TokenUntil:    "UNTIL",
	TokenWhile:    "WHILE",
}

// keywords maps reserved words to their token types. "elseif" is listed so
// that the word written in one piece scans the same as the merged form.
var keywords = map[string]TokenType{
	"and":      TokenAnd,
	"break":    TokenBreak,
	"do":       TokenDo,
	"else":     TokenElse,
	"elseif":   TokenElseif,
	"end":      TokenEnd,
	"false":    TokenFalse,
	"for":      TokenFor,
	"function": TokenFunction,
	"goto":     TokenGoto,
	"if":       TokenIf,
	"in":       TokenIn,
	"local":    TokenLocal,
	"nil":      TokenNil,
	"not":      TokenNot,
	"or":       TokenOr,
	"repeat":   TokenRepeat,
	"return":   TokenReturn,
	"then":     TokenThen,
	"true":     TokenTrue,
	"until":    TokenUntil,
	"while":    TokenWhile,
}

// IsKeyword reports whether tt is a reserved word.
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenAnd && tt <= TokenWhile
}

// Token is a classified lexical unit. Tokens are never modified after the
// lexer returns them.
type Token struct {
	Type    TokenType
	Lexeme  string // raw source text
	Offset  int    // 0-based byte offset of the lexeme
	Literal string // decoded payload for strings and numerals
	Line    int    // 1-based line the lexeme starts on
	Column  int    // 1-based column the lexeme starts on
}

// HasLiteral reports whether the token carries a decoded payload.
func (t *Token) HasLiteral() bool {
	return t.Type == TokenString || t.Type == TokenNumeral
}

// Pos returns the start position of the token.
func (t *Token) Pos() position.Position {
	return position.Position{Line: t.Line, Column: t.Column, Offset: t.Offset}
}

// Span returns the source range covered by the lexeme.
func (t *Token) Span() position.Span {
	start := t.Pos()
	return position.Span{Start: start, End: start.Advance(t.Lexeme)}
}

// String returns a string representation of the token
func (t Token) String() string {
	return fmt.Sprintf("{Type: %s, Lexeme: %q, Line: %d, Column: %d}",
		t.Type, t.Lexeme, t.Line, t.Column)
}
