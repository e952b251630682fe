// Package lexer implements the Lua lexical analyzer.
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/zamotany/lunatic/internal/dialect"
)

// Options configure a Lexer.
type Options struct {
	// Dialect selects the reserved word set. The zero value is Lua 5.4.
	Dialect dialect.Dialect
}

// Lexer turns Lua source text into tokens.
type Lexer struct {
	input string
	opts  Options

	tokens []Token

	position int // offset of the next unread byte
	line     int // line of the next unread byte
	column   int // column of the next unread byte

	// start of the lexeme being scanned
	start       int
	startLine   int
	startColumn int
}

// New creates a new lexer for input using the default dialect.
func New(input string) *Lexer {
	return NewWithOptions(input, Options{})
}

// NewWithOptions creates a new lexer for input.
func NewWithOptions(input string, opts Options) *Lexer {
	return &Lexer{input: input, opts: opts}
}

// Scan tokenizes source with the default dialect.
func Scan(source string) ([]Token, error) {
	return New(source).ScanTokens()
}

// ScanWithOptions tokenizes source with opts.
func ScanWithOptions(source string, opts Options) ([]Token, error) {
	return NewWithOptions(source, opts).ScanTokens()
}

// ScanTokens scans the whole input. The returned slice always ends with an
// EOF token whose offset is the input length. Calling it again rescans from
// the beginning and returns a fresh slice.
func (l *Lexer) ScanTokens() ([]Token, error) {
	l.tokens = make([]Token, 0, len(l.input)/3+1)
	l.position = 0
	l.line = 1
	l.column = 1

	for !l.isEOF() {
		l.markStart()
		if err := l.scanToken(); err != nil {
			return nil, err
		}
	}

	l.markStart()
	l.addToken(TokenEOF, "")

	return l.tokens, nil
}

func (l *Lexer) scanToken() error {
	ch := l.readChar()

	switch ch {
	case ' ', '\t', '\r', '\n':
		// whitespace
	case '.':
		if l.match('.') {
			if l.match('.') {
				l.addToken(TokenVararg, "")
			} else {
				l.addToken(TokenConcat, "")
			}
		} else {
			l.addToken(TokenDot, "")
		}
	case ',':
		l.addToken(TokenComma, "")
	case ':':
		l.addToken(TokenColon, "")
	case ';':
		l.addToken(TokenSemicolon, "")
	case '=':
		l.addEither('=', TokenEq, TokenAssign)
	case '<':
		switch {
		case l.match('='):
			l.addToken(TokenLe, "")
		case l.match('<'):
			l.addToken(TokenShl, "")
		default:
			l.addToken(TokenLt, "")
		}
	case '>':
		switch {
		case l.match('='):
			l.addToken(TokenGe, "")
		case l.match('>'):
			l.addToken(TokenShr, "")
		default:
			l.addToken(TokenGt, "")
		}
	case '~':
		l.addEither('=', TokenNe, TokenTilde)
	case '/':
		l.addEither('/', TokenFloorDiv, TokenSlash)
	case '+':
		l.addToken(TokenPlus, "")
	case '-':
		if l.match('-') {
			return l.skipComment()
		}
		l.addToken(TokenMinus, "")
	case '*':
		l.addToken(TokenStar, "")
	case '^':
		l.addToken(TokenCaret, "")
	case '%':
		l.addToken(TokenPercent, "")
	case '&':
		l.addToken(TokenAmpersand, "")
	case '|':
		l.addToken(TokenPipe, "")
	case '#':
		l.addToken(TokenHash, "")
	case '[':
		return l.scanBracket()
	case ']':
		l.addToken(TokenRBracket, "")
	case '(':
		l.addToken(TokenLParen, "")
	case ')':
		l.addToken(TokenRParen, "")
	case '{':
		l.addToken(TokenLBrace, "")
	case '}':
		l.addToken(TokenRBrace, "")
	case '\'', '"':
		return l.scanShortString(ch)
	default:
		switch {
		case isDigit(ch):
			l.scanNumeral()
		case isLetter(ch):
			l.scanIdentifier()
		default:
			r, _ := utf8.DecodeRuneInString(l.input[l.start:])
			return l.errorf(CategoryUnknownCharacter, r, "unexpected character %q", r)
		}
	}

	return nil
}

// readChar consumes one byte and keeps line and column current.
func (l *Lexer) readChar() byte {
	ch := l.input[l.position]
	l.position++
	if ch == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return ch
}

// peekChar returns the byte offset bytes ahead of the cursor, or 0 past the end.
func (l *Lexer) peekChar(offset int) byte {
	if l.position+offset >= len(l.input) {
		return 0
	}
	return l.input[l.position+offset]
}

func (l *Lexer) match(expected byte) bool {
	if l.isEOF() || l.input[l.position] != expected {
		return false
	}
	l.readChar()
	return true
}

func (l *Lexer) isEOF() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) markStart() {
	l.start = l.position
	l.startLine = l.line
	l.startColumn = l.column
}

func (l *Lexer) addToken(tokenType TokenType, literal string) {
	l.tokens = append(l.tokens, Token{
		Type:    tokenType,
		Lexeme:  l.input[l.start:l.position],
		Offset:  l.start,
		Literal: literal,
		Line:    l.startLine,
		Column:  l.startColumn,
	})
}

func (l *Lexer) addEither(next byte, matched, otherwise TokenType) {
	if l.match(next) {
		l.addToken(matched, "")
	} else {
		l.addToken(otherwise, "")
	}
}

func (l *Lexer) errorf(category ErrorCategory, char rune, format string, args ...any) *LexicalError {
	return &LexicalError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
		Line:     l.startLine,
		Column:   l.startColumn,
		Offset:   l.start,
		Char:     char,
	}
}

func (l *Lexer) skipComment() error {
	if l.peekChar(0) == '[' {
		if level, ok := l.longBracketLevel(1); ok {
			l.skipN(level + 2)
			if _, closed := l.readLongBracket(level, false); !closed {
				return l.errorf(CategoryUnterminatedLongString, '[', "unfinished long comment")
			}
			return nil
		}
	}

	for !l.isEOF() && l.peekChar(0) != '\n' {
		l.readChar()
	}
	return nil
}

// scanBracket handles a '[' that was just consumed: either a plain bracket
// or the opening of a long string.
func (l *Lexer) scanBracket() error {
	level, ok := l.longBracketLevel(0)
	if !ok {
		if level > 0 {
			l.skipN(level)
			return l.errorf(CategoryUndeterminedStringDelimiter, '[',
				"invalid long string delimiter %q", l.input[l.start:l.position])
		}
		l.addToken(TokenLBracket, "")
		return nil
	}

	l.skipN(level + 1)
	content, closed := l.readLongBracket(level, true)
	if !closed {
		return l.errorf(CategoryUnterminatedLongString, '[', "unfinished long string")
	}
	l.addToken(TokenString, content)
	return nil
}

// longBracketLevel counts '=' signs starting at the given peek offset and
// reports whether a '[' follows them.
func (l *Lexer) longBracketLevel(offset int) (int, bool) {
	level := 0
	for l.peekChar(offset+level) == '=' {
		level++
	}
	return level, l.peekChar(offset+level) == '['
}

func (l *Lexer) skipN(n int) {
	for i := 0; i < n && !l.isEOF(); i++ {
		l.readChar()
	}
}

// readLongBracket consumes up to and including the closing bracket of the
// given level. The opening bracket has already been consumed.
func (l *Lexer) readLongBracket(level int, skipFirstNewline bool) (string, bool) {
	if skipFirstNewline {
		if l.peekChar(0) == '\r' && l.peekChar(1) == '\n' {
			l.skipN(2)
		} else if l.peekChar(0) == '\n' {
			l.readChar()
		}
	}

	from := l.position
	for !l.isEOF() {
		if l.peekChar(0) == ']' {
			closing := 1
			for closing <= level && l.peekChar(closing) == '=' {
				closing++
			}
			if closing == level+1 && l.peekChar(closing) == ']' {
				content := l.input[from:l.position]
				l.skipN(level + 2)
				return content, true
			}
		}
		l.readChar()
	}

	return "", false
}

func (l *Lexer) scanShortString(delimiter byte) error {
	var literal strings.Builder

	for {
		if l.isEOF() || l.peekChar(0) == '\n' {
			return l.errorf(CategoryUnterminatedString, rune(delimiter), "unterminated string")
		}

		ch := l.readChar()
		switch ch {
		case delimiter:
			l.addToken(TokenString, literal.String())
			return nil
		case '\\':
			if l.isEOF() {
				return l.errorf(CategoryUnterminatedString, rune(delimiter), "unterminated string")
			}
			l.readEscape(&literal)
		default:
			literal.WriteByte(ch)
		}
	}
}

func (l *Lexer) scanNumeral() {
	for isDigit(l.peekChar(0)) {
		l.readChar()
	}

	if l.peekChar(0) == '.' && isDigit(l.peekChar(1)) {
		l.readChar()
		for isDigit(l.peekChar(0)) {
			l.readChar()
		}
	}

	l.addToken(TokenNumeral, l.input[l.start:l.position])
}

func (l *Lexer) scanIdentifier() {
	for isLetter(l.peekChar(0)) || isDigit(l.peekChar(0)) {
		l.readChar()
	}

	tokenType := l.lookupIdent(l.input[l.start:l.position])
	if tokenType == TokenIf && len(l.tokens) > 0 && l.tokens[len(l.tokens)-1].Type == TokenElse {
		prev := &l.tokens[len(l.tokens)-1]
		prev.Type = TokenElseif
		prev.Lexeme = l.input[prev.Offset:l.position]
		return
	}

	l.addToken(tokenType, "")
}

// lookupIdent checks the keywords table and the dialect's reserved words.
func (l *Lexer) lookupIdent(ident string) TokenType {
	tok, ok := keywords[ident]
	if !ok {
		return TokenIdentifier
	}
	if tok == TokenGoto && !l.opts.Dialect.Supports(dialect.FeatureGoto) {
		return TokenIdentifier
	}
	return tok
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}
