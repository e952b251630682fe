// Package parser implements a recursive-descent parser for Lua expressions.
//
// The parser owns a read-only token slice and a cursor. Each precedence
// level is one method; left-associative levels fold in a loop and the
// right-associative ones (.. and ^) recurse once for their right operand.
package parser

import (
	"github.com/zamotany/lunatic/internal/ast"
	"github.com/zamotany/lunatic/internal/dialect"
	"github.com/zamotany/lunatic/internal/lexer"
)

// DefaultMaxDepth matches the C-levels limit of the reference interpreter.
const DefaultMaxDepth = 200

// Options configure a Parser.
type Options struct {
	// Dialect gates operators that older Lua versions lack. Zero is Lua 5.4.
	Dialect dialect.Dialect
	// MaxDepth bounds expression nesting. Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parser turns a token slice into an expression tree.
type Parser struct {
	tokens  []lexer.Token
	current int
	opts    Options
	depth   int
}

// New creates a parser over tokens with default options.
func New(tokens []lexer.Token) *Parser {
	return NewWithOptions(tokens, Options{})
}

// NewWithOptions creates a parser over tokens. The slice should come from
// the lexer and end with an EOF token; one is appended to a copy otherwise.
func NewWithOptions(tokens []lexer.Token, opts Options) *Parser {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if len(tokens) == 0 || tokens[len(tokens)-1].Type != lexer.TokenEOF {
		tokens = withEOF(tokens)
	}
	return &Parser{tokens: tokens, opts: opts}
}

func withEOF(tokens []lexer.Token) []lexer.Token {
	eof := lexer.Token{Type: lexer.TokenEOF, Line: 1, Column: 1}
	if n := len(tokens); n > 0 {
		end := tokens[n-1].Span().End
		eof.Offset, eof.Line, eof.Column = end.Offset, end.Line, end.Column
	}
	out := make([]lexer.Token, len(tokens), len(tokens)+1)
	copy(out, tokens)
	return append(out, eof)
}

// Parse parses tokens as a single expression with default options.
func Parse(tokens []lexer.Token) (ast.Expression, error) {
	return New(tokens).Parse()
}

// ParseWithOptions parses tokens as a single expression.
func ParseWithOptions(tokens []lexer.Token, opts Options) (ast.Expression, error) {
	return NewWithOptions(tokens, opts).Parse()
}

// ParseSource scans and parses source using the dialect in opts.
func ParseSource(source string, opts Options) (ast.Expression, error) {
	tokens, err := lexer.ScanWithOptions(source, lexer.Options{Dialect: opts.Dialect})
	if err != nil {
		return nil, err
	}
	return ParseWithOptions(tokens, opts)
}

// Parse parses one expression from the start of the input and requires that
// it is followed by EOF.
func (p *Parser) Parse() (ast.Expression, error) {
	p.current = 0

	expr, err := p.ParseExpression()
	if err != nil {
		return nil, err
	}

	if tok := p.peek(); tok.Type != lexer.TokenEOF {
		return nil, p.errorAt(UnexpectedToken, tok, "unexpected %s after expression", describe(tok))
	}

	return expr, nil
}

// ParseExpression parses one expression at the cursor and leaves the cursor
// on the first token after it.
func (p *Parser) ParseExpression() (ast.Expression, error) {
	p.depth = 0
	return p.expression()
}

// Remaining returns the tokens after the cursor, EOF included.
func (p *Parser) Remaining() []lexer.Token {
	return p.tokens[p.current:]
}

// expression is the entry point for every nested expression.
func (p *Parser) expression() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.parseOr()
}

func (p *Parser) enter() error {
	p.depth++
	if p.depth > p.opts.MaxDepth {
		return p.errorAt(NestingTooDeep, p.peek(), "expression nested deeper than %d levels", p.opts.MaxDepth)
	}
	return nil
}

func (p *Parser) leave() {
	p.depth--
}

// peek returns the token under the cursor. The cursor never moves past EOF.
func (p *Parser) peek() *lexer.Token {
	return &p.tokens[p.current]
}

// peekAt returns the token n positions after the cursor, or EOF.
func (p *Parser) peekAt(n int) *lexer.Token {
	if i := p.current + n; i < len(p.tokens) {
		return &p.tokens[i]
	}
	return &p.tokens[len(p.tokens)-1]
}

// advance consumes and returns the token under the cursor.
func (p *Parser) advance() *lexer.Token {
	tok := p.peek()
	if tok.Type != lexer.TokenEOF {
		p.current++
	}
	return tok
}

func (p *Parser) check(types ...lexer.TokenType) bool {
	current := p.peek().Type
	for _, tt := range types {
		if current == tt {
			return true
		}
	}
	return false
}

// match consumes the current token if it has one of the given types.
func (p *Parser) match(types ...lexer.TokenType) (*lexer.Token, bool) {
	if p.check(types...) {
		return p.advance(), true
	}
	return nil, false
}

// expectClosing consumes a closing delimiter that pairs with opener.
func (p *Parser) expectClosing(closing lexer.TokenType, opener *lexer.Token) (*lexer.Token, error) {
	if tok, ok := p.match(closing); ok {
		return tok, nil
	}
	tok := p.peek()
	return nil, p.errorAt(MissingClosingDelimiter, tok, "expected %s to close `%s` at %s, got %s",
		closingText[closing], opener.Lexeme, opener.Pos(), describe(tok))
}

var closingText = map[lexer.TokenType]string{
	lexer.TokenRParen:   "`)`",
	lexer.TokenRBracket: "`]`",
	lexer.TokenRBrace:   "`}`",
}

func (p *Parser) expectIdentifier(context string) (*ast.Identifier, error) {
	if tok, ok := p.match(lexer.TokenIdentifier); ok {
		return &ast.Identifier{Token: tok}, nil
	}
	return nil, p.unexpected(p.peek(), "identifier "+context)
}
