package parser

import (
	"github.com/zamotany/lunatic/internal/ast"
	"github.com/zamotany/lunatic/internal/lexer"
)

// parseTableConstructor parses { field {sep field} [sep] } where sep is
// ',' or ';'.
func (p *Parser) parseTableConstructor() (*ast.TableConstructor, error) {
	lbrace, ok := p.match(lexer.TokenLBrace)
	if !ok {
		return nil, p.unexpected(p.peek(), "`{`")
	}

	table := &ast.TableConstructor{LBrace: lbrace}

	for !p.check(lexer.TokenRBrace, lexer.TokenEOF) {
		field, err := p.parseField()
		if err != nil {
			return nil, err
		}
		table.Fields = append(table.Fields, field)

		if _, ok := p.match(lexer.TokenComma, lexer.TokenSemicolon); !ok {
			break
		}
	}

	rbrace, err := p.expectClosing(lexer.TokenRBrace, lbrace)
	if err != nil {
		return nil, err
	}
	table.RBrace = rbrace

	return table, nil
}

// parseField parses [k] = v, name = v or a bare value.
func (p *Parser) parseField() (ast.Field, error) {
	if lbracket, ok := p.match(lexer.TokenLBracket); ok {
		key, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectClosing(lexer.TokenRBracket, lbracket); err != nil {
			return nil, err
		}
		if _, ok := p.match(lexer.TokenAssign); !ok {
			tok := p.peek()
			return nil, p.errorAt(MissingFieldSeparator, tok, "expected `=` after table key, got %s", describe(tok))
		}
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.ExpressionField{LBracket: lbracket, Key: key, Value: value}, nil
	}

	if p.check(lexer.TokenIdentifier) && p.peekAt(1).Type == lexer.TokenAssign {
		key := &ast.Identifier{Token: p.advance()}
		p.advance()
		value, err := p.expression()
		if err != nil {
			return nil, err
		}
		return &ast.NamedField{Key: key, Value: value}, nil
	}

	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	return &ast.AnonymousField{Value: value}, nil
}
