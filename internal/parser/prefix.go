package parser

import (
	"github.com/zamotany/lunatic/internal/ast"
	"github.com/zamotany/lunatic/internal/lexer"
)

// parsePrimary parses a group or variable/call chain, a table constructor
// or a literal.
func (p *Parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()

	switch tok.Type {
	case lexer.TokenLParen, lexer.TokenIdentifier:
		return p.parsePrefix()
	case lexer.TokenLBrace:
		return p.parseTableConstructor()
	case lexer.TokenNil, lexer.TokenTrue, lexer.TokenFalse,
		lexer.TokenNumeral, lexer.TokenString, lexer.TokenVararg:
		return &ast.Literal{Token: p.advance()}, nil
	}

	return nil, p.unexpected(tok, "expression")
}

// parsePrefix parses a name or parenthesized expression followed by any
// number of member accesses and calls.
func (p *Parser) parsePrefix() (ast.Prefix, error) {
	var prefix ast.Prefix

	if lparen, ok := p.match(lexer.TokenLParen); ok {
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		rparen, err := p.expectClosing(lexer.TokenRParen, lparen)
		if err != nil {
			return nil, err
		}
		prefix = &ast.Group{LParen: lparen, Expression: inner, RParen: rparen}
	} else {
		prefix = &ast.Identifier{Token: p.advance()}
	}

	for {
		switch p.peek().Type {
		case lexer.TokenDot:
			p.advance()
			member, err := p.expectIdentifier("after `.`")
			if err != nil {
				return nil, err
			}
			prefix = &ast.MemberAccess{Reference: prefix, Member: member}

		case lexer.TokenLBracket:
			lbracket := p.advance()
			member, err := p.expression()
			if err != nil {
				return nil, err
			}
			rbracket, err := p.expectClosing(lexer.TokenRBracket, lbracket)
			if err != nil {
				return nil, err
			}
			prefix = &ast.ExpressionMemberAccess{Reference: prefix, Member: member, RBracket: rbracket}

		case lexer.TokenColon:
			p.advance()
			method, err := p.expectIdentifier("after `:`")
			if err != nil {
				return nil, err
			}
			if !startsArgs(p.peek().Type) {
				return nil, p.unexpected(p.peek(), "arguments after method name `"+method.Name()+"`")
			}
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			prefix = &ast.MethodCall{Callee: prefix, Method: method, Args: args}

		case lexer.TokenLParen, lexer.TokenLBrace, lexer.TokenString:
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			prefix = &ast.Call{Callee: prefix, Args: args}

		default:
			return prefix, nil
		}
	}
}

func startsArgs(tt lexer.TokenType) bool {
	return tt == lexer.TokenLParen || tt == lexer.TokenLBrace || tt == lexer.TokenString
}

// parseArgs parses call arguments: (list), a table constructor or a string.
func (p *Parser) parseArgs() (ast.Args, error) {
	switch p.peek().Type {
	case lexer.TokenString:
		return &ast.StringArgs{Token: p.advance()}, nil

	case lexer.TokenLBrace:
		table, err := p.parseTableConstructor()
		if err != nil {
			return nil, err
		}
		return &ast.TableArgs{Table: table}, nil
	}

	lparen, ok := p.match(lexer.TokenLParen)
	if !ok {
		return nil, p.unexpected(p.peek(), "call arguments")
	}

	args := &ast.ExpressionListArgs{LParen: lparen}
	if rparen, ok := p.match(lexer.TokenRParen); ok {
		args.RParen = rparen
		return args, nil
	}

	for {
		arg, err := p.expression()
		if err != nil {
			return nil, err
		}
		args.Expressions = append(args.Expressions, arg)

		if _, ok := p.match(lexer.TokenComma); !ok {
			break
		}
	}

	rparen, err := p.expectClosing(lexer.TokenRParen, lparen)
	if err != nil {
		return nil, err
	}
	args.RParen = rparen

	return args, nil
}
