package parser

import (
	"github.com/zamotany/lunatic/internal/ast"
	"github.com/zamotany/lunatic/internal/dialect"
	"github.com/zamotany/lunatic/internal/lexer"
)

// Precedence levels, lowest first:
//
//	or
//	and
//	<  >  <=  >=  ~=  ==
//	|
//	~
//	&
//	<<  >>
//	..            (right)
//	+  -
//	*  /  //  %
//	not  #  -  ~  (unary)
//	^             (right)

func (p *Parser) parseOr() (ast.Expression, error) {
	return p.leftAssociative(p.parseAnd, lexer.TokenOr)
}

func (p *Parser) parseAnd() (ast.Expression, error) {
	return p.leftAssociative(p.parseComparison, lexer.TokenAnd)
}

func (p *Parser) parseComparison() (ast.Expression, error) {
	return p.leftAssociative(p.parseBitwiseOr,
		lexer.TokenLt, lexer.TokenGt, lexer.TokenLe, lexer.TokenGe, lexer.TokenNe, lexer.TokenEq)
}

func (p *Parser) parseBitwiseOr() (ast.Expression, error) {
	return p.leftAssociative(p.parseBitwiseXor, lexer.TokenPipe)
}

func (p *Parser) parseBitwiseXor() (ast.Expression, error) {
	return p.leftAssociative(p.parseBitwiseAnd, lexer.TokenTilde)
}

func (p *Parser) parseBitwiseAnd() (ast.Expression, error) {
	return p.leftAssociative(p.parseShift, lexer.TokenAmpersand)
}

func (p *Parser) parseShift() (ast.Expression, error) {
	return p.leftAssociative(p.parseConcat, lexer.TokenShl, lexer.TokenShr)
}

func (p *Parser) parseConcat() (ast.Expression, error) {
	left, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}

	op, ok := p.match(lexer.TokenConcat)
	if !ok {
		return left, nil
	}

	right, err := p.rightOperand(op, p.parseConcat)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Left: left, Operator: op, Right: right}, nil
}

func (p *Parser) parseAdditive() (ast.Expression, error) {
	return p.leftAssociative(p.parseMultiplicative, lexer.TokenPlus, lexer.TokenMinus)
}

func (p *Parser) parseMultiplicative() (ast.Expression, error) {
	return p.leftAssociative(p.parseUnary,
		lexer.TokenStar, lexer.TokenSlash, lexer.TokenFloorDiv, lexer.TokenPercent)
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	op, ok := p.match(lexer.TokenNot, lexer.TokenHash, lexer.TokenMinus, lexer.TokenTilde)
	if !ok {
		return p.parsePower()
	}
	if err := p.checkOperator(op); err != nil {
		return nil, err
	}

	right, err := p.rightOperand(op, p.parseUnary)
	if err != nil {
		return nil, err
	}
	return &ast.Unary{Operator: op, Right: right}, nil
}

// parsePower parses base ^ exponent. The exponent may carry unary operators
// (2^-1) and recurses for right associativity.
func (p *Parser) parsePower() (ast.Expression, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	op, ok := p.match(lexer.TokenCaret)
	if !ok {
		return base, nil
	}

	exponent, err := p.rightOperand(op, p.parseUnary)
	if err != nil {
		return nil, err
	}
	return &ast.Binary{Left: base, Operator: op, Right: exponent}, nil
}

// leftAssociative parses next (op next)* and folds the results to the left.
func (p *Parser) leftAssociative(next func() (ast.Expression, error), ops ...lexer.TokenType) (ast.Expression, error) {
	left, err := next()
	if err != nil {
		return nil, err
	}

	for {
		op, ok := p.match(ops...)
		if !ok {
			return left, nil
		}
		if err := p.checkOperator(op); err != nil {
			return nil, err
		}

		right, err := p.operand(op, next)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
}

// operand parses the right-hand side of op with next.
func (p *Parser) operand(op *lexer.Token, next func() (ast.Expression, error)) (ast.Expression, error) {
	if tok := p.peek(); !startsExpression(tok.Type) {
		return nil, p.errorAt(MissingOperand, tok, "expected expression after `%s`, got %s", op.Lexeme, describe(tok))
	}
	return next()
}

// rightOperand is operand for the recursive levels, counted against MaxDepth.
func (p *Parser) rightOperand(op *lexer.Token, next func() (ast.Expression, error)) (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	return p.operand(op, next)
}

var operatorFeature = map[lexer.TokenType]dialect.Feature{
	lexer.TokenAmpersand: dialect.FeatureBitwise,
	lexer.TokenPipe:      dialect.FeatureBitwise,
	lexer.TokenTilde:     dialect.FeatureBitwise,
	lexer.TokenShl:       dialect.FeatureBitwise,
	lexer.TokenShr:       dialect.FeatureBitwise,
	lexer.TokenFloorDiv:  dialect.FeatureFloorDivision,
}

// checkOperator rejects operators the target dialect does not have.
func (p *Parser) checkOperator(op *lexer.Token) error {
	feature, gated := operatorFeature[op.Type]
	if !gated || p.opts.Dialect.Supports(feature) {
		return nil
	}
	return p.errorAt(UnsupportedOperator, op, "`%s` (%s) requires Lua %s, target is Lua %s",
		op.Lexeme, feature, dialect.Since(feature), p.opts.Dialect)
}

// startsExpression reports whether a token of type tt can begin an expression.
func startsExpression(tt lexer.TokenType) bool {
	switch tt {
	case lexer.TokenNil, lexer.TokenTrue, lexer.TokenFalse,
		lexer.TokenNumeral, lexer.TokenString, lexer.TokenVararg,
		lexer.TokenIdentifier, lexer.TokenLParen, lexer.TokenLBrace,
		lexer.TokenNot, lexer.TokenHash, lexer.TokenMinus, lexer.TokenTilde:
		return true
	}
	return false
}
