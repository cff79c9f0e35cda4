package siglang

import "fmt"

type parser struct {
	tokens  []Token
	current int
}

// ParseProgram parses a complete token stream ending in TokenEOF.
func ParseProgram(tokens []Token) (*Program, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		return nil, &ParseError{
			Msg: "Token stream must end with EOF",
			Pos: Pos{Line: 1, Column: 1},
		}
	}

	p := &parser{
		tokens: tokens,
	}
	program := new(Program)
	p.skipTrivia()
	for !p.at(TokenEOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		program.Statements = append(program.Statements, stmt)
		// statements may share a line
		p.skipTrivia()
	}

	return program, nil
}

// ParseStatement parses exactly one statement. Leading and trailing newlines
// and comments are ignored. It returns nil when the stream holds no statement.
func ParseStatement(tokens []Token) (Statement, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != TokenEOF {
		return nil, &ParseError{
			Msg: "Token stream must end with EOF",
			Pos: Pos{Line: 1, Column: 1},
		}
	}

	p := &parser{
		tokens: tokens,
	}
	p.skipTrivia()
	if p.at(TokenEOF) {
		return nil, nil
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	p.skipTrivia()
	if !p.at(TokenEOF) {
		return nil, p.errorf("Unexpected %s after statement", p.peek())
	}
	return stmt, nil
}

func (p *parser) peek() Token {
	return p.peekN(0)
}

// peekN clamps to the final EOF token.
func (p *parser) peekN(n int) Token {
	i := p.current + n
	if i >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[i]
}

func (p *parser) at(kind TokenKind) bool {
	return p.peek().Kind == kind
}

func (p *parser) advance() Token {
	token := p.peek()
	if p.current < len(p.tokens)-1 {
		p.current++
	}
	return token
}

func (p *parser) skipTrivia() {
	for p.peek().IsTrivia() {
		p.advance()
	}
}

func (p *parser) errorf(format string, args ...any) *ParseError {
	return &ParseError{
		Msg: fmt.Sprintf(format, args...),
		Pos: p.peek().Pos,
	}
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	if !p.at(kind) {
		return Token{}, p.errorf("Expected '%s', got %s", tokenSymbols[kind], p.peek())
	}
	return p.advance(), nil
}

func (p *parser) parseStatement() (Statement, error) {
	switch {
	case p.at(TokenLeftBrace):
		return p.parseVarDecl()
	case p.at(TokenIdentifier) && p.peekN(1).Kind == TokenAssign:
		return p.parseAssignment()
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &ExprStmt{
		Expr: expr,
	}, nil
}

func (p *parser) parseVarDecl() (Statement, error) {
	start := p.advance()

	if !p.at(TokenIdentifier) {
		return nil, p.errorf("Expected identifier")
	}
	name := p.advance()

	if _, err := p.expect(TokenColon); err != nil {
		return nil, err
	}

	if !p.at(TokenReal) {
		return nil, p.errorf("Expected variable type")
	}
	p.advance()

	if _, err := p.expect(TokenRightBrace); err != nil {
		return nil, err
	}

	return &VarDecl{
		Name: name.Text,
		Type: TypeReal,
		Pos:  start.Pos,
	}, nil
}

func (p *parser) parseAssignment() (Statement, error) {
	name := p.advance()
	p.advance() // :=
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return &Assignment{
		Name:  name.Text,
		Value: value,
		Pos:   name.Pos,
	}, nil
}

func (p *parser) parseExpression() (Expr, error) {
	pos := p.peek().Pos
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch p.peek().Kind {
		case TokenPlus:
			op = OpAdd
		case TokenMinus:
			op = OpSub
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left = &Binary{
			Left:  left,
			Op:    op,
			Right: right,
			Pos:   pos,
		}
	}
}

func (p *parser) parseTerm() (Expr, error) {
	pos := p.peek().Pos
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for {
		var op BinaryOp
		switch p.peek().Kind {
		case TokenMultiply:
			op = OpMul
		case TokenDivide:
			op = OpDiv
		case TokenModulus:
			op = OpMod
		default:
			return left, nil
		}
		p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &Binary{
			Left:  left,
			Op:    op,
			Right: right,
			Pos:   pos,
		}
	}
}

// parseFactor is right associative: 2 ** 3 ** 2 is 2 ** (3 ** 2).
func (p *parser) parseFactor() (Expr, error) {
	pos := p.peek().Pos
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	var op BinaryOp
	switch p.peek().Kind {
	case TokenPower:
		op = OpPower
	case TokenRoot:
		op = OpRoot
	default:
		return left, nil
	}
	p.advance()
	right, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	return &Binary{
		Left:  left,
		Op:    op,
		Right: right,
		Pos:   pos,
	}, nil
}

func (p *parser) parseUnary() (Expr, error) {
	pos := p.peek().Pos
	var op UnaryOp
	switch p.peek().Kind {
	case TokenPlus:
		op = OpPlus
	case TokenMinus:
		op = OpNegate
	default:
		return p.parsePrimary()
	}
	p.advance()
	operand, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	return &Unary{
		Op:      op,
		Operand: operand,
		Pos:     pos,
	}, nil
}

func (p *parser) parsePrimary() (Expr, error) {
	token := p.peek()
	switch token.Kind {

	case TokenLeftParen:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return expr, nil

	case TokenIdentifier:
		p.advance()
		if p.at(TokenLeftParen) {
			return p.parseCall(token)
		}
		return &VarRef{
			Name: token.Text,
			Pos:  token.Pos,
		}, nil

	case TokenNumber:
		p.advance()
		lit := &NumberLit{
			Magnitude: token.Number,
			Pos:       token.Pos,
		}
		if p.at(TokenPlusMinus) {
			p.advance()
			if !p.at(TokenNumber) {
				return nil, p.errorf("Expected uncertainty number")
			}
			lit.Uncertainty = p.advance().Number
		}
		return lit, nil

	}

	return nil, p.errorf("Expected expression")
}

func (p *parser) parseCall(name Token) (Expr, error) {
	p.advance() // (
	call := &Call{
		Name: name.Text,
		Pos:  name.Pos,
	}
	if p.at(TokenRightParen) {
		p.advance()
		return call, nil
	}
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		call.Args = append(call.Args, arg)
		if p.at(TokenComma) {
			p.advance()
			continue
		}
		if _, err := p.expect(TokenRightParen); err != nil {
			return nil, err
		}
		return call, nil
	}
}
