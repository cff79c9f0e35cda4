package siglang

import (
	"fmt"
	"strconv"
)

type Token struct {
	Kind   TokenKind
	Text   string
	Number float64
	Pos    Pos
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenNumber
	TokenIdentifier
	TokenReal
	TokenPlus
	TokenMinus
	TokenMultiply
	TokenDivide
	TokenModulus
	TokenPower
	TokenRoot
	TokenPlusMinus
	TokenAssign
	TokenColon
	TokenLeftParen
	TokenRightParen
	TokenLeftBrace
	TokenRightBrace
	TokenComma
	TokenComment
	TokenNewline
	TokenEOF
)

var tokenSymbols = map[TokenKind]string{
	TokenReal:       "real",
	TokenPlus:       "+",
	TokenMinus:      "-",
	TokenMultiply:   "*",
	TokenDivide:     "/",
	TokenModulus:    "%",
	TokenPower:      "**",
	TokenRoot:       "//",
	TokenPlusMinus:  "+/-",
	TokenAssign:     ":=",
	TokenColon:      ":",
	TokenLeftParen:  "(",
	TokenRightParen: ")",
	TokenLeftBrace:  "{",
	TokenRightBrace: "}",
	TokenComma:      ",",
}

func (t Token) String() string {
	switch t.Kind {
	case TokenNumber:
		return "number " + strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenIdentifier:
		return fmt.Sprintf("identifier '%s'", t.Text)
	case TokenComment:
		return "comment"
	case TokenNewline:
		return "newline"
	case TokenEOF:
		return "end of input"
	}
	if sym, ok := tokenSymbols[t.Kind]; ok {
		return "'" + sym + "'"
	}
	return "invalid token"
}

// IsTrivia reports tokens skipped between statements.
func (t Token) IsTrivia() bool {
	return t.Kind == TokenNewline || t.Kind == TokenComment
}
