package siglang

import "strings"

// IsIncomplete reports whether the last meaningful token requires more input.
func IsIncomplete(tokens []Token) bool {
	for i := len(tokens) - 1; i >= 0; i-- {
		switch tokens[i].Kind {
		case TokenEOF, TokenNewline, TokenComment:
			continue
		case TokenPlus, TokenMinus, TokenMultiply, TokenDivide, TokenModulus,
			TokenPower, TokenRoot, TokenPlusMinus,
			TokenAssign, TokenColon, TokenLeftParen, TokenLeftBrace, TokenComma:
			return true
		}
		return false
	}
	return false
}

// IsIncompleteLine tokenizes text and applies IsIncomplete. Lex errors count as complete.
func IsIncompleteLine(text string) bool {
	tokens, err := Tokenize(NewSource("", strings.TrimSpace(text)))
	if err != nil {
		return false
	}
	return IsIncomplete(tokens)
}
