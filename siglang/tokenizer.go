package siglang

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

type Tokenizer struct {
	source *bufio.Reader

	currPos Pos
	prevPos Pos
}

func NewTokenizer(source io.Reader) *Tokenizer {
	return &Tokenizer{
		source: bufio.NewReader(source),
		currPos: Pos{
			Line:   1,
			Column: 1,
		},
	}
}

// Tokenize reads the whole source. The result always ends with a TokenEOF.
func Tokenize(src *Source) ([]Token, error) {
	return NewTokenizer(strings.NewReader(src.Content)).All()
}

func (t *Tokenizer) All() (ret []Token, err error) {
	for {
		token, err := t.Next()
		if err != nil {
			return nil, err
		}
		ret = append(ret, token)
		if token.Kind == TokenEOF {
			return ret, nil
		}
	}
}

func (t *Tokenizer) readRune() (rune, error) {
	r, _, err := t.source.ReadRune()
	if err != nil {
		return 0, err
	}

	t.prevPos = t.currPos
	if r == '\n' {
		t.currPos.Line++
		t.currPos.Column = 1
	} else {
		t.currPos.Column++
	}

	return r, nil
}

func (t *Tokenizer) unreadRune() {
	t.source.UnreadRune()
	t.currPos = t.prevPos
}

// match consumes the next rune if it equals expected.
func (t *Tokenizer) match(expected rune) bool {
	r, err := t.readRune()
	if err != nil {
		return false
	}
	if r != expected {
		t.unreadRune()
		return false
	}
	return true
}

// Next returns the next token. After TokenEOF it keeps returning TokenEOF.
func (t *Tokenizer) Next() (Token, error) {
	t.skipWhitespace()
	startPos := t.currPos

	r, err := t.readRune()
	if err == io.EOF {
		return Token{Kind: TokenEOF, Pos: startPos}, nil
	}
	if err != nil {
		return Token{}, err
	}

	simple := func(kind TokenKind) (Token, error) {
		return Token{Kind: kind, Pos: startPos}, nil
	}

	switch r {
	case '+':
		if next, err := t.source.Peek(2); err == nil && string(next) == "/-" {
			t.readRune()
			t.readRune()
			return simple(TokenPlusMinus)
		}
		return simple(TokenPlus)
	case '-':
		return simple(TokenMinus)
	case '*':
		if t.match('*') {
			return simple(TokenPower)
		}
		return simple(TokenMultiply)
	case '/':
		if t.match('/') {
			return simple(TokenRoot)
		}
		return simple(TokenDivide)
	case '%':
		return simple(TokenModulus)
	case ':':
		if t.match('=') {
			return simple(TokenAssign)
		}
		return simple(TokenColon)
	case '(':
		return simple(TokenLeftParen)
	case ')':
		return simple(TokenRightParen)
	case '{':
		return simple(TokenLeftBrace)
	case '}':
		return simple(TokenRightBrace)
	case ',':
		return simple(TokenComma)
	case '\n':
		return simple(TokenNewline)
	case '#':
		return t.parseComment(startPos)
	}

	switch {
	case isDigit(r):
		t.unreadRune()
		return t.parseNumber(startPos)
	case isIdentStart(r):
		t.unreadRune()
		return t.parseIdentifier(startPos)
	}

	return Token{}, &LexError{
		Msg: fmt.Sprintf("Unexpected character '%c'", r),
		Pos: startPos,
	}
}

func (t *Tokenizer) skipWhitespace() {
	for {
		r, err := t.readRune()
		if err != nil {
			return
		}
		if r != ' ' && r != '\t' && r != '\r' {
			t.unreadRune()
			return
		}
	}
}

func (t *Tokenizer) parseComment(pos Pos) (Token, error) {
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if r == '\n' {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}
	return Token{
		Kind: TokenComment,
		Text: sb.String(),
		Pos:  pos,
	}, nil
}

func (t *Tokenizer) readDigits(sb *strings.Builder) error {
	for {
		r, err := t.readRune()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !isDigit(r) {
			t.unreadRune()
			return nil
		}
		sb.WriteRune(r)
	}
}

// readOne consumes the next rune if accept returns true for it.
func (t *Tokenizer) readOne(sb *strings.Builder, accept func(rune) bool) (bool, error) {
	r, err := t.readRune()
	if err == io.EOF {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !accept(r) {
		t.unreadRune()
		return false, nil
	}
	sb.WriteRune(r)
	return true, nil
}

func (t *Tokenizer) parseNumber(pos Pos) (Token, error) {
	var sb strings.Builder

	// integer part
	if err := t.readDigits(&sb); err != nil {
		return Token{}, err
	}

	// fraction
	if ok, err := t.readOne(&sb, func(r rune) bool {
		return r == '.'
	}); err != nil {
		return Token{}, err
	} else if ok {
		if err := t.readDigits(&sb); err != nil {
			return Token{}, err
		}
	}

	// exponent
	if ok, err := t.readOne(&sb, func(r rune) bool {
		return r == 'e' || r == 'E'
	}); err != nil {
		return Token{}, err
	} else if ok {
		if _, err := t.readOne(&sb, func(r rune) bool {
			return r == '+' || r == '-'
		}); err != nil {
			return Token{}, err
		}
		if err := t.readDigits(&sb); err != nil {
			return Token{}, err
		}
	}

	text := sb.String()
	value, err := strconv.ParseFloat(text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return Token{}, &LexError{
			Msg: fmt.Sprintf("Could not parse '%s' as floating point number", text),
			Pos: pos,
		}
	}

	return Token{
		Kind:   TokenNumber,
		Text:   text,
		Number: value,
		Pos:    pos,
	}, nil
}

func (t *Tokenizer) parseIdentifier(pos Pos) (Token, error) {
	var sb strings.Builder
	for {
		r, err := t.readRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Token{}, err
		}
		if !isIdentStart(r) && !isDigit(r) {
			t.unreadRune()
			break
		}
		sb.WriteRune(r)
	}

	text := sb.String()
	if text == "real" {
		return Token{Kind: TokenReal, Text: text, Pos: pos}, nil
	}
	return Token{Kind: TokenIdentifier, Text: text, Pos: pos}, nil
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isIdentStart(r rune) bool {
	return r >= 'a' && r <= 'z' ||
		r >= 'A' && r <= 'Z' ||
		r == '_'
}
