package siglang

import (
	"errors"
	"strings"
	"testing"
)

func TestTokenizer(t *testing.T) {
	type TokenInfo struct {
		Kind TokenKind
		Text string
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "x := 12.3 +/- 0.5",
			tokens: []TokenInfo{
				{TokenIdentifier, "x"},
				{TokenAssign, ""},
				{TokenNumber, "12.3"},
				{TokenPlusMinus, ""},
				{TokenNumber, "0.5"},
			},
		},
		{
			input: "{x : real}",
			tokens: []TokenInfo{
				{TokenLeftBrace, ""},
				{TokenIdentifier, "x"},
				{TokenColon, ""},
				{TokenReal, "real"},
				{TokenRightBrace, ""},
			},
		},
		{
			input: "2**3 8//3 a*b c/d e%f",
			tokens: []TokenInfo{
				{TokenNumber, "2"},
				{TokenPower, ""},
				{TokenNumber, "3"},
				{TokenNumber, "8"},
				{TokenRoot, ""},
				{TokenNumber, "3"},
				{TokenIdentifier, "a"},
				{TokenMultiply, ""},
				{TokenIdentifier, "b"},
				{TokenIdentifier, "c"},
				{TokenDivide, ""},
				{TokenIdentifier, "d"},
				{TokenIdentifier, "e"},
				{TokenModulus, ""},
				{TokenIdentifier, "f"},
			},
		},
		{
			input: "+/2",
			tokens: []TokenInfo{
				{TokenPlus, ""},
				{TokenDivide, ""},
				{TokenNumber, "2"},
			},
		},
		{
			input: "1.5e-3 6.022E+23 7e2 4.",
			tokens: []TokenInfo{
				{TokenNumber, "1.5e-3"},
				{TokenNumber, "6.022E+23"},
				{TokenNumber, "7e2"},
				{TokenNumber, "4."},
			},
		},
		{
			input: "sin(x, _y2) # note\n-1",
			tokens: []TokenInfo{
				{TokenIdentifier, "sin"},
				{TokenLeftParen, ""},
				{TokenIdentifier, "x"},
				{TokenComma, ""},
				{TokenIdentifier, "_y2"},
				{TokenRightParen, ""},
				{TokenComment, " note"},
				{TokenNewline, ""},
				{TokenMinus, ""},
				{TokenNumber, "1"},
			},
		},
		{
			input: "  \t\r",
		},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			tokens, err := Tokenize(NewSource("test", test.input))
			if err != nil {
				t.Fatal(err)
			}
			if tokens[len(tokens)-1].Kind != TokenEOF {
				t.Fatalf("got %v", tokens[len(tokens)-1])
			}
			tokens = tokens[:len(tokens)-1]
			if len(tokens) != len(test.tokens) {
				t.Fatalf("got %v", tokens)
			}
			for i, expected := range test.tokens {
				if tokens[i].Kind != expected.Kind {
					t.Fatalf("token %d: got %v", i, tokens[i])
				}
				if tokens[i].Text != expected.Text {
					t.Fatalf("token %d: got %q", i, tokens[i].Text)
				}
			}
		})
	}
}

func TestTokenizerNumbers(t *testing.T) {
	tokens, err := Tokenize(NewSource("", "1.5e-3 42 1e999"))
	if err != nil {
		t.Fatal(err)
	}
	if tokens[0].Number != 1.5e-3 {
		t.Fatalf("got %v", tokens[0].Number)
	}
	if tokens[1].Number != 42 {
		t.Fatalf("got %v", tokens[1].Number)
	}
	if tokens[2].Number <= 1e308 {
		t.Fatalf("got %v", tokens[2].Number)
	}
}

func TestTokenizerPositions(t *testing.T) {
	tokens, err := Tokenize(NewSource("", "{x : real}\nx := 12.3 +/- 0.5\nx"))
	if err != nil {
		t.Fatal(err)
	}
	expected := []Pos{
		{1, 1}, {1, 2}, {1, 4}, {1, 6}, {1, 10}, {1, 11},
		{2, 1}, {2, 3}, {2, 6}, {2, 11}, {2, 15}, {2, 18},
		{3, 1}, {3, 2},
	}
	if len(tokens) != len(expected) {
		t.Fatalf("got %v", tokens)
	}
	for i, pos := range expected {
		if tokens[i].Pos != pos {
			t.Fatalf("token %d %v: got %v", i, tokens[i], tokens[i].Pos)
		}
	}
}

func TestTokenizerErrors(t *testing.T) {
	tests := []struct {
		input    string
		expected string
		pos      Pos
	}{
		{"x @ 1", "Unexpected character '@'", Pos{1, 3}},
		{"1\n  1e", "Could not parse '1e' as floating point number", Pos{2, 3}},
		{"2e+", "Could not parse '2e+' as floating point number", Pos{1, 1}},
		{"réal", "Unexpected character 'é'", Pos{1, 2}},
	}
	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			_, err := Tokenize(NewSource("", test.input))
			var lexErr *LexError
			if !errors.As(err, &lexErr) {
				t.Fatalf("got %v", err)
			}
			if lexErr.Msg != test.expected {
				t.Fatalf("got %q", lexErr.Msg)
			}
			if lexErr.Pos != test.pos {
				t.Fatalf("got %v", lexErr.Pos)
			}
		})
	}
}

func TestTokenizerStreaming(t *testing.T) {
	tokenizer := NewTokenizer(strings.NewReader("a"))
	token, err := tokenizer.Next()
	if err != nil {
		t.Fatal(err)
	}
	if token.Kind != TokenIdentifier {
		t.Fatalf("got %v", token)
	}
	for range 2 {
		token, err = tokenizer.Next()
		if err != nil {
			t.Fatal(err)
		}
		if token.Kind != TokenEOF {
			t.Fatalf("got %v", token)
		}
	}
}

func TestExcerpt(t *testing.T) {
	src := NewSource("a.sig", "x := 1\n\tyy @ 2")
	got := src.Excerpt(Pos{Line: 2, Column: 5})
	expected := "a.sig:2:5\n\tyy @ 2\n\t   ^\n"
	if got != expected {
		t.Fatalf("got %q", got)
	}
	if src.Excerpt(Pos{Line: 9, Column: 1}) != "" {
		t.Fatal()
	}
}
