package floatcalc

import (
	"math"
	"reflect"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []Token
	}{
		// spaces
		{"", nil},
		{" \t \r\n ", nil},
		{"  2", []Token{{Kind: TokenNumber, Text: "2", Value: 2, Pos: 3}}},
		{"\u00a02", []Token{{Kind: TokenNumber, Text: "2", Value: 2, Pos: 2}}},
		// numbers
		{"0", []Token{{Kind: TokenNumber, Text: "0", Value: 0, Pos: 1}}},
		{"9876543210", []Token{{Kind: TokenNumber, Text: "9876543210", Value: 9876543210, Pos: 1}}},
		{"1 0", []Token{{Kind: TokenNumber, Text: "1", Value: 1, Pos: 1}, {Kind: TokenNumber, Text: "0", Value: 0, Pos: 3}}},
		{"1.0", []Token{{Kind: TokenNumber, Text: "1.0", Value: 1, Pos: 1}}},
		{"-1", []Token{{Kind: TokenOp, Text: "-", Pos: 1}, {Kind: TokenNumber, Text: "1", Value: 1, Pos: 2}}},
		{"+1", []Token{{Kind: TokenOp, Text: "+", Pos: 1}, {Kind: TokenNumber, Text: "1", Value: 1, Pos: 2}}},
		{"1e1", []Token{{Kind: TokenNumber, Text: "1e1", Value: 10, Pos: 1}}},
		{"2E3", []Token{{Kind: TokenNumber, Text: "2E3", Value: 2000, Pos: 1}}},
		{"1e+1", []Token{{Kind: TokenNumber, Text: "1e+1", Value: 10, Pos: 1}}},
		{"1e-1", []Token{{Kind: TokenNumber, Text: "1e-1", Value: 0.1, Pos: 1}}},
		{"1.5e-2", []Token{{Kind: TokenNumber, Text: "1.5e-2", Value: 0.015, Pos: 1}}},
		{"1.0e1", []Token{{Kind: TokenNumber, Text: "1.0e1", Value: 10, Pos: 1}}},
		{"1e999", []Token{{Kind: TokenNumber, Text: "1e999", Value: math.Inf(1), Pos: 1}}},
		{"1+0", []Token{{Kind: TokenNumber, Text: "1", Value: 1, Pos: 1}, {Kind: TokenOp, Text: "+", Pos: 2}, {Kind: TokenNumber, Text: "0", Value: 0, Pos: 3}}},
		{"1*0", []Token{{Kind: TokenNumber, Text: "1", Value: 1, Pos: 1}, {Kind: TokenOp, Text: "*", Pos: 2}, {Kind: TokenNumber, Text: "0", Value: 0, Pos: 3}}},
		{"(1)", []Token{{Kind: TokenLParen, Text: "(", Pos: 1}, {Kind: TokenNumber, Text: "1", Value: 1, Pos: 2}, {Kind: TokenRParen, Text: ")", Pos: 3}}},
		// identifiers
		{"e", []Token{{Kind: TokenIdent, Text: "e", Pos: 1}}},
		{"PI", []Token{{Kind: TokenIdent, Text: "PI", Pos: 1}}},
		{"abc1", []Token{{Kind: TokenIdent, Text: "abc", Pos: 1}, {Kind: TokenNumber, Text: "1", Value: 1, Pos: 4}}},
		{"e(", []Token{{Kind: TokenIdent, Text: "e", Pos: 1}, {Kind: TokenLParen, Text: "(", Pos: 2}}},
		{"pow(x, 2)", []Token{
			{Kind: TokenIdent, Text: "pow", Pos: 1},
			{Kind: TokenLParen, Text: "(", Pos: 4},
			{Kind: TokenIdent, Text: "x", Pos: 5},
			{Kind: TokenComma, Text: ",", Pos: 6},
			{Kind: TokenNumber, Text: "2", Value: 2, Pos: 8},
			{Kind: TokenRParen, Text: ")", Pos: 9},
		}},
		// operators
		{"+-*/^", []Token{
			{Kind: TokenOp, Text: "+", Pos: 1},
			{Kind: TokenOp, Text: "-", Pos: 2},
			{Kind: TokenOp, Text: "*", Pos: 3},
			{Kind: TokenOp, Text: "/", Pos: 4},
			{Kind: TokenOp, Text: "^", Pos: 5},
		}},
		{"a--b", []Token{{Kind: TokenIdent, Text: "a", Pos: 1}, {Kind: TokenOp, Text: "-", Pos: 2}, {Kind: TokenOp, Text: "-", Pos: 3}, {Kind: TokenIdent, Text: "b", Pos: 4}}},
	}

	for _, c := range cases {
		got, err := Tokenize(c.src)
		if err != nil {
			t.Errorf("scanning %q: unexpected error %v", c.src, err)
			continue
		}
		if !reflect.DeepEqual(got, c.tokens) {
			t.Errorf("scanning %q:\n\twant %v\n\tgot  %v", c.src, c.tokens, got)
		}
	}
}

func TestLexErrors(t *testing.T) {
	cases := []struct {
		src string
		err LexError
	}{
		// malformed numbers
		{"1e", LexError{Text: "1e", Kind: "number", Col: 2}},
		{"1e+", LexError{Text: "1e+", Kind: "number", Col: 3}},
		{"1.", LexError{Text: "1.", Kind: "number", Col: 2}},
		{"1.e5", LexError{Text: "1.", Kind: "number", Col: 2}},
		{"1.1.1", LexError{Text: "1.1.", Kind: "number", Col: 4}},
		{"1a", LexError{Text: "1a", Kind: "number", Col: 2}},
		{"2x + 1", LexError{Text: "2x", Kind: "number", Col: 2}},
		{"1_000", LexError{Text: "1_", Kind: "number", Col: 2}},
		{"12π", LexError{Text: "12π", Kind: "number", Col: 3}},
		// erroneous symbols
		{".5", LexError{Text: ".", Col: 1}},
		{"$", LexError{Text: "$", Col: 1}},
		{"a$", LexError{Text: "$", Col: 2}},
		{"1 # 2", LexError{Text: "#", Col: 3}},
		{"π", LexError{Text: "π", Col: 1}},
		{"x_1", LexError{Text: "_", Col: 2}},
		{`"x"`, LexError{Text: `"`, Col: 1}},
		{"[1]", LexError{Text: "[", Col: 1}},
		{"1;2", LexError{Text: ";", Col: 2}},
		{"2×3", LexError{Text: "×", Col: 2}},
	}
	for _, c := range cases {
		got, err := Tokenize(c.src)
		if got != nil {
			t.Errorf("scanning %q: got tokens %v with error", c.src, got)
		}
		lerr, ok := err.(*LexError)
		if !ok {
			t.Errorf("scanning %q: want *LexError, got %#v", c.src, err)
			continue
		}
		if *lerr != c.err {
			t.Errorf("scanning %q:\n\twant %+v\n\tgot  %+v", c.src, c.err, *lerr)
		}
		if KindOf(err) != KindLex {
			t.Errorf("scanning %q: error has kind %v", c.src, KindOf(err))
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Kind: TokenNumber, Text: "1.5", Value: 1.5, Pos: 3}
	if got, want := tok.String(), "Number:1.5@3"; got != want {
		t.Errorf("want %q, got %q", want, got)
	}
}
