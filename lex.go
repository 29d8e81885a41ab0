package floatcalc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Kind is the type of the token.
	Kind TokenKind
	// Text is the token as it appears in the source.
	Text string
	// Value is the value of a Number token. Literals too large for a float64
	// have an infinite value; evaluating them is a domain error.
	Value float64
	// Pos is the 1-based rune column of the first rune of the token.
	Pos int
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int8

const (
	// TokenNone is the zero TokenKind. The parser uses it to mark the end of
	// the input.
	TokenNone TokenKind = iota
	// TokenNumber is a decimal literal, possibly with a fraction and exponent.
	TokenNumber
	// TokenIdent is a constant, function, or variable name.
	TokenIdent
	// TokenOp is an operator.
	TokenOp
	// TokenLParen is an open parenthesis.
	TokenLParen
	// TokenRParen is a close parenthesis.
	TokenRParen
	// TokenComma separates function arguments.
	TokenComma
)

func (k TokenKind) String() string {
	switch k {
	case TokenNone:
		return "None"
	case TokenNumber:
		return "Number"
	case TokenIdent:
		return "Ident"
	case TokenOp:
		return "Op"
	case TokenLParen:
		return "LParen"
	case TokenRParen:
		return "RParen"
	case TokenComma:
		return "Comma"
	default:
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/^"

// Tokenize splits src into tokens. Whitespace between tokens is ignored. The
// result is nil with an error of type *LexError if src contains a rune that
// cannot start a token or a malformed number.
func Tokenize(src string) ([]Token, error) {
	scan := lex(strings.NewReader(src))
	var toks []Token
	for {
		tok, err := scan.next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return toks, nil
			}
			return nil, err
		}
		toks = append(toks, tok)
	}
}

type lexer struct {
	src io.RuneScanner
	buf strings.Builder
	// col is the number of runes read so far, which is also the column of
	// the most recently read rune.
	col int
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{src: src}
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.col++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.col--
}

// peek returns the next rune without consuming it. ok is false at the end of
// the input.
func (l *lexer) peek() (r rune, ok bool) {
	r, err := l.readRune()
	if err != nil {
		return 0, false
	}
	l.unreadRune()
	return r, true
}

// take consumes the next rune into the token buffer.
func (l *lexer) take() {
	r, err := l.readRune()
	if err != nil {
		panic("floatcalc: take at end of input")
	}
	l.buf.WriteRune(r)
}

// next scans the next token from the input. At the end of the input, the
// error is io.EOF.
func (l *lexer) next() (Token, error) {
	defer l.buf.Reset()
	for {
		r, err := l.readRune()
		if err != nil {
			return Token{}, err
		}
		tok := Token{Pos: l.col}
		switch {
		case unicode.IsSpace(r):
			continue
		case isDigit(r):
			l.unreadRune()
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.Kind = TokenNumber
			tok.Text = l.buf.String()
			v, err := strconv.ParseFloat(tok.Text, 64)
			if err != nil && !errors.Is(err, strconv.ErrRange) {
				return tok, &LexError{Text: tok.Text, Kind: "number", Col: tok.Pos}
			}
			// On overflow, ParseFloat gives ±Inf, which is what we want.
			tok.Value = v
			return tok, nil
		case isLetter(r):
			l.unreadRune()
			for {
				r, ok := l.peek()
				if !ok || !isLetter(r) {
					break
				}
				l.take()
			}
			tok.Kind = TokenIdent
			tok.Text = l.buf.String()
			return tok, nil
		case r == ',':
			tok.Kind, tok.Text = TokenComma, ","
			return tok, nil
		case r == '(':
			tok.Kind, tok.Text = TokenLParen, "("
			return tok, nil
		case r == ')':
			tok.Kind, tok.Text = TokenRParen, ")"
			return tok, nil
		case strings.ContainsRune(Operators, r):
			tok.Kind, tok.Text = TokenOp, string(r)
			return tok, nil
		default:
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

// scanNum scans digits, then an optional fraction, then an optional
// exponent. A sign is never part of a number; it is an operator.
func (l *lexer) scanNum() error {
	l.digits()
	if r, ok := l.peek(); ok && r == '.' {
		l.take()
		if !l.digits() {
			return l.error("number")
		}
	}
	if r, ok := l.peek(); ok && (r == 'e' || r == 'E') {
		l.take()
		if r, ok := l.peek(); ok && (r == '+' || r == '-') {
			l.take()
		}
		if !l.digits() {
			return l.error("number")
		}
	}
	// 2x, 1.5.5, and 3_000 are not implicit multiplications or separators.
	if r, ok := l.peek(); ok && (r == '.' || r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)) {
		l.take()
		return l.error("number")
	}
	return nil
}

// digits scans a run of ASCII digits and reports whether there was at least
// one.
func (l *lexer) digits() bool {
	n := 0
	for {
		r, ok := l.peek()
		if !ok || !isDigit(r) {
			return n > 0
		}
		l.take()
		n++
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.col,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the column of the rune that made the token invalid.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + strconv.Quote(err.Text)
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + strconv.Quote(err.Text)
}

func (err *LexError) Pos() int {
	return err.Col
}

func (err *LexError) ErrorKind() ErrorKind {
	return KindLex
}

func (err *LexError) Is(target error) bool {
	return target == ErrLex
}
