package floatcalc

import "strings"

// Expr = Sum
// Sum = Term { ('+' | '-') Term }
// Term = Pow { ('*' | '/') Pow }
// Pow = Unary { '^' Unary }            (right-associative)
// Unary = { '-' | '+' } Primary
// Primary = num | const | var | func '(' [ Sum { ',' Sum } ] ')' | '(' Sum ')'

// Expr is a parsed expression that can be evaluated with different variable
// bindings. An Expr is immutable, so it is safe to evaluate concurrently.
type Expr struct {
	// prog is the expression in postfix order.
	prog []node
	// names is the sorted list of variable names used in the expression.
	names []string
	// height is the largest value stack that evaluation needs.
	height int
}

// Parse validates and parses an expression so it can be evaluated with
// variables. Constants are resolved while parsing; variables are resolved
// when the expression is evaluated. Identifiers that are not constants, not
// functions, and longer than one letter are rejected with a *NameError.
func Parse(src string, opts ...ParseOption) (*Expr, error) {
	p := newparsectx(opts)
	toks, err := Tokenize(src)
	if err != nil {
		return nil, err
	}
	if err := validate(toks, &p); err != nil {
		return nil, err
	}
	return compile(toks, &p)
}

// compile parses a token stream into a program. It does not assume the
// stream has been validated.
func compile(toks []Token, p *parsectx) (*Expr, error) {
	ps := parser{
		toks:  toks,
		p:     p,
		names: make(map[string]bool),
	}
	if err := ps.parseexpr(exprprec); err != nil {
		return nil, err
	}
	if tok := ps.peek(); tok.Kind != TokenNone {
		return nil, itShouldNotHaveEndedThisWay(tok, ps.toks[ps.cur-1], 0)
	}
	ex := Expr{
		prog:   ps.prog,
		names:  make([]string, 0, len(ps.names)),
		height: ps.maxh,
	}
	for k := range ps.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

type parser struct {
	toks []Token
	// cur is the index of the next token.
	cur int
	// depth is the current nesting depth.
	depth int
	p     *parsectx

	prog []node
	// h and maxh are the current and largest value stack heights.
	h, maxh int
	names   map[string]bool
}

// peek returns the next token without consuming it. At the end of input, the
// result has kind TokenNone and the column just past the last token.
func (ps *parser) peek() Token {
	if ps.cur < len(ps.toks) {
		return ps.toks[ps.cur]
	}
	if len(ps.toks) == 0 {
		return Token{Pos: 1}
	}
	last := ps.toks[len(ps.toks)-1]
	return Token{Pos: last.Pos + len(last.Text)}
}

// advance consumes and returns the next token.
func (ps *parser) advance() Token {
	tok := ps.peek()
	if ps.cur < len(ps.toks) {
		ps.cur++
	}
	return tok
}

func (ps *parser) emit(n node) {
	ps.prog = append(ps.prog, n)
	ps.h += n.effect()
	if ps.h > ps.maxh {
		ps.maxh = ps.h
	}
}

// enter increases the nesting depth for an open parenthesis.
func (ps *parser) enter(open Token) error {
	ps.depth++
	if ps.depth > ps.p.maxdepth {
		return &DepthError{Col: open.Pos, Max: ps.p.maxdepth}
	}
	return nil
}

// parseexpr parses operands joined by binary operators that bind more
// tightly than until. Recursion here is bounded by the number of precedence
// levels; only parentheses nest without bound, and enter limits those.
func (ps *parser) parseexpr(until operator) error {
	if err := ps.parsepow(); err != nil {
		return err
	}
	for {
		tok := ps.peek()
		if tok.Kind != TokenOp {
			return nil
		}
		prec := binop(tok.Text)
		if prec.op == nodeNone {
			return &OperatorError{Col: tok.Pos, Operator: tok.Text}
		}
		if !prec.moreBinding(until) {
			return nil
		}
		ps.advance()
		if err := ps.parseexpr(prec); err != nil {
			return err
		}
		ps.emit(node{kind: prec.op, pos: tok.Pos})
	}
}

// parsepow parses a chain of exponentiations. All operands are emitted
// before the operators, which makes the chain right-associative without
// recursing on its length.
func (ps *parser) parsepow() error {
	if err := ps.parseunary(); err != nil {
		return err
	}
	var ups []int
	for tok := ps.peek(); tok.Kind == TokenOp && tok.Text == "^"; tok = ps.peek() {
		ps.advance()
		if err := ps.parseunary(); err != nil {
			return err
		}
		ups = append(ups, tok.Pos)
	}
	// a b c ^ ^ is a^(b^c), and the first operator applied is the last one
	// in the source.
	for i := len(ups) - 1; i >= 0; i-- {
		ps.emit(node{kind: nodePow, pos: ups[i]})
	}
	return nil
}

// parseunary parses any number of signs followed by a primary. Signs bind
// more tightly than exponentiation, so -2^2 is (-2)^2.
func (ps *parser) parseunary() error {
	var signs []Token
	for tok := ps.peek(); isSign(tok); tok = ps.peek() {
		signs = append(signs, ps.advance())
	}
	if err := ps.parseprimary(); err != nil {
		return err
	}
	for i := len(signs) - 1; i >= 0; i-- {
		if signs[i].Text == "-" {
			ps.emit(node{kind: nodeNeg, pos: signs[i].Pos})
		}
	}
	return nil
}

// parseprimary parses a number, name, call, or parenthesized expression.
func (ps *parser) parseprimary() error {
	tok := ps.advance()
	switch tok.Kind {
	case TokenNumber:
		ps.emit(node{kind: nodeNum, pos: tok.Pos, val: tok.Value, name: tok.Text})
	case TokenIdent:
		if v, ok := lookupConst(tok.Text); ok {
			ps.emit(node{kind: nodeConst, pos: tok.Pos, val: v, name: strings.ToLower(tok.Text)})
			return nil
		}
		if fn := lookupFunc(tok.Text); fn != nil {
			return ps.parsecall(tok, fn)
		}
		if len(tok.Text) != 1 {
			return &NameError{Col: tok.Pos, Name: tok.Text}
		}
		ps.names[tok.Text] = true
		ps.emit(node{kind: nodeName, pos: tok.Pos, name: tok.Text})
	case TokenLParen:
		if err := ps.enter(tok); err != nil {
			return err
		}
		if err := ps.parseexpr(exprprec); err != nil {
			return err
		}
		prev := ps.toks[ps.cur-1]
		if end := ps.advance(); end.Kind != TokenRParen {
			return itShouldNotHaveEndedThisWay(end, prev, tok.Pos)
		}
		ps.depth--
	case TokenRParen:
		return &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
	case TokenComma:
		return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
	case TokenOp:
		return &OperatorError{Col: tok.Pos, Operator: tok.Text, Unary: true}
	case TokenNone:
		return &EmptyExpressionError{Col: tok.Pos}
	default:
		panic("floatcalc: unknown token: " + tok.String())
	}
	return nil
}

// parsecall parses the argument list of a call to fn and checks its arity.
func (ps *parser) parsecall(name Token, fn Func) error {
	open := ps.advance()
	if open.Kind != TokenLParen {
		return &CallError{Col: name.Pos, Func: name.Text, Len: -1}
	}
	if err := ps.enter(open); err != nil {
		return err
	}
	argc := 0
	if ps.peek().Kind == TokenRParen {
		ps.advance()
	} else {
		for {
			if err := ps.parseexpr(exprprec); err != nil {
				return err
			}
			argc++
			prev := ps.toks[ps.cur-1]
			end := ps.advance()
			if end.Kind == TokenRParen {
				break
			}
			if end.Kind != TokenComma {
				return itShouldNotHaveEndedThisWay(end, prev, open.Pos)
			}
		}
	}
	ps.depth--
	if fn.Arity() != argc {
		return &CallError{Col: name.Pos, Func: name.Text, Len: argc}
	}
	ps.emit(node{kind: nodeCall, pos: name.Pos, name: strings.ToLower(name.Text), fn: fn, argc: argc})
	return nil
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. prev is the token before tok. open is
// the column of the parenthesis the subexpression is inside, or 0 if none.
func itShouldNotHaveEndedThisWay(tok, prev Token, open int) error {
	switch tok.Kind {
	case TokenNone:
		// Unexpected end implies an open parenthesis that was not closed.
		return &BracketError{Col: open, Left: "("}
	case TokenRParen:
		return &BracketError{Col: tok.Pos, Right: tok.Text}
	case TokenComma:
		// Separator outside a function call.
		return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
	default:
		return &TokenError{Col: tok.Pos, Text: tok.Text, After: prev.Text}
	}
}

// Vars returns the variable names used when evaluating the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression with every
// term in parentheses and function arguments in square brackets.
func (e *Expr) String() string {
	return format(e.prog)
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	default:
		return operator{}
	}
}

// exprprec is the precedence required to parse an entire subexpression.
var exprprec = operator{-128, true, nodeNone}
