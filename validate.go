package floatcalc

// IsValid reports whether src is a structurally valid expression under the
// default options. It does not evaluate anything, so it never fails because
// of unknown variables, function arity, or domain errors.
func IsValid(src string) bool {
	return Validate(src) == nil
}

// Validate checks that src is a structurally valid expression. The result is
// a *LexError if src cannot be tokenized, otherwise nil or the first
// structural error found.
func Validate(src string, opts ...ParseOption) error {
	p := newparsectx(opts)
	toks, err := Tokenize(src)
	if err != nil {
		return err
	}
	return validate(toks, &p)
}

// validate applies the structural checks to a token stream in order,
// returning the first failure. It runs in time linear in len(toks).
func validate(toks []Token, p *parsectx) error {
	if len(toks) == 0 {
		return &EmptyExpressionError{Col: 1}
	}

	// Parentheses are balanced and not too deep.
	var opens []int
	for _, tok := range toks {
		switch tok.Kind {
		case TokenLParen:
			opens = append(opens, tok.Pos)
			if len(opens) > p.maxdepth {
				return &DepthError{Col: tok.Pos, Max: p.maxdepth}
			}
		case TokenRParen:
			if len(opens) == 0 {
				return &BracketError{Col: tok.Pos, Right: ")"}
			}
			opens = opens[:len(opens)-1]
		}
	}
	if len(opens) != 0 {
		return &BracketError{Col: opens[len(opens)-1], Left: "("}
	}

	// The first token can start an expression.
	switch first := toks[0]; {
	case first.Kind == TokenOp && !isSign(first):
		return &OperatorError{Col: first.Pos, Operator: first.Text, Unary: true}
	case first.Kind == TokenRParen:
		return &BracketError{Col: first.Pos, Right: first.Text}
	case first.Kind == TokenComma:
		return &SeparatorError{Col: first.Pos, Sep: first.Text}
	}

	// The last token can end an expression.
	switch last := toks[len(toks)-1]; last.Kind {
	case TokenOp:
		return &EmptyExpressionError{Col: last.Pos + len(last.Text)}
	case TokenLParen:
		return &BracketError{Col: last.Pos, Left: last.Text}
	case TokenComma:
		return &SeparatorError{Col: last.Pos, Sep: last.Text}
	}

	// Adjacent operators are only allowed when the second is a sign and the
	// first is binary, so 2*-3 and 2--3 are fine but --3 is not.
	for i := 1; i < len(toks); i++ {
		prev, tok := toks[i-1], toks[i]
		if prev.Kind != TokenOp || tok.Kind != TokenOp {
			continue
		}
		if isSign(tok) && !unaryAt(toks, i-1) {
			continue
		}
		return &OperatorError{Col: tok.Pos, Operator: tok.Text, Unary: true}
	}

	// Function names are followed by argument lists.
	for i, tok := range toks {
		if !isFuncName(tok) {
			continue
		}
		if i+1 == len(toks) || toks[i+1].Kind != TokenLParen {
			return &CallError{Col: tok.Pos, Func: tok.Text, Len: -1}
		}
	}

	// Commas separate complete arguments directly inside a call. The checks
	// above guarantee that a comma is neither first nor last.
	var calls []bool
	for i, tok := range toks {
		switch tok.Kind {
		case TokenLParen:
			calls = append(calls, i > 0 && isFuncName(toks[i-1]))
		case TokenRParen:
			calls = calls[:len(calls)-1]
		case TokenComma:
			if len(calls) == 0 || !calls[len(calls)-1] {
				return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
			}
			if !endsOperand(toks[i-1]) {
				return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
			}
			if next := toks[i+1]; !startsOperand(next) && !isSign(next) {
				return &SeparatorError{Col: tok.Pos, Sep: tok.Text}
			}
		}
	}

	// Operands need operators between them, and parentheses need contents.
	for i := 1; i < len(toks); i++ {
		prev, tok := toks[i-1], toks[i]
		switch {
		case endsOperand(prev) && startsOperand(tok):
			return &TokenError{Col: tok.Pos, Text: tok.Text, After: prev.Text}
		case tok.Kind == TokenRParen && prev.Kind == TokenOp:
			return &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
		case tok.Kind == TokenRParen && prev.Kind == TokenLParen:
			// An empty argument list is left for the parser to reject by
			// arity so the error names the function.
			if i < 2 || !isFuncName(toks[i-2]) {
				return &EmptyExpressionError{Col: tok.Pos, End: tok.Text}
			}
		case tok.Kind == TokenOp && !isSign(tok) && prev.Kind == TokenLParen:
			return &OperatorError{Col: tok.Pos, Operator: tok.Text, Unary: true}
		}
	}
	return nil
}

// isSign reports whether t is an operator that can be unary.
func isSign(t Token) bool {
	return t.Kind == TokenOp && (t.Text == "-" || t.Text == "+")
}

// unaryAt reports whether an operator at toks[i] would be unary.
func unaryAt(toks []Token, i int) bool {
	if i == 0 {
		return true
	}
	switch toks[i-1].Kind {
	case TokenOp, TokenLParen, TokenComma:
		return true
	}
	return false
}

// isFuncName reports whether t names a function.
func isFuncName(t Token) bool {
	if t.Kind != TokenIdent {
		return false
	}
	if _, ok := lookupConst(t.Text); ok {
		return false
	}
	return lookupFunc(t.Text) != nil
}

// endsOperand reports whether t can be the last token of an operand.
func endsOperand(t Token) bool {
	switch t.Kind {
	case TokenNumber, TokenRParen:
		return true
	case TokenIdent:
		return !isFuncName(t)
	}
	return false
}

// startsOperand reports whether t can be the first token of an operand,
// not counting unary signs.
func startsOperand(t Token) bool {
	switch t.Kind {
	case TokenNumber, TokenIdent, TokenLParen:
		return true
	}
	return false
}
