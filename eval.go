package floatcalc

import (
	"errors"
	"math"
)

// Vars binds single-letter variable names to values. Names are
// case-sensitive. The evaluator never modifies a Vars.
type Vars map[string]float64

// Eval evaluates the expression with the given variable bindings. vars may be
// nil if the expression uses no variables. The result is always finite;
// operations that are undefined or overflow return a *DomainError, and
// variables missing from vars return a *NameError.
func (e *Expr) Eval(vars Vars) (float64, error) {
	stack := make([]float64, 0, e.height)
	for i := range e.prog {
		n := &e.prog[i]
		switch n.kind {
		case nodeNum, nodeConst:
			if !finite(n.val) {
				return 0, &DomainError{Col: n.pos, X: n.val}
			}
			stack = append(stack, n.val)
		case nodeName:
			v, ok := vars[n.name]
			if !ok {
				return 0, &NameError{Col: n.pos, Name: n.name}
			}
			if !finite(v) {
				return 0, &DomainError{Col: n.pos, X: v, Func: n.name}
			}
			stack = append(stack, v)
		case nodeCall:
			k := len(stack) - n.argc
			r, err := n.fn.Call(stack[k:])
			if err != nil {
				var d *DomainError
				if errors.As(err, &d) {
					d.Col = n.pos
					d.Func = n.name
				}
				return 0, err
			}
			if !finite(r) {
				return 0, &DomainError{Col: n.pos, X: r, Func: n.name}
			}
			stack = append(stack[:k], r)
		case nodeNeg:
			v := &stack[len(stack)-1]
			*v = -*v
		case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			l := &stack[len(stack)-1]
			v, err := arith(n, *l, r)
			if err != nil {
				return 0, err
			}
			*l = v
		default:
			panic("floatcalc: invalid node " + n.kind.String())
		}
	}
	if len(stack) != 1 {
		panic("floatcalc: inconsistent stack after evaluation (bad program?)")
	}
	return stack[0], nil
}

// arith applies a binary operator node.
func arith(n *node, l, r float64) (float64, error) {
	var v float64
	switch n.kind {
	case nodeAdd:
		v = l + r
	case nodeSub:
		v = l - r
	case nodeMul:
		v = l * r
	case nodeDiv:
		// Guard against division by zero rather than producing infinity.
		if r == 0 {
			return 0, &DomainError{Col: n.pos, X: r, Arg: 2, Func: "/"}
		}
		v = l / r
	case nodePow:
		v = math.Pow(l, r)
	}
	if !finite(v) {
		return 0, &DomainError{Col: n.pos, X: v, Func: n.opstr()}
	}
	return v, nil
}

func finite(x float64) bool {
	return !math.IsInf(x, 0) && !math.IsNaN(x)
}

// Evaluate is a shortcut to validate, parse, and evaluate an expression.
func Evaluate(src string, vars Vars, opts ...ParseOption) (float64, error) {
	a, err := Parse(src, opts...)
	if err != nil {
		return 0, err
	}
	return a.Eval(vars)
}
