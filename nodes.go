package floatcalc

import (
	"strconv"
	"strings"
)

// node is a step of a compiled expression. An Expr holds its nodes in
// postfix order, so evaluating them in sequence against a value stack
// computes the expression without recursion.
type node struct {
	kind nodeKind
	// pos is the column of the token that produced the node.
	pos int

	// val is the value of a number or constant.
	val float64
	// name is the text of a number, the lowercase name of a constant or
	// function, or the name of a variable.
	name string

	fn   Func
	argc int
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum   // push val
	nodeConst // push val
	nodeName  // push lookup(name)
	nodeCall  // pop argc args, push fn(args...)

	nodeNeg // negate top
	nodeAdd // pop right, add to top
	nodeSub // pop right, sub from top
	nodeMul // pop right, mul top
	nodeDiv // pop right, div top
	nodePow // pop right, raise top
)

func (k nodeKind) String() string {
	switch k {
	case nodeNone:
		return "None"
	case nodeNum:
		return "Num"
	case nodeConst:
		return "Const"
	case nodeName:
		return "Name"
	case nodeCall:
		return "Call"
	case nodeNeg:
		return "Neg"
	case nodeAdd:
		return "Add"
	case nodeSub:
		return "Sub"
	case nodeMul:
		return "Mul"
	case nodeDiv:
		return "Div"
	case nodePow:
		return "Pow"
	default:
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// effect is the change in the height of the value stack from evaluating n.
func (n *node) effect() int {
	switch n.kind {
	case nodeNum, nodeConst, nodeName:
		return 1
	case nodeCall:
		return 1 - n.argc
	case nodeNeg:
		return 0
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		return -1
	default:
		panic("floatcalc: invalid node kind " + n.kind.String())
	}
}

// opstr returns the operator text of a binary node.
func (n *node) opstr() string {
	switch n.kind {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "^"
	default:
		panic("floatcalc: not a binary node: " + n.kind.String())
	}
}

// format renders a program as infix with every term parenthesized and the
// arguments of calls in square brackets.
func format(prog []node) string {
	var stack []string
	for i := range prog {
		n := &prog[i]
		switch n.kind {
		case nodeNum, nodeConst, nodeName:
			stack = append(stack, "("+n.name+")")
		case nodeNeg:
			stack[len(stack)-1] = "(-" + stack[len(stack)-1] + ")"
		case nodeCall:
			k := len(stack) - n.argc
			s := "(" + n.name + "[" + strings.Join(stack[k:], ", ") + "])"
			stack = append(stack[:k], s)
		case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1] = "(" + stack[len(stack)-1] + " " + n.opstr() + " " + r + ")"
		default:
			panic("floatcalc: invalid node kind " + n.kind.String())
		}
	}
	if len(stack) != 1 {
		panic("floatcalc: inconsistent stack: " + strconv.Itoa(len(stack)) + " items (bad program?)")
	}
	return stack[0]
}
