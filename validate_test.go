package floatcalc

import (
	"reflect"
	"strings"
	"testing"
)

func TestValidateAccepts(t *testing.T) {
	cases := []string{
		"1",
		"x",
		"foo",
		"2 + 3 * 4",
		"(2 + 3) * 4",
		"2^3^2",
		"-x",
		"+3",
		"2--3",
		"2-+3",
		"2*-3",
		"2^-1",
		"-sqrt(4)",
		"pow(2, 3)",
		"pow(-2, -3)",
		"pow((1), (2))",
		"pow(sin(x), cos(y))",
		"PI * r^2",
		"Sin(0)",
		"1.5e-2",
		"((1))",
		"  1  +  2  ",
		// Arity and names are checked by the parser, not the validator.
		"sin()",
		"pow(2)",
		"sin(1, 2)",
		"abc + 1",
	}
	for _, src := range cases {
		if err := Validate(src); err != nil {
			t.Errorf("%q should be valid but got %v", src, err)
		}
		if !IsValid(src) {
			t.Errorf("IsValid(%q) is false", src)
		}
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  error
	}{
		// empty
		{"empty", "", &EmptyExpressionError{Col: 1}},
		{"spaces", "   ", &EmptyExpressionError{Col: 1}},
		// balance
		{"unclosed", "(1", &BracketError{Col: 1, Left: "("}},
		{"unclosed-inner", "(1 + (2)", &BracketError{Col: 1, Left: "("}},
		{"unopened", "1)", &BracketError{Col: 2, Right: ")"}},
		{"backwards", ")(", &BracketError{Col: 1, Right: ")"}},
		// first token
		{"first-mul", "*2", &OperatorError{Col: 1, Operator: "*", Unary: true}},
		{"first-pow", "^2", &OperatorError{Col: 1, Operator: "^", Unary: true}},
		{"first-comma", ",1", &SeparatorError{Col: 1, Sep: ","}},
		// last token
		{"last-add", "1+", &EmptyExpressionError{Col: 3}},
		{"last-pow", "2 ^", &EmptyExpressionError{Col: 4}},
		{"last-comma", "1,", &SeparatorError{Col: 2, Sep: ","}},
		// operator adjacency
		{"negneg", "--3", &OperatorError{Col: 2, Operator: "-", Unary: true}},
		{"subnegneg", "2---3", &OperatorError{Col: 4, Operator: "-", Unary: true}},
		{"muldiv", "2*/3", &OperatorError{Col: 3, Operator: "/", Unary: true}},
		{"addmul", "2+*3", &OperatorError{Col: 3, Operator: "*", Unary: true}},
		{"parenneg", "(--3)", &OperatorError{Col: 3, Operator: "-", Unary: true}},
		// functions
		{"bare-func", "sin 2", &CallError{Col: 1, Func: "sin", Len: -1}},
		{"lone-func", "sqrt", &CallError{Col: 1, Func: "sqrt", Len: -1}},
		{"func-op", "2 + log * 3", &CallError{Col: 5, Func: "log", Len: -1}},
		// commas
		{"top-comma", "1,2", &SeparatorError{Col: 2, Sep: ","}},
		{"paren-comma", "(1,2)", &SeparatorError{Col: 3, Sep: ","}},
		{"double-comma", "pow(1,,2)", &SeparatorError{Col: 6, Sep: ","}},
		{"lead-comma", "pow(,2)", &SeparatorError{Col: 5, Sep: ","}},
		{"trail-comma", "pow(1,)", &SeparatorError{Col: 6, Sep: ","}},
		{"op-comma", "pow(1+,2)", &SeparatorError{Col: 7, Sep: ","}},
		{"comma-op", "pow(1,*2)", &SeparatorError{Col: 6, Sep: ","}},
		{"nested-comma", "pow((1,2))", &SeparatorError{Col: 7, Sep: ","}},
		// operands and parentheses
		{"numnum", "2 3", &TokenError{Col: 3, Text: "3", After: "2"}},
		{"namename", "x y", &TokenError{Col: 3, Text: "y", After: "x"}},
		{"numparen", "2(3)", &TokenError{Col: 2, Text: "(", After: "2"}},
		{"parenparen", "(1)(2)", &TokenError{Col: 4, Text: "(", After: ")"}},
		{"constcall", "pi(2)", &TokenError{Col: 3, Text: "(", After: "pi"}},
		{"callnum", "sin(1) 2", &TokenError{Col: 8, Text: "2", After: ")"}},
		{"empty-parens", "()", &EmptyExpressionError{Col: 2, End: ")"}},
		{"empty-nested", "1 + (())", &EmptyExpressionError{Col: 7, End: ")"}},
		{"open-op-close", "(1+)", &EmptyExpressionError{Col: 4, End: ")"}},
		{"paren-mul", "(*2)", &OperatorError{Col: 2, Operator: "*", Unary: true}},
		// lexing
		{"lex", "1 @ 2", &LexError{Text: "@", Col: 3}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := Validate(c.src)
			if !reflect.DeepEqual(err, c.err) {
				t.Errorf("validating %q:\n\twant %#v\n\tgot  %#v", c.src, c.err, err)
			}
			if IsValid(c.src) {
				t.Errorf("IsValid(%q) is true", c.src)
			}
		})
	}
}

func TestValidateDepth(t *testing.T) {
	deep := strings.Repeat("(", DefaultMaxDepth) + "1" + strings.Repeat(")", DefaultMaxDepth)
	if err := Validate(deep); err != nil {
		t.Errorf("depth %d should be allowed but got %v", DefaultMaxDepth, err)
	}
	deeper := "(" + deep + ")"
	want := &DepthError{Col: DefaultMaxDepth + 1, Max: DefaultMaxDepth}
	if err := Validate(deeper); !reflect.DeepEqual(err, want) {
		t.Errorf("depth %d: want %v, got %v", DefaultMaxDepth+1, want, err)
	}
	if err := Validate("((1))", MaxDepth(2)); err != nil {
		t.Errorf("depth 2 with max 2: %v", err)
	}
	if err := Validate("sin(sin(1))", MaxDepth(1)); !reflect.DeepEqual(err, &DepthError{Col: 8, Max: 1}) {
		t.Errorf("nested calls with max 1: got %v", err)
	}
	// Unbalanced input deeper than the limit reports depth first.
	if err := Validate(strings.Repeat("(", 1000)); KindOf(err) != KindSyntax {
		t.Errorf("deep unbalanced input: got %v", err)
	}
}

func TestMaxDepthPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MaxDepth(0) didn't panic")
		}
	}()
	MaxDepth(0)
}
