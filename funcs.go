package floatcalc

import (
	"math"
	"math/big"
	"strings"

	"github.com/zephyrtronium/bigfloat"
)

// Func is a function from reals to reals with a fixed number of arguments.
type Func interface {
	// Call evaluates the function. len(invoc) is always equal to Arity.
	// If an argument is outside the function's domain, Call returns a
	// *DomainError identifying the argument; the evaluator fills in the
	// function name and position. Call must not modify invoc.
	Call(invoc []float64) (float64, error)

	// Arity is the exact number of arguments the function accepts.
	Arity() int
}

// globalfuncs is the function table. Names are lowercase; lookups fold case.
var globalfuncs = map[string]Func{
	"sin":  Monadic(math.Sin, nil),
	"cos":  Monadic(math.Cos, nil),
	"tan":  Monadic(math.Tan, nil),
	"sqrt": Monadic(math.Sqrt, func(x float64) bool { return x >= 0 }),
	"log":  Monadic(math.Log, func(x float64) bool { return x > 0 }),
	"pow":  Dyadic(math.Pow, nil),
}

// lookupFunc returns the function named name, ignoring case, or nil.
func lookupFunc(name string) Func {
	return globalfuncs[strings.ToLower(name)]
}

type monadic struct {
	f   func(float64) float64
	dom func(float64) bool
}

func (m monadic) Call(invoc []float64) (float64, error) {
	x := invoc[0]
	if m.dom != nil && !m.dom(x) {
		return 0, &DomainError{X: x, Arg: 1}
	}
	return m.f(x), nil
}

func (m monadic) Arity() int {
	return 1
}

// Monadic wraps a function of one variable into a Func. If dom is not nil,
// arguments for which it returns false are domain errors. Results that are
// not finite are domain errors regardless of dom.
func Monadic(f func(float64) float64, dom func(float64) bool) Func {
	return monadic{f: f, dom: dom}
}

type dyadic struct {
	f   func(x, y float64) float64
	dom func(x, y float64) int
}

func (d dyadic) Call(invoc []float64) (float64, error) {
	x, y := invoc[0], invoc[1]
	if d.dom != nil {
		switch k := d.dom(x, y); k {
		case 0: // do nothing
		case 1:
			return 0, &DomainError{X: x, Arg: 1}
		default:
			return 0, &DomainError{X: y, Arg: k}
		}
	}
	return d.f(x, y), nil
}

func (d dyadic) Arity() int {
	return 2
}

// Dyadic wraps a function of two variables into a Func. If dom is not nil,
// it returns the 1-based index of an argument outside the function's domain,
// or 0 if both are acceptable.
func Dyadic(f func(x, y float64) float64, dom func(x, y float64) int) Func {
	return dyadic{f: f, dom: dom}
}

// exactconsts computes the constants to a given precision.
var exactconsts = map[string]func(out *big.Float) *big.Float{
	"pi": bigfloat.Pi,
	"e": func(out *big.Float) *big.Float {
		var one big.Float
		one.SetFloat64(1)
		return bigfloat.Exp(out, &one)
	},
}

// constPrec is the precision used to compute constants before rounding.
const constPrec = 128

// constants is the constant table. Names are lowercase; lookups fold case.
var constants = func() map[string]float64 {
	m := make(map[string]float64, len(exactconsts))
	for k, f := range exactconsts {
		m[k], _ = f(new(big.Float).SetPrec(constPrec)).Float64()
	}
	return m
}()

// lookupConst returns the value of the constant named name, ignoring case.
func lookupConst(name string) (float64, bool) {
	v, ok := constants[strings.ToLower(name)]
	return v, ok
}

// Exact computes the named constant to prec bits. The result is nil if there
// is no such constant.
func Exact(name string, prec uint) *big.Float {
	f := exactconsts[strings.ToLower(name)]
	if f == nil {
		return nil
	}
	return f(new(big.Float).SetPrec(prec)).SetPrec(prec)
}

// Funcs returns the arity of each function, keyed by lowercase name.
func Funcs() map[string]int {
	m := make(map[string]int, len(globalfuncs))
	for k, f := range globalfuncs {
		m[k] = f.Arity()
	}
	return m
}

// Constants returns the value of each constant, keyed by lowercase name.
func Constants() map[string]float64 {
	m := make(map[string]float64, len(constants))
	for k, v := range constants {
		m[k] = v
	}
	return m
}
