package floatcalc_test

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"testing"

	"github.com/zephyrtronium/floatcalc"
)

func TestFuncs(t *testing.T) {
	want := map[string]int{
		"sin":  1,
		"cos":  1,
		"tan":  1,
		"sqrt": 1,
		"log":  1,
		"pow":  2,
	}
	got := floatcalc.Funcs()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrong function table:\n\twant %v\n\tgot  %v", want, got)
	}
	// The result is a copy.
	got["sin"] = 5
	if floatcalc.Funcs()["sin"] != 1 {
		t.Error("Funcs shares memory with the function table")
	}
}

func TestConstants(t *testing.T) {
	want := map[string]float64{"pi": math.Pi, "e": math.E}
	got := floatcalc.Constants()
	if len(got) != len(want) {
		t.Errorf("wrong constants: want %v, got %v", want, got)
	}
	for k, v := range want {
		if math.Abs(got[k]-v) > 1e-15 {
			t.Errorf("%s: want %g, got %g", k, v, got[k])
		}
	}
}

func TestExact(t *testing.T) {
	cases := []struct {
		name string
		prec uint
		want string
	}{
		{"pi", 128, "3.14159265358979323846264338327950288419716939937510"},
		{"PI", 128, "3.14159265358979323846264338327950288419716939937510"},
		{"e", 128, "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759"},
		{"E", 256, "2.71828182845904523536028747135266249775724709369995957496696762772407663035354759"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			x := floatcalc.Exact(c.name, c.prec)
			if x == nil {
				t.Fatalf("no constant %q", c.name)
			}
			if x.Prec() != c.prec {
				t.Errorf("want precision %d, got %d", c.prec, x.Prec())
			}
			want, _, err := big.ParseFloat(c.want, 10, c.prec, big.ToNearestEven)
			if err != nil {
				t.Fatal(err)
			}
			// Allow a few units in the last place.
			var diff big.Float
			diff.Sub(x, want).Abs(&diff)
			tol := new(big.Float).SetMantExp(big.NewFloat(1), want.MantExp(nil)-int(c.prec)+6)
			if diff.Cmp(tol) > 0 {
				t.Errorf("want %s, got %s", c.want, x.Text('g', 40))
			}
		})
	}
	if x := floatcalc.Exact("tau", 64); x != nil {
		t.Errorf("Exact gave %v for an unknown constant", x)
	}
}

func TestMonadic(t *testing.T) {
	f := floatcalc.Monadic(math.Sqrt, func(x float64) bool { return x >= 0 })
	if n := f.Arity(); n != 1 {
		t.Errorf("want arity 1, got %d", n)
	}
	if r, err := f.Call([]float64{9}); err != nil || r != 3 {
		t.Errorf("sqrt(9): want 3, got %g, %v", r, err)
	}
	r, err := f.Call([]float64{-9})
	want := &floatcalc.DomainError{X: -9, Arg: 1}
	if !reflect.DeepEqual(err, want) {
		t.Errorf("sqrt(-9): want %#v, got %g, %#v", want, r, err)
	}
	g := floatcalc.Monadic(math.Abs, nil)
	if r, err := g.Call([]float64{-2}); err != nil || r != 2 {
		t.Errorf("abs(-2): want 2, got %g, %v", r, err)
	}
}

func TestDyadic(t *testing.T) {
	// Logarithm in a base.
	f := floatcalc.Dyadic(
		func(x, b float64) float64 { return math.Log(x) / math.Log(b) },
		func(x, b float64) int {
			switch {
			case x <= 0:
				return 1
			case b <= 0 || b == 1:
				return 2
			}
			return 0
		},
	)
	if n := f.Arity(); n != 2 {
		t.Errorf("want arity 2, got %d", n)
	}
	if r, err := f.Call([]float64{8, 2}); err != nil || r != 3 {
		t.Errorf("logb(8, 2): want 3, got %g, %v", r, err)
	}
	cases := []struct {
		args []float64
		err  *floatcalc.DomainError
	}{
		{[]float64{-1, 2}, &floatcalc.DomainError{X: -1, Arg: 1}},
		{[]float64{8, 1}, &floatcalc.DomainError{X: 1, Arg: 2}},
		{[]float64{-1, 1}, &floatcalc.DomainError{X: -1, Arg: 1}},
	}
	for _, c := range cases {
		_, err := f.Call(c.args)
		if !reflect.DeepEqual(err, c.err) {
			t.Errorf("logb%v: want %#v, got %#v", c.args, c.err, err)
		}
		if !errors.Is(err, floatcalc.ErrDomain) {
			t.Errorf("logb%v: %v isn't ErrDomain", c.args, err)
		}
	}
}

func ExampleExact() {
	fmt.Println(floatcalc.Exact("pi", 128).Text('f', 30))

	// Output:
	// 3.141592653589793238462643383280
}

func ExampleFuncs() {
	fs := floatcalc.Funcs()
	fmt.Println(fs["sqrt"], fs["pow"])

	// Output:
	// 1 2
}
