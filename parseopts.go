package floatcalc

// ParseOption is an option for parsing and validation.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 64

// parsectx holds general data for parsing.
type parsectx struct {
	// maxdepth is the maximum nesting depth of parentheses, counting the
	// argument lists of function calls.
	maxdepth int
}

func newparsectx(opts []ParseOption) parsectx {
	p := parsectx{maxdepth: DefaultMaxDepth}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		p = opt.parseOption(p)
	}
	return p
}

type depthopt int

// MaxDepth sets the maximum nesting depth of parentheses and function calls.
// Deeper expressions are rejected with a *DepthError. Panics if n < 1.
func MaxDepth(n int) ParseOption {
	if n < 1 {
		panic("floatcalc: max depth must be positive")
	}
	return depthopt(n)
}

func (o depthopt) parseOption(p parsectx) parsectx {
	p.maxdepth = int(o)
	return p
}
