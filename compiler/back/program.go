package back

import (
	"github.com/jorendorff/toy-calculator/compiler/ir"
)

type (
	// Func evaluates a compiled formula at z = re + im*i.
	Func func(re, im float64) (float64, float64)

	Program struct {
		Assigns []Assign

		Re, Im Expr

		Temps int
	}

	Assign struct {
		Temp Temp
		Expr Expr
	}

	Expr interface {
		expr()
	}

	// Arg is one of the two input parameters, ir.Re or ir.Im.
	Arg struct {
		N    ir.Ref
		Name string
	}

	Const struct {
		Text string
	}

	Temp int

	BinOp struct {
		Op ir.Op

		L, R Expr
	}

	frame struct {
		args  [2]float64
		temps []float64
	}

	evalf func(f *frame) float64
)

func (Arg) expr()   {}
func (Const) expr() {}
func (Temp) expr()  {}
func (BinOp) expr() {}

// Func links the program into a callable.
// Each call gets its own temporaries so the result is safe for concurrent use.
func (p *Program) Func() Func {
	assigns := make([]evalf, len(p.Assigns))
	dst := make([]Temp, len(p.Assigns))

	for i, a := range p.Assigns {
		assigns[i] = link(a.Expr)
		dst[i] = a.Temp
	}

	re, im := link(p.Re), link(p.Im)
	n := p.Temps

	return func(x, y float64) (float64, float64) {
		f := frame{args: [2]float64{x, y}}

		if n != 0 {
			f.temps = make([]float64, n)
		}

		for i, a := range assigns {
			f.temps[dst[i]] = a(&f)
		}

		return re(&f), im(&f)
	}
}

func link(x Expr) evalf {
	switch x := x.(type) {
	case Arg:
		n := x.N

		return func(f *frame) float64 { return f.args[n] }
	case Const:
		v := ir.ParseConst(x.Text)

		return func(f *frame) float64 { return v }
	case Temp:
		return func(f *frame) float64 { return f.temps[x] }
	case BinOp:
		l, r := link(x.L), link(x.R)

		switch x.Op {
		case ir.Add:
			return func(f *frame) float64 { return l(f) + r(f) }
		case ir.Sub:
			return func(f *frame) float64 { return l(f) - r(f) }
		case ir.Mul:
			return func(f *frame) float64 { return l(f) * r(f) }
		case ir.Div:
			return func(f *frame) float64 { return l(f) / r(f) }
		}

		panic(x.Op)
	default:
		panic(x)
	}
}
