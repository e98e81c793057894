package back

import (
	"math"
	"strconv"
	"strings"

	"github.com/nikandfor/hacked/hfmt"

	"github.com/jorendorff/toy-calculator/compiler/ir"
	"github.com/jorendorff/toy-calculator/compiler/set"
)

type (
	renderer struct {
		b []byte

		math bool
	}
)

// AppendSource renders p as a Go function with the Func signature.
// The result may refer to package math, AppendFile adds the import when it does.
func (p *Program) AppendSource(b []byte, name string) []byte {
	r := renderer{b: b}

	r.function(p, name)

	return r.b
}

func (p *Program) AppendFile(b []byte, pkg, name string) []byte {
	var r renderer

	r.function(p, name)

	b = hfmt.Appendf(b, "package %s\n\n", pkg)

	if r.math {
		b = append(b, "import \"math\"\n\n"...)
	}

	return append(b, r.b...)
}

func (t Temp) String() string {
	return "t" + strconv.Itoa(int(t))
}

func (r *renderer) function(p *Program, name string) {
	r.b = hfmt.Appendf(r.b, "func %s(re, im float64) (float64, float64) {\n", name)

	live := p.live()

	for _, a := range p.Assigns {
		r.b = hfmt.Appendf(r.b, "\t%s := ", a.Temp.String())
		r.expr(a.Expr, false, false)
		r.b = append(r.b, '\n')

		// Go rejects unused variables.
		if !live.IsSet(int(a.Temp)) {
			r.b = hfmt.Appendf(r.b, "\t_ = %s\n", a.Temp.String())
		}
	}

	r.b = append(r.b, "\treturn "...)
	r.expr(p.Re, false, false)
	r.b = append(r.b, ", "...)
	r.expr(p.Im, false, false)
	r.b = append(r.b, "\n}\n"...)
}

// live returns the temporaries the results depend on.
func (p *Program) live() set.Bitmap {
	s := set.MakeBitmap(p.Temps)

	var mark func(x Expr)

	mark = func(x Expr) {
		switch x := x.(type) {
		case Temp:
			s.Set(int(x))
		case BinOp:
			mark(x.L)
			mark(x.R)
		}
	}

	mark(p.Re)
	mark(p.Im)

	for i := len(p.Assigns) - 1; i >= 0; i-- {
		a := p.Assigns[i]

		if s.IsSet(int(a.Temp)) {
			mark(a.Expr)
		}
	}

	return s
}

func (r *renderer) expr(x Expr, nested, divisor bool) {
	switch x := x.(type) {
	case Arg:
		r.b = append(r.b, x.Name...)
	case Const:
		r.constant(x.Text, divisor)
	case Temp:
		r.b = append(r.b, x.String()...)
	case BinOp:
		if nested {
			r.b = append(r.b, '(')
		}

		r.expr(x.L, true, false)
		r.b = append(r.b, ' ', byte(x.Op), ' ')
		r.expr(x.R, true, x.Op == ir.Div)

		if nested {
			r.b = append(r.b, ')')
		}
	default:
		panic(x)
	}
}

// constant renders literals Go would reject or read differently:
// non-finite values, constant zero divisors, negative zero, literals
// which underflow to zero and integers with leading zeros which Go takes for octal.
func (r *renderer) constant(text string, divisor bool) {
	v := ir.ParseConst(text)

	switch {
	case math.IsNaN(v):
		r.b = append(r.b, "math.NaN()"...)
		r.math = true
	case math.IsInf(v, 1):
		r.b = append(r.b, "math.Inf(1)"...)
		r.math = true
	case math.IsInf(v, -1):
		r.b = append(r.b, "math.Inf(-1)"...)
		r.math = true
	case v == 0 && math.Signbit(v):
		r.b = append(r.b, "math.Copysign(0, -1)"...)
		r.math = true
	case v == 0 && divisor:
		r.b = append(r.b, "math.Copysign(0, 1)"...)
		r.math = true
	case v == 0:
		r.b = append(r.b, '0')
	case len(text) > 1 && text[0] == '0' && strings.Trim(text, "0123456789") == "":
		r.b = append(r.b, ir.FormatConst(v)...)
	default:
		r.b = append(r.b, text...)
	}
}
