package front

import (
	"fmt"

	"github.com/jorendorff/toy-calculator/compiler/ast"
	"github.com/jorendorff/toy-calculator/compiler/ir"
	"github.com/jorendorff/toy-calculator/compiler/parse"
	"tlog.app/go/errors"
)

type (
	// Pair is the real and imaginary decomposition of a complex subexpression.
	Pair struct {
		Re, Im ir.Ref
	}

	// Lowerer translates complex arithmetic into real operations
	// on its own Table.
	Lowerer struct {
		t *ir.Table
	}

	UndefinedVariableError struct {
		Name string
	}
)

var _ parse.Builder[Pair] = (*Lowerer)(nil)

func New() *Lowerer {
	return &Lowerer{t: ir.New()}
}

func NewTable(t *ir.Table) *Lowerer {
	return &Lowerer{t: t}
}

func (l *Lowerer) Table() *ir.Table { return l.t }

func (l *Lowerer) Lower(x ast.Node) (Pair, error) {
	switch x := x.(type) {
	case ast.Number:
		return l.Number(x.Text)
	case ast.Name:
		return l.Name(x.ID)
	case ast.BinOp:
		a, err := l.Lower(x.L)
		if err != nil {
			return Pair{}, err
		}

		b, err := l.Lower(x.R)
		if err != nil {
			return Pair{}, err
		}

		switch x.Op {
		case '+':
			return l.Add(a, b)
		case '-':
			return l.Sub(a, b)
		case '*':
			return l.Mul(a, b)
		case '/':
			return l.Div(a, b)
		}

		return Pair{}, errors.New("unsupported operator: %q", x.Op)
	default:
		return Pair{}, errors.New("unsupported node: %T", x)
	}
}

func (l *Lowerer) Number(text string) (Pair, error) {
	return Pair{Re: l.t.Constant(text), Im: l.t.Constant("0")}, nil
}

func (l *Lowerer) Name(id string) (Pair, error) {
	switch id {
	case "z":
		return Pair{Re: ir.Re, Im: ir.Im}, nil
	case "i":
		return Pair{Re: l.t.Constant("0"), Im: l.t.Constant("1")}, nil
	}

	return Pair{}, &UndefinedVariableError{Name: id}
}

func (l *Lowerer) Add(a, b Pair) (Pair, error) {
	re := l.t.Add(a.Re, b.Re)
	im := l.t.Add(a.Im, b.Im)

	return Pair{Re: re, Im: im}, nil
}

func (l *Lowerer) Sub(a, b Pair) (Pair, error) {
	re := l.t.Sub(a.Re, b.Re)
	im := l.t.Sub(a.Im, b.Im)

	return Pair{Re: re, Im: im}, nil
}

// Mul is (ar + ai i)(br + bi i) = (ar br - ai bi) + (ar bi + ai br) i.
func (l *Lowerer) Mul(a, b Pair) (Pair, error) {
	t := l.t

	rr := t.Mul(a.Re, b.Re)
	ii := t.Mul(a.Im, b.Im)
	re := t.Sub(rr, ii)

	reIm := t.Mul(a.Re, b.Im)
	imRe := t.Mul(a.Im, b.Re)
	im := t.Add(reIm, imRe)

	return Pair{Re: re, Im: im}, nil
}

// Div multiplies by the conjugate of b over |b|^2.
// A zero divisor is left to run time.
func (l *Lowerer) Div(a, b Pair) (Pair, error) {
	t := l.t

	denom := t.Add(t.Mul(b.Re, b.Re), t.Mul(b.Im, b.Im))

	re := t.Add(t.Mul(a.Re, b.Re), t.Mul(a.Im, b.Im))
	re = t.Div(re, denom)

	im := t.Sub(t.Mul(a.Im, b.Re), t.Mul(a.Re, b.Im))
	im = t.Div(im, denom)

	return Pair{Re: re, Im: im}, nil
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable: %v", e.Name)
}
