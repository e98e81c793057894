package back

import (
	"context"

	"github.com/jorendorff/toy-calculator/compiler/ir"
	"github.com/jorendorff/toy-calculator/compiler/set"
	"tlog.app/go/errors"
	"tlog.app/go/tlog"
)

type (
	// Emitter turns a finished Table into a Program.
	// Values used more than once get a temporary, everything else is inlined.
	Emitter struct {
		t *ir.Table

		uses []int

		// named values get temporaries numbered in table order
		named set.Bitmap
	}
)

func New() *Emitter {
	return &Emitter{}
}

func (e *Emitter) Emit(ctx context.Context, t *ir.Table, re, im ir.Ref) (p *Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "back: emit", "values", t.Len(), "re", re, "im", im)
	defer tr.Finish("err", &err)

	for _, r := range []ir.Ref{re, im} {
		if r < 0 || int(r) >= t.Len() {
			return nil, errors.New("result %d is out of table of %d", r, t.Len())
		}
	}

	e.reset(t)

	err = e.countUses(re, im)
	if err != nil {
		return nil, errors.Wrap(err, "count uses")
	}

	e.nameTemps()

	if tr.If("dump_uses") {
		tr.Printw("uses", "uses", e.uses, "named", e.named)
	}

	p = &Program{
		Temps: e.named.Size(),
	}

	e.named.Range(func(i int) bool {
		p.Assigns = append(p.Assigns, Assign{
			Temp: Temp(len(p.Assigns)),
			Expr: e.inline(ir.Ref(i)),
		})

		return true
	})

	p.Re = e.expr(re)
	p.Im = e.expr(im)

	return p, nil
}

func (e *Emitter) reset(t *ir.Table) {
	e.t = t
	e.uses = make([]int, t.Len())
	e.named = set.MakeBitmap(t.Len())
}

func (e *Emitter) countUses(re, im ir.Ref) error {
	for i := 0; i < e.t.Len(); i++ {
		v := e.t.Value(ir.Ref(i))

		if v.Kind == ir.Argument && ir.Ref(i) != ir.Re && ir.Ref(i) != ir.Im {
			return errors.New("argument %v at %d", v.Text, i)
		}

		if v.Kind != ir.BinaryOp {
			continue
		}

		e.uses[v.L]++
		e.uses[v.R]++
	}

	e.uses[re]++
	e.uses[im]++

	return nil
}

func (e *Emitter) nameTemps() {
	for i, n := range e.uses {
		if n < 2 || e.t.Kind(ir.Ref(i)) != ir.BinaryOp {
			continue
		}

		e.named.Set(i)
	}
}

// expr references r, by temporary name if it has one.
func (e *Emitter) expr(r ir.Ref) Expr {
	if e.named.IsSet(int(r)) {
		return Temp(e.named.Rank(int(r)))
	}

	return e.inline(r)
}

// inline builds r itself; operands are referenced with expr.
func (e *Emitter) inline(r ir.Ref) Expr {
	v := e.t.Value(r)

	switch v.Kind {
	case ir.Argument:
		return Arg{N: r, Name: v.Text}
	case ir.Constant:
		return Const{Text: v.Text}
	case ir.BinaryOp:
		return BinOp{Op: v.Op, L: e.expr(v.L), R: e.expr(v.R)}
	default:
		panic(v.Kind)
	}
}
