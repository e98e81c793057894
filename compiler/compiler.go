package compiler

import (
	"context"
	"os"

	"tlog.app/go/errors"
	"tlog.app/go/tlog"

	"github.com/jorendorff/toy-calculator/compiler/ast"
	"github.com/jorendorff/toy-calculator/compiler/back"
	"github.com/jorendorff/toy-calculator/compiler/front"
	"github.com/jorendorff/toy-calculator/compiler/ir"
	"github.com/jorendorff/toy-calculator/compiler/parse"
)

func CompileFile(ctx context.Context, name string) (p *back.Program, err error) {
	text, err := os.ReadFile(name)
	if err != nil {
		return nil, errors.Wrap(err, "read file")
	}

	tlog.SpanFromContext(ctx).Printw("read file", "size", len(text), "name", name)

	return Compile(ctx, name, text)
}

// Compile lowers the formula while parsing it, without building a tree.
func Compile(ctx context.Context, name string, text []byte) (p *back.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compile", "name", name)
	defer tr.Finish("err", &err)

	l := newLowerer(tr)

	res, err := parse.Parse[front.Pair](ctx, text, l)
	if err != nil {
		return nil, err
	}

	return emit(ctx, l.Table(), res)
}

func CompileAST(ctx context.Context, x ast.Node) (p *back.Program, err error) {
	tr, ctx := tlog.SpawnFromContextAndWrap(ctx, "compile ast")
	defer tr.Finish("err", &err)

	l := newLowerer(tr)

	res, err := l.Lower(x)
	if err != nil {
		return nil, err
	}

	return emit(ctx, l.Table(), res)
}

func Parse(ctx context.Context, text []byte) (ast.Node, error) {
	return parse.Parse[ast.Node](ctx, text, ast.Builder{})
}

func newLowerer(tr tlog.Span) *front.Lowerer {
	t := ir.New()
	t.RecordOrigin = tr.If("dump_values")

	return front.NewTable(t)
}

func emit(ctx context.Context, t *ir.Table, res front.Pair) (p *back.Program, err error) {
	tr := tlog.SpanFromContext(ctx)

	if tr.If("dump_values") {
		for i := 0; i < t.Len(); i++ {
			r := ir.Ref(i)

			tr.Printw("value", "id", r, "val", t.Value(r), "from", t.Origin(r))
		}

		tr.Printw("result", "re", res.Re, "im", res.Im)
	}

	p, err = back.New().Emit(ctx, t, res.Re, res.Im)
	if err != nil {
		return nil, errors.Wrap(err, "emit")
	}

	if tr.If("dump_program") {
		tr.Printw("program", "src", string(p.AppendSource(nil, "f")))
	}

	return p, nil
}
