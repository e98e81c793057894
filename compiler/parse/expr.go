package parse

import (
	"context"
)

type (
	Expr struct{}

	Term struct{}

	Factor struct{}
)

var (
	addOps = AnyOf{Spaced(Op('+'), SpaceAll), Spaced(Op('-'), SpaceAll)}
	mulOps = AnyOf{Spaced(Op('*'), SpaceAll), Spaced(Op('/'), SpaceAll)}
)

func (p Expr) Parse(ctx context.Context, b []byte, st int) (x any, i int, err error) {
	r := LeftToRight{
		Op:  addOps,
		Arg: Term{},
	}

	return r.Parse(ctx, b, st)
}

func (p Term) Parse(ctx context.Context, b []byte, st int) (x any, i int, err error) {
	r := LeftToRight{
		Op:  mulOps,
		Arg: Factor{},
	}

	return r.Parse(ctx, b, st)
}

func (p Factor) Parse(ctx context.Context, b []byte, st int) (x any, i int, err error) {
	r := Spaced(AnyOf{
		Context{
			Pre:  Const("("),
			Of:   Expr{},
			Post: Spaced(Const(")"), SpaceAll),
		},
		Num{},
		Name{},
	}, SpaceAll)

	return r.Parse(ctx, b, st)
}

func (Expr) String() string   { return "expression" }
func (Term) String() string   { return "term" }
func (Factor) String() string { return "factor" }
