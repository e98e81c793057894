package parse

import (
	"context"

	"tlog.app/go/errors"
)

type (
	LeftToRight struct {
		Op  Parser
		Arg Parser
	}

	BinOper interface {
		BinOp(ctx context.Context, l, r any) (any, error)
	}

	// Op is a binary operator token.
	Op byte
)

func (p LeftToRight) Parse(ctx context.Context, b []byte, st int) (x any, i int, err error) {
	x, i, err = p.Arg.Parse(ctx, b, st)
	if err != nil {
		return nil, i, errors.Wrap(err, "first arg")
	}

	for i < len(b) {
		var op any
		opst := i
		op, i, err = p.Op.Parse(ctx, b, i)
		if i == opst {
			err = nil
			break
		}
		if err != nil {
			return nil, i, errors.Wrap(err, "op")
		}

		c, ok := op.(BinOper)
		if !ok {
			return nil, i, errors.New("BinOper expected, got %T", op)
		}

		var r any
		r, i, err = p.Arg.Parse(ctx, b, i)
		if err != nil {
			return nil, i, errors.Wrap(err, "arg")
		}

		x, err = c.BinOp(ctx, x, r)
		if err != nil {
			return nil, i, errors.Wrap(err, "%v", op)
		}
	}

	return
}

func (p Op) Parse(ctx context.Context, b []byte, st int) (x any, i int, err error) {
	_, i, err = Const{byte(p)}.Parse(ctx, b, st)
	if err != nil {
		return nil, i, err
	}

	return p, i, nil
}

func (p Op) BinOp(ctx context.Context, l, r any) (any, error) {
	return builderFromContext(ctx).binop(byte(p), l, r)
}

func (p Op) String() string { return Const{byte(p)}.String() }
