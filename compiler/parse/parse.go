package parse

import (
	"context"
	"fmt"

	"tlog.app/go/errors"
)

type (
	// Builder receives the formula bottom-up, in a single left-to-right pass.
	Builder[T any] interface {
		Number(text string) (T, error)
		Name(id string) (T, error)

		Add(l, r T) (T, error)
		Sub(l, r T) (T, error)
		Mul(l, r T) (T, error)
		Div(l, r T) (T, error)
	}

	State struct {
		b []byte

		Grammar Parser
	}

	Parser interface {
		Parse(ctx context.Context, b []byte, st int) (x any, i int, err error)
	}

	SyntaxError struct {
		Pos int
		Err error
	}

	builder interface {
		number(text string) (any, error)
		name(id string) (any, error)
		binop(op byte, l, r any) (any, error)

		failed() error
	}

	erased[T any] struct {
		b   Builder[T]
		err error
	}

	builderCtxKey struct{}
)

func Parse[T any](ctx context.Context, text []byte, b Builder[T]) (res T, err error) {
	s := New(text)

	x, err := s.parse(ctx, &erased[T]{b: b})
	if err != nil {
		return res, err
	}

	return x.(T), nil
}

func New(text []byte) *State {
	return &State{
		b:       text,
		Grammar: Expr{},
	}
}

func (s *State) parse(ctx context.Context, b builder) (x any, err error) {
	ctx = context.WithValue(ctx, builderCtxKey{}, b)

	x, i, err := s.Grammar.Parse(ctx, s.b, 0)

	if err := b.failed(); err != nil {
		return nil, err
	}

	if err != nil {
		return nil, &SyntaxError{Pos: i, Err: err}
	}

	i = SpaceAll.Skip(s.b, i)

	if i != len(s.b) {
		return nil, &SyntaxError{Pos: i, Err: errors.New("unexpected %q", s.b[i])}
	}

	return x, nil
}

func builderFromContext(ctx context.Context) builder {
	return ctx.Value(builderCtxKey{}).(builder)
}

func (e *erased[T]) number(text string) (any, error) {
	return e.check(e.b.Number(text))
}

func (e *erased[T]) name(id string) (any, error) {
	return e.check(e.b.Name(id))
}

func (e *erased[T]) binop(op byte, l, r any) (any, error) {
	x, y := l.(T), r.(T)

	switch op {
	case '+':
		return e.check(e.b.Add(x, y))
	case '-':
		return e.check(e.b.Sub(x, y))
	case '*':
		return e.check(e.b.Mul(x, y))
	case '/':
		return e.check(e.b.Div(x, y))
	default:
		panic(op)
	}
}

// check keeps the first builder error so it is returned as is
// instead of being reported as malformed input.
func (e *erased[T]) check(x T, err error) (any, error) {
	if err != nil && e.err == nil {
		e.err = err
	}

	return x, err
}

func (e *erased[T]) failed() error { return e.err }

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at %d: %v", e.Pos, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }
