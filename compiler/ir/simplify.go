package ir

import (
	"strconv"

	"tlog.app/go/loc"
)

func (t *Table) Add(a, b Ref) Ref {
	from := t.caller(1)

	switch {
	case t.IsZero(a):
		return b
	case t.IsZero(b):
		return a
	case t.IsConstant(a) && t.IsConstant(b):
		return t.fold(Add, a, b, from)
	}

	return t.binop(Add, a, b, from)
}

func (t *Table) Sub(a, b Ref) Ref {
	from := t.caller(1)

	switch {
	case t.IsZero(b):
		return a
	case t.IsConstant(a) && t.IsConstant(b):
		return t.fold(Sub, a, b, from)
	}

	return t.binop(Sub, a, b, from)
}

func (t *Table) Mul(a, b Ref) Ref {
	from := t.caller(1)

	switch {
	case t.IsZero(a):
		return a
	case t.IsZero(b):
		return b
	case t.IsOne(a):
		return b
	case t.IsOne(b):
		return a
	case t.IsConstant(a) && t.IsConstant(b):
		return t.fold(Mul, a, b, from)
	}

	return t.binop(Mul, a, b, from)
}

// Div never checks the divisor: x/0 keeps floating point semantics at run time.
func (t *Table) Div(a, b Ref) Ref {
	from := t.caller(1)

	switch {
	case t.IsOne(b):
		return a
	case t.IsConstant(a) && t.IsConstant(b) && t.num(b) != 0:
		return t.fold(Div, a, b, from)
	}

	return t.binop(Div, a, b, from)
}

func (t *Table) binop(op Op, a, b Ref, from loc.PC) Ref {
	return t.intern(Value{Kind: BinaryOp, Op: op, L: a, R: b}, from)
}

func (t *Table) fold(op Op, a, b Ref, from loc.PC) Ref {
	x, y := t.num(a), t.num(b)

	var r float64

	switch op {
	case Add:
		r = x + y
	case Sub:
		r = x - y
	case Mul:
		r = x * y
	case Div:
		r = x / y
	}

	return t.intern(Value{Kind: Constant, Text: FormatConst(r)}, from)
}

func (t *Table) num(r Ref) float64 {
	return ParseConst(t.vals[r].Text)
}

// ParseConst returns the value of a constant text.
// Out of range literals become ±Inf or 0.
func ParseConst(text string) float64 {
	x, _ := strconv.ParseFloat(text, 64)

	return x
}

func FormatConst(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
