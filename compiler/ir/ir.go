package ir

import (
	"fmt"

	"tlog.app/go/tlog/tlwire"
)

type (
	// Ref is a position in the Table.
	Ref int

	Kind int

	Op byte

	// Value is comparable; equal values are the same table entry.
	Value struct {
		Kind Kind
		Op   Op

		L, R Ref

		Text string
	}
)

const (
	Argument Kind = iota
	Constant
	BinaryOp
)

const (
	Add Op = '+'
	Sub Op = '-'
	Mul Op = '*'
	Div Op = '/'
)

// Input argument components, seeded by New.
const (
	Re Ref = 0
	Im Ref = 1
)

func (k Kind) String() string {
	switch k {
	case Argument:
		return "arg"
	case Constant:
		return "const"
	case BinaryOp:
		return "binop"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (op Op) String() string { return string(op) }

func (v Value) String() string {
	if v.Kind == BinaryOp {
		return fmt.Sprintf("%%%d %c %%%d", v.L, v.Op, v.R)
	}

	return v.Text
}

func (v Value) TlogAppend(b []byte) []byte {
	var e tlwire.Encoder

	if v.Kind != BinaryOp {
		b = e.AppendMap(b, 2)
		b = e.AppendKeyString(b, "kind", v.Kind.String())
		b = e.AppendKeyString(b, "text", v.Text)

		return b
	}

	b = e.AppendMap(b, 4)
	b = e.AppendKeyString(b, "kind", v.Kind.String())
	b = e.AppendKeyString(b, "op", v.Op.String())
	b = e.AppendKeyInt64(b, "l", int64(v.L))
	b = e.AppendKeyInt64(b, "r", int64(v.R))

	return b
}
