package ir

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSeed(t *testing.T) {
	tb := New()

	require.Equal(t, 2, tb.Len())

	assert.Equal(t, Value{Kind: Argument, Text: "re"}, tb.Value(Re))
	assert.Equal(t, Value{Kind: Argument, Text: "im"}, tb.Value(Im))
	assert.False(t, tb.IsConstant(Re))
}

func TestIntern(t *testing.T) {
	tb := New()

	one := tb.Constant("1")
	sum := tb.Intern(Value{Kind: BinaryOp, Op: Add, L: Re, R: one})

	assert.Equal(t, Ref(2), one)
	assert.Equal(t, Ref(3), sum)

	assert.Equal(t, one, tb.Constant("1"))
	assert.Equal(t, sum, tb.Intern(Value{Kind: BinaryOp, Op: Add, L: Re, R: one}))
	assert.Equal(t, 4, tb.Len())

	swapped := tb.Intern(Value{Kind: BinaryOp, Op: Add, L: one, R: Re})
	assert.Equal(t, Ref(4), swapped)
}

func TestConstantText(t *testing.T) {
	tb := New()

	a := tb.Constant("1")
	b := tb.Constant("1.0")

	assert.NotEqual(t, a, b)
	assert.True(t, tb.IsOne(a))
	assert.False(t, tb.IsOne(b))

	assert.True(t, tb.IsZero(tb.Constant("0")))
	assert.False(t, tb.IsZero(tb.Constant("0.0")))
	assert.Equal(t, Constant, tb.Kind(b))
}

func TestInternForwardOperand(t *testing.T) {
	tb := New()

	assert.Panics(t, func() {
		tb.Intern(Value{Kind: BinaryOp, Op: Mul, L: Re, R: 2})
	})

	assert.Equal(t, 2, tb.Len())
}

func TestOrigin(t *testing.T) {
	tb := New()

	x := tb.Constant("3")
	assert.Zero(t, tb.Origin(x))

	tb.RecordOrigin = true

	y := tb.Constant("4")
	assert.NotZero(t, tb.Origin(y))
	assert.Zero(t, tb.Origin(x))

	for _, r := range []Ref{
		y,
		tb.Mul(Re, Im),
		tb.Add(x, y),
		tb.Div(Re, y),
		tb.Intern(Value{Kind: BinaryOp, Op: Sub, L: Re, R: Im}),
	} {
		name, _, _ := tb.Origin(r).NameFileLine()
		assert.Contains(t, name, "TestOrigin", "value %d: %v", r, tb.Value(r))
	}
}

func TestValueString(t *testing.T) {
	tb := New()

	c := tb.Constant("2.5")
	m := tb.Mul(Re, c)

	assert.Equal(t, "re", tb.Value(Re).String())
	assert.Equal(t, "2.5", tb.Value(c).String())
	assert.Equal(t, "%0 * %2", tb.Value(m).String())
}
