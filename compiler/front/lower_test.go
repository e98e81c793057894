package front

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorendorff/toy-calculator/compiler/ast"
	"github.com/jorendorff/toy-calculator/compiler/ir"
	"github.com/jorendorff/toy-calculator/compiler/parse"
)

func lower(t *testing.T, text string) (*ir.Table, Pair) {
	t.Helper()

	x, err := parse.Parse[ast.Node](context.Background(), []byte(text), ast.Builder{})
	require.NoError(t, err)

	l := New()

	res, err := l.Lower(x)
	require.NoError(t, err)

	return l.Table(), res
}

func values(tb *ir.Table) (r []ir.Value) {
	for i := 0; i < tb.Len(); i++ {
		r = append(r, tb.Value(ir.Ref(i)))
	}

	return r
}

func TestLowerLeaves(t *testing.T) {
	tb, res := lower(t, "z")
	assert.Equal(t, Pair{Re: ir.Re, Im: ir.Im}, res)
	assert.Equal(t, 2, tb.Len())

	tb, res = lower(t, "i")
	assert.True(t, tb.IsZero(res.Re))
	assert.True(t, tb.IsOne(res.Im))

	tb, res = lower(t, "2.50")
	assert.Equal(t, "2.50", tb.Value(res.Re).Text)
	assert.True(t, tb.IsZero(res.Im))
}

func TestLowerSquareCSE(t *testing.T) {
	tb, res := lower(t, "(z+1)*(z+1)")

	bin := func(op ir.Op, l, r ir.Ref) ir.Value {
		return ir.Value{Kind: ir.BinaryOp, Op: op, L: l, R: r}
	}

	assert.Equal(t, []ir.Value{
		{Kind: ir.Argument, Text: "re"},
		{Kind: ir.Argument, Text: "im"},
		{Kind: ir.Constant, Text: "1"},
		{Kind: ir.Constant, Text: "0"},
		bin(ir.Add, 0, 2),
		bin(ir.Mul, 4, 4),
		bin(ir.Mul, 1, 1),
		bin(ir.Sub, 5, 6),
		bin(ir.Mul, 4, 1),
		bin(ir.Mul, 1, 4),
		bin(ir.Add, 8, 9),
	}, values(tb))

	assert.Equal(t, Pair{Re: 7, Im: 10}, res)
}

func TestLowerInvariants(t *testing.T) {
	for _, text := range []string{
		"(z+1)*(z+1)",
		"(z+1)/(z-1)",
		"z*z*z - 3*z*i + 1/z",
		"(z*i + 2) / (z*z - i) * (z - 0.5)",
	} {
		t.Run(text, func(t *testing.T) {
			tb, _ := lower(t, text)

			seen := map[ir.Value]ir.Ref{}

			for i, v := range values(tb) {
				if prev, ok := seen[v]; ok {
					t.Errorf("value %d duplicates %d: %v", i, prev, v)
				}

				seen[v] = ir.Ref(i)

				if v.Kind == ir.BinaryOp {
					assert.Less(t, int(v.L), i)
					assert.Less(t, int(v.R), i)
				}
			}
		})
	}
}

func TestLowerFold(t *testing.T) {
	tb, res := lower(t, "2*3")

	assert.Equal(t, "6", tb.Value(res.Re).Text)
	assert.True(t, tb.IsZero(res.Im))

	for _, v := range values(tb) {
		assert.NotEqual(t, ir.BinaryOp, v.Kind)
	}
}

func TestLowerIdentity(t *testing.T) {
	tb, res := lower(t, "z*1")

	assert.Equal(t, Pair{Re: ir.Re, Im: ir.Im}, res)
	assert.Equal(t, 4, tb.Len())
}

func TestLowerDivide(t *testing.T) {
	tb, res := lower(t, "(z+1)/(z-1)")

	assert.Equal(t, 16, tb.Len())
	assert.Equal(t, Pair{Re: 11, Im: 15}, res)

	assert.Equal(t, ir.Value{Kind: ir.BinaryOp, Op: ir.Div, L: 10, R: 8}, tb.Value(res.Re))
	assert.Equal(t, ir.Value{Kind: ir.BinaryOp, Op: ir.Div, L: 14, R: 8}, tb.Value(res.Im))
}

func TestLowerZeroDivisor(t *testing.T) {
	tb, res := lower(t, "z/0")

	assert.Equal(t, res.Re, res.Im)
	assert.Equal(t, ir.Value{Kind: ir.BinaryOp, Op: ir.Div, L: 2, R: 2}, tb.Value(res.Re))
}

func TestLowerUndefined(t *testing.T) {
	x, err := parse.Parse[ast.Node](context.Background(), []byte("y + 1"), ast.Builder{})
	require.NoError(t, err)

	_, err = New().Lower(x)

	var uerr *UndefinedVariableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "y", uerr.Name)
	assert.EqualError(t, err, "undefined variable: y")
}

func TestLowerStreaming(t *testing.T) {
	ctx := context.Background()

	for _, text := range []string{"z", "(z+1)*(z+1)", "(z+1)/(z-1)", "i*i - z/(2*i)"} {
		t.Run(text, func(t *testing.T) {
			want, wres := lower(t, text)

			l := New()

			res, err := parse.Parse[Pair](ctx, []byte(text), l)
			require.NoError(t, err)

			assert.Equal(t, wres, res)
			assert.Equal(t, values(want), values(l.Table()))
		})
	}

	_, err := parse.Parse[Pair](ctx, []byte("z + y"), New())

	var uerr *UndefinedVariableError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, "y", uerr.Name)
}

func TestLowerOrigin(t *testing.T) {
	tb := ir.New()
	tb.RecordOrigin = true

	l := NewTable(tb)

	_, err := parse.Parse[Pair](context.Background(), []byte("(z+1)*(z+2*3)"), l)
	require.NoError(t, err)

	for i := 2; i < tb.Len(); i++ {
		name, _, _ := tb.Origin(ir.Ref(i)).NameFileLine()
		assert.Contains(t, name, "front.(*Lowerer)", "value %d: %v", i, tb.Value(ir.Ref(i)))
	}
}
