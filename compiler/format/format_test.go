package format

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jorendorff/toy-calculator/compiler/ast"
	"github.com/jorendorff/toy-calculator/compiler/parse"
)

func TestFormat(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		in, out string
	}{
		{"z", "z"},
		{"1.50", "1.50"},
		{"z+1", "z + 1"},
		{"1 - 2 - 3", "(1 - 2) - 3"},
		{"1 - (2 - 3)", "1 - (2 - 3)"},
		{"(z+1)*(z-1)/i", "((z + 1) * (z - 1)) / i"},
		{"2*z + 3*i", "(2 * z) + (3 * i)"},
	} {
		t.Run(tc.in, func(t *testing.T) {
			x, err := parse.Parse[ast.Node](ctx, []byte(tc.in), ast.Builder{})
			require.NoError(t, err)

			b, err := Format(nil, x)
			require.NoError(t, err)
			assert.Equal(t, tc.out, string(b))

			y, err := parse.Parse[ast.Node](ctx, b, ast.Builder{})
			require.NoError(t, err)
			assert.Equal(t, x, y)
		})
	}
}

func TestFormatNil(t *testing.T) {
	_, err := Format(nil, nil)
	assert.Error(t, err)
}
