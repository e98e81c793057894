package format

import (
	"github.com/nikandfor/hacked/hfmt"
	"tlog.app/go/errors"

	"github.com/jorendorff/toy-calculator/compiler/ast"
)

// Format appends x as formula text with every binary operation parenthesized.
func Format(b []byte, x ast.Node) ([]byte, error) {
	return format(b, x, 0)
}

func format(b []byte, x ast.Node, d int) (_ []byte, err error) {
	switch x := x.(type) {
	case ast.Number:
		b = append(b, x.Text...)
	case ast.Name:
		b = append(b, x.ID...)
	case ast.BinOp:
		if d != 0 {
			b = append(b, '(')
		}

		b, err = format(b, x.L, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "left")
		}

		b = hfmt.Appendf(b, " %s ", string(x.Op))

		b, err = format(b, x.R, d+1)
		if err != nil {
			return nil, errors.Wrap(err, "right")
		}

		if d != 0 {
			b = append(b, ')')
		}
	default:
		return nil, errors.New("unsupported node: %T", x)
	}

	return b, nil
}
