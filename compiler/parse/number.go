package parse

import (
	"context"
	"strconv"

	"tlog.app/go/errors"
)

type (
	// Num is a decimal literal passed to the builder verbatim.
	Num struct{}
)

func (p Num) Parse(ctx context.Context, b []byte, st int) (x any, i int, err error) {
	i = skipDigits(b, st)
	digits := i - st

	if i < len(b) && b[i] == '.' {
		j := skipDigits(b, i+1)
		digits += j - i - 1
		i = j
	}

	if digits == 0 {
		return nil, st, errors.New("number expected")
	}

	if i < len(b) && (b[i] == 'e' || b[i] == 'E') {
		j := i + 1

		if j < len(b) && (b[j] == '+' || b[j] == '-') {
			j++
		}

		if e := skipDigits(b, j); e != j {
			i = e
		}
	}

	text := string(b[st:i])

	_, err = strconv.ParseFloat(text, 64)
	if ne, ok := err.(*strconv.NumError); ok && ne.Err != strconv.ErrRange {
		return nil, i, errors.Wrap(err, "number")
	}

	x, err = builderFromContext(ctx).number(text)
	if err != nil {
		return nil, i, errors.Wrap(err, "number")
	}

	return x, i, nil
}

func (Num) String() string { return "number" }

func skipDigits(b []byte, i int) int {
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}

	return i
}
