package ir

import (
	"tlog.app/go/loc"
)

type (
	// Table is an append-only list of scalar values in topological order.
	Table struct {
		vals  []Value
		index map[Value]Ref

		// RecordOrigin makes the table remember the call site
		// which created each value.
		RecordOrigin bool
		from         []loc.PC
	}
)

func New() *Table {
	t := &Table{
		index: make(map[Value]Ref),
	}

	t.Intern(Value{Kind: Argument, Text: "re"})
	t.Intern(Value{Kind: Argument, Text: "im"})

	return t
}

// Intern returns the existing entry equal to v or appends v.
func (t *Table) Intern(v Value) Ref {
	return t.intern(v, t.caller(1))
}

func (t *Table) intern(v Value, from loc.PC) Ref {
	if r, ok := t.index[v]; ok {
		return r
	}

	if v.Kind == BinaryOp && (v.L < 0 || v.R < 0 || int(v.L) >= len(t.vals) || int(v.R) >= len(t.vals)) {
		panic("binop operand out of table: " + v.String())
	}

	r := Ref(len(t.vals))

	t.vals = append(t.vals, v)
	t.index[v] = r

	if t.RecordOrigin {
		for len(t.from) < len(t.vals)-1 {
			t.from = append(t.from, 0)
		}

		t.from = append(t.from, from)
	}

	return r
}

// caller returns the caller of the function d frames up, or 0 if origins are off.
func (t *Table) caller(d int) loc.PC {
	if !t.RecordOrigin {
		return 0
	}

	return loc.Caller(d + 1)
}

// Constant interns a literal. Literals are compared by text, not by value.
func (t *Table) Constant(text string) Ref {
	return t.intern(Value{Kind: Constant, Text: text}, t.caller(1))
}

func (t *Table) Len() int { return len(t.vals) }

func (t *Table) Value(r Ref) Value { return t.vals[r] }

func (t *Table) Kind(r Ref) Kind { return t.vals[r].Kind }

func (t *Table) IsConstant(r Ref) bool { return t.vals[r].Kind == Constant }

func (t *Table) IsZero(r Ref) bool { return t.isText(r, "0") }

func (t *Table) IsOne(r Ref) bool { return t.isText(r, "1") }

// Origin returns where the value was created if RecordOrigin was set at the time.
func (t *Table) Origin(r Ref) loc.PC {
	if int(r) >= len(t.from) {
		return 0
	}

	return t.from[r]
}

func (t *Table) isText(r Ref, text string) bool {
	v := t.vals[r]

	return v.Kind == Constant && v.Text == text
}
