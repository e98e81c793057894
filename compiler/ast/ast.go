package ast

type (
	Node interface {
		node()
	}

	Number struct {
		Text string
	}

	Name struct {
		ID string
	}

	BinOp struct {
		Op byte

		L Node
		R Node
	}

	// Builder builds the tree from parser callbacks.
	Builder struct{}
)

func (Number) node() {}
func (Name) node()   {}
func (BinOp) node()  {}

func (Builder) Number(text string) (Node, error) { return Number{Text: text}, nil }
func (Builder) Name(id string) (Node, error)     { return Name{ID: id}, nil }

func (Builder) Add(l, r Node) (Node, error) { return BinOp{Op: '+', L: l, R: r}, nil }
func (Builder) Sub(l, r Node) (Node, error) { return BinOp{Op: '-', L: l, R: r}, nil }
func (Builder) Mul(l, r Node) (Node, error) { return BinOp{Op: '*', L: l, R: r}, nil }
func (Builder) Div(l, r Node) (Node, error) { return BinOp{Op: '/', L: l, R: r}, nil }
