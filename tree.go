package huf

import (
	"strings"

	"github.com/fumin/huf/bitio"
	"github.com/pkg/errors"
)

// node is a code tree node.
// Internal nodes always have both children, leaves have neither.
type node struct {
	left  *node // bit 0
	right *node // bit 1
	sym   Symbol
}

func (n *node) leaf() bool { return n.left == nil }

// A Tree is a prefix code tree read from the head of an encoded stream.
type Tree struct {
	root   *node
	leaves int
	depth  int
}

// ReadTree reads a pre-order serialized code tree from r.
// A tree deeper than maxDepth is rejected; maxDepth <= 0 means DefaultMaxTreeDepth.
func ReadTree(r *bitio.Reader, maxDepth int) (*Tree, error) {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxTreeDepth
	}
	t := &Tree{}
	root, err := t.build(r, 0, maxDepth)
	if err != nil {
		return nil, err
	}
	t.root = root
	return t, nil
}

func (t *Tree) build(r *bitio.Reader, depth, maxDepth int) (*node, error) {
	if depth > maxDepth {
		return nil, errors.Wrapf(ErrInvalidEncoding, "code tree deeper than %d", maxDepth)
	}
	b, err := r.ReadBit()
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidEncoding, "code tree ends without a leaf at bit %d", r.Offset())
	}

	if b == 1 {
		sym, err := readSymbol(r)
		if err != nil {
			return nil, err
		}
		t.leaves++
		if depth > t.depth {
			t.depth = depth
		}
		return &node{sym: sym}, nil
	}

	left, err := t.build(r, depth+1, maxDepth)
	if err != nil {
		return nil, err
	}
	right, err := t.build(r, depth+1, maxDepth)
	if err != nil {
		return nil, err
	}
	return &node{left: left, right: right}, nil
}

// Leaves returns the number of symbols in the tree.
func (t *Tree) Leaves() int { return t.leaves }

// Depth returns the length of the longest code.
func (t *Tree) Depth() int { return t.depth }

// next walks from the root to a leaf, consuming one bit per edge.
// A single leaf tree consumes no bits.
func (t *Tree) next(r *bitio.Reader) (Symbol, error) {
	n := t.root
	for !n.leaf() {
		b, err := r.ReadBit()
		if err != nil {
			return 0, errors.Wrapf(ErrTruncatedStream, "stream ends inside a code at bit %d", r.Offset())
		}
		if b == 0 {
			n = n.left
		} else {
			n = n.right
		}
	}
	return n.sym, nil
}

// A Code is a symbol and the path to its leaf, written as a string of '0' and '1'.
type Code struct {
	Symbol Symbol
	Bits   string
}

// Codes returns the code of every leaf in pre-order, which is also
// the lexicographic order of the codes.
func (t *Tree) Codes() []Code {
	codes := make([]Code, 0, t.leaves)
	var path []byte
	var visit func(n *node)
	visit = func(n *node) {
		if n.leaf() {
			codes = append(codes, Code{Symbol: n.sym, Bits: string(path)})
			return
		}
		path = append(path, '0')
		visit(n.left)
		path[len(path)-1] = '1'
		visit(n.right)
		path = path[:len(path)-1]
	}
	visit(t.root)
	return codes
}

func (c Code) String() string {
	var b strings.Builder
	b.WriteString(c.Symbol.String())
	b.WriteByte(' ')
	if c.Bits == "" {
		b.WriteByte('-')
	} else {
		b.WriteString(c.Bits)
	}
	return b.String()
}
