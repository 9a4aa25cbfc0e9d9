package ast

import (
	"strings"
	"weak"

	"github.com/google/uuid"
)

// Node is the single, uniform tree element every construct in the grammar
// produces: a kind tag, a textual value, and an ordered list of children.
// The zero value is not useful; build nodes with New.
type Node struct {
	id       uuid.UUID
	kind     Kind
	value    string
	children []*Node
	parent   weak.Pointer[Node]
}

// New constructs a node of the given kind and value with no children and no
// parent. Children are attached later with AddChild, which also back-fills
// the parent link.
func New(kind Kind, value string) *Node {
	return &Node{id: uuid.New(), kind: kind, value: value}
}

// AddChild appends child to n's children in call order — which, because
// every production appends as it consumes tokens, is also source order —
// and sets child's parent to a non-owning reference to n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	child.parent = weak.Make(n)
	n.children = append(n.children, child)
}

// ID returns the node's opaque, globally unique identity. It plays no part
// in equality; it exists so two structurally-identical nodes can still be
// told apart in logs and debug output.
func (n *Node) ID() uuid.UUID { return n.id }

// Kind returns the node's kind tag.
func (n *Node) Kind() Kind { return n.kind }

// Value returns the node's textual content, possibly empty.
func (n *Node) Value() string { return n.value }

// Children returns the node's children in source order. The returned slice
// is owned by the node; callers must not mutate it.
func (n *Node) Children() []*Node { return n.children }

// Parent returns the node's parent, or nil if n is a root or its parent has
// since been collected. The reference is weak and non-owning: it must never
// be relied upon to keep the parent alive.
func (n *Node) Parent() *Node {
	return n.parent.Value()
}

// Equal implements the structural equality from the AST invariants: kinds
// must match, values must match case-insensitively, and children must be
// equal in order. Root nodes ignore value and compare only children; a root
// is never equal to a non-root.
func (n *Node) Equal(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n.kind != other.kind {
		return false
	}
	if n.kind == Root {
		return equalChildren(n.children, other.children)
	}
	if !strings.EqualFold(n.value, other.value) {
		return false
	}
	return equalChildren(n.children, other.children)
}

func equalChildren(a, b []*Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// String renders a debug form of the node: its kind, value, and identity,
// omitting children (walk Children recursively to render the full tree).
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(n.kind.String())
	if n.value != "" {
		b.WriteString("(")
		b.WriteString(n.value)
		b.WriteString(")")
	}
	b.WriteString(" #")
	b.WriteString(n.id.String()[:8])
	return b.String()
}
