package ast

import "github.com/samber/lo"

// ChildrenOfKind returns n's children whose Kind matches, in source order.
// Used by tests and by callers that want to pick a specific child out of a
// construct without hand-rolling the loop (e.g. a message's nested enums).
func ChildrenOfKind(n *Node, kind Kind) []*Node {
	if n == nil {
		return nil
	}
	return lo.Filter(n.children, func(c *Node, _ int) bool {
		return c.kind == kind
	})
}

// Values maps a slice of nodes to their textual values, in order.
func Values(nodes []*Node) []string {
	return lo.Map(nodes, func(n *Node, _ int) string {
		return n.value
	})
}

// HasChildOfKind reports whether n has at least one child of the given kind.
func HasChildOfKind(n *Node, kind Kind) bool {
	if n == nil {
		return false
	}
	return lo.ContainsBy(n.children, func(c *Node) bool {
		return c.kind == kind
	})
}
