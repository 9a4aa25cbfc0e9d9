package ast

import "protoc3/internal/report"

// RootNode specializes Node (kind Root) with the accumulated diagnostics for
// the parse that produced it.
type RootNode struct {
	*Node
	Errors []report.ParseError
}

// NewRoot builds an empty RootNode ready to receive top-level children.
func NewRoot() *RootNode {
	return &RootNode{Node: New(Root, "")}
}

// AttachErrors transfers a parse's collected diagnostics onto the root.
// Called exactly once, at the end of analysis.
func (r *RootNode) AttachErrors(errs []report.ParseError) {
	r.Errors = errs
}

// HasErrors reports whether the parse produced any diagnostics — callers
// should treat a non-empty list as a signal the tree may be partial.
func (r *RootNode) HasErrors() bool {
	return len(r.Errors) > 0
}

// Equal compares two root nodes structurally (children only, per the Node
// equality invariant for Root-kind nodes); it ignores Errors.
func (r *RootNode) Equal(other *RootNode) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.Node.Equal(other.Node)
}
