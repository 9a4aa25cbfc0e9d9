package ast

import "testing"

func TestNodeAddChildSetsParent(t *testing.T) {
	parent := New(Message, "Foo")
	child := New(Field, "bar")
	parent.AddChild(child)

	if len(parent.Children()) != 1 || parent.Children()[0] != child {
		t.Fatal("expected child to be appended to parent's children")
	}
	if child.Parent() != parent {
		t.Error("expected AddChild to back-fill the weak parent reference")
	}
}

func TestNodeAddChildNilIsNoOp(t *testing.T) {
	parent := New(Message, "Foo")
	parent.AddChild(nil)
	if len(parent.Children()) != 0 {
		t.Error("expected AddChild(nil) to be a no-op")
	}
}

func TestNodeEqualCaseInsensitiveValue(t *testing.T) {
	a := New(Identifier, "Foo")
	b := New(Identifier, "foo")
	if !a.Equal(b) {
		t.Error("expected values to compare equal case-insensitively")
	}
}

func TestNodeEqualRejectsDifferentKind(t *testing.T) {
	a := New(Identifier, "foo")
	b := New(StringLiteral, "foo")
	if a.Equal(b) {
		t.Error("expected different kinds to never be equal")
	}
}

func TestNodeEqualRecursesChildren(t *testing.T) {
	a := New(Message, "Foo")
	a.AddChild(New(Field, "bar"))

	b := New(Message, "Foo")
	b.AddChild(New(Field, "BAR"))

	if !a.Equal(b) {
		t.Error("expected structurally equal trees (case-insensitive) to compare equal")
	}

	b.Children()[0].value = "baz"
	if a.Equal(b) {
		t.Error("expected differing child values to break equality")
	}
}

func TestRootNodeIgnoresValueButNotKind(t *testing.T) {
	root := NewRoot()
	root.AddChild(New(Syntax, "proto3"))

	other := NewRoot()
	other.AddChild(New(Syntax, "proto3"))

	if !root.Equal(other) {
		t.Error("expected two roots with equal children to be equal")
	}

	nonRoot := New(Message, "")
	if root.Node.Equal(nonRoot) {
		t.Error("expected a Root node never to equal a non-root node")
	}
}

func TestNodeIDIsStableAndUnique(t *testing.T) {
	a := New(Identifier, "foo")
	b := New(Identifier, "foo")
	if a.ID() == b.ID() {
		t.Error("expected distinct nodes to have distinct identities")
	}
	if a.ID() != a.ID() {
		t.Error("expected a node's identity to be stable across calls")
	}
}
