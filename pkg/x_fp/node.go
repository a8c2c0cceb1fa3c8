// file:fpgrowth/pkg/x_fp/node.go
package x_fp

import "fmt"

// Node Storage
//---------------------

type nodeID int32

const (
	noNode nodeID = -1
	rootID nodeID = 0
)

// record is the arena slot behind a Node handle.
type record[T comparable] struct {
	item     T
	count    int
	parent   nodeID
	next     nodeID // same-item chain
	linked   bool   // present in the chain index
	children map[T]nodeID
	order    []nodeID // children in attach order
}

//---------------------
// Node Handle
//---------------------

// Node is a handle to a vertex stored in a Tree. Handles stay valid for the
// lifetime of the tree, including after the node has been removed from it.
type Node[T comparable] struct {
	t  *Tree[T]
	id nodeID
}

func (n Node[T]) rec() *record[T] { return &n.t.nodes[n.id] }

// Valid reports whether n refers to a node at all.
func (n Node[T]) Valid() bool { return n.t != nil && n.id >= 0 }

// Tree returns the owning tree.
func (n Node[T]) Tree() *Tree[T] { return n.t }

// Item returns the node label. The root returns the zero value.
func (n Node[T]) Item() T { return n.rec().item }

func (n Node[T]) IsRoot() bool { return n.id == rootID }

func (n Node[T]) IsLeaf() bool { return len(n.rec().order) == 0 }

// Attached reports whether the node is reachable from the root.
func (n Node[T]) Attached() bool {
	if !n.Valid() {
		return false
	}
	for id := n.id; ; {
		if id == rootID {
			return true
		}
		if id = n.t.nodes[id].parent; id == noNode {
			return false
		}
	}
}

// Count returns the number of transactions passing through the node.
func (n Node[T]) Count() (int, error) {
	if n.IsRoot() {
		return 0, fmt.Errorf("count: %w", ErrRootOperation)
	}
	return n.rec().count, nil
}

// Increment adds one to the node count.
func (n Node[T]) Increment() error {
	if n.IsRoot() {
		return fmt.Errorf("increment: %w", ErrRootOperation)
	}
	n.rec().count++
	return nil
}

// Parent returns the parent node, if any.
func (n Node[T]) Parent() (Node[T], bool) {
	p := n.rec().parent
	if p == noNode {
		return Node[T]{}, false
	}
	return Node[T]{t: n.t, id: p}, true
}

// Next returns the following node of the same item in the chain.
func (n Node[T]) Next() (Node[T], bool) {
	nx := n.rec().next
	if nx == noNode {
		return Node[T]{}, false
	}
	return Node[T]{t: n.t, id: nx}, true
}

// Children returns the child nodes in the order they were attached.
func (n Node[T]) Children() []Node[T] {
	order := n.rec().order
	out := make([]Node[T], len(order))
	for i, id := range order {
		out[i] = Node[T]{t: n.t, id: id}
	}
	return out
}

// Search looks up the child holding item.
func (n Node[T]) Search(item T) (Node[T], bool) {
	id, ok := n.rec().children[item]
	if !ok {
		return Node[T]{}, false
	}
	return Node[T]{t: n.t, id: id}, true
}

//---------------------
// Structural Changes
//---------------------

// AddChild attaches c under n. Callers must Search first: an existing child
// with the same item is an error. n must be reachable from the root; c is
// then registered at the tail of its item chain.
func (n Node[T]) AddChild(c Node[T]) error {
	switch {
	case !n.Valid() || !c.Valid():
		return fmt.Errorf("add child: %w", ErrOwnership)
	case c.t != n.t:
		return fmt.Errorf("add child %v: %w", c.Item(), ErrOwnership)
	case c.IsRoot():
		return fmt.Errorf("add child: %w", ErrRootOperation)
	case c.rec().parent != noNode:
		return fmt.Errorf("add child %v: %w", c.Item(), ErrAttached)
	case !n.Attached():
		return fmt.Errorf("add child %v: %w", c.Item(), ErrDetachedParent)
	}
	if _, dup := n.rec().children[c.Item()]; dup {
		return fmt.Errorf("add child %v: %w", c.Item(), ErrDuplicateChild)
	}
	n.t.attach(n.id, c.id)
	if !c.rec().linked {
		n.t.link(c.id)
	}
	return nil
}

// Remove detaches child from n and drops it from the chain index. The
// children of the removed node move up to n; a grandchild whose item n
// already holds is merged into that child, counts and subtree included.
func (n Node[T]) Remove(child Node[T]) error {
	if !n.Valid() || !child.Valid() {
		return fmt.Errorf("remove: %w", ErrOwnership)
	}
	if child.t != n.t {
		return fmt.Errorf("remove %v: %w", child.Item(), ErrOwnership)
	}
	if child.IsRoot() {
		return fmt.Errorf("remove: %w", ErrNotAChild)
	}
	if id, ok := n.rec().children[child.Item()]; !ok || id != child.id {
		return fmt.Errorf("remove %v: %w", child.Item(), ErrNotAChild)
	}

	t := n.t
	t.detach(n.id, child.id)
	t.unlink(child.id)

	moved := t.nodes[child.id].order
	t.nodes[child.id].children, t.nodes[child.id].order = nil, nil
	for _, g := range moved {
		t.nodes[g].parent = noNode
		t.adopt(n.id, g)
	}
	return nil
}

func (n Node[T]) String() string {
	if !n.Valid() {
		return "<nil>"
	}
	if n.IsRoot() {
		return "(root)"
	}
	return fmt.Sprintf("%v (%d)", n.Item(), n.rec().count)
}
