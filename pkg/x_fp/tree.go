// file:fpgrowth/pkg/x_fp/tree.go
package x_fp

import (
	"fmt"
	"iter"
	"slices"
)

// Tree
//---------------------

type chain struct {
	head, tail nodeID
}

// Tree is an FP-tree: an arena of nodes rooted at a sentinel with, per item,
// a singly linked chain through every node carrying that item.
type Tree[T comparable] struct {
	nodes  []record[T]
	chains map[T]chain
	keys   []T // chain index insertion order
	size   int
}

// New creates an empty tree.
func New[T comparable]() *Tree[T] {
	t := &Tree[T]{chains: make(map[T]chain)}
	t.nodes = append(t.nodes, record[T]{parent: noNode, next: noNode})
	return t
}

// Root returns the sentinel root node.
func (t *Tree[T]) Root() Node[T] { return Node[T]{t: t, id: rootID} }

// Len returns the number of nodes reachable from the root, root excluded.
func (t *Tree[T]) Len() int { return t.size }

// Empty reports whether the root has no children.
func (t *Tree[T]) Empty() bool { return len(t.nodes[rootID].order) == 0 }

// Add inserts one transaction. Items must be unique within the transaction
// and ordered by decreasing global frequency.
func (t *Tree[T]) Add(transaction []T) {
	at := rootID
	for _, item := range transaction {
		if id, ok := t.nodes[at].children[item]; ok {
			t.nodes[id].count++
			at = id
			continue
		}
		id := t.alloc(item, 1)
		t.attach(at, id)
		t.link(id)
		at = id
	}
}

// NewNode allocates a detached node owned by t. It joins the tree through
// AddChild.
func (t *Tree[T]) NewNode(item T, count int) Node[T] {
	return Node[T]{t: t, id: t.alloc(item, count)}
}

// Attach creates a node under parent and registers it in the chain index.
func (t *Tree[T]) Attach(parent Node[T], item T, count int) (Node[T], error) {
	if !parent.Valid() || parent.t != t {
		return Node[T]{}, fmt.Errorf("attach %v: %w", item, ErrOwnership)
	}
	n := t.NewNode(item, count)
	if err := parent.AddChild(n); err != nil {
		return Node[T]{}, err
	}
	return n, nil
}

//---------------------
// Traversal
//---------------------

// NodesFor walks the chain of item from head to tail.
func (t *Tree[T]) NodesFor(item T) iter.Seq[Node[T]] {
	return func(yield func(Node[T]) bool) {
		ch, ok := t.chains[item]
		if !ok {
			return
		}
		for id := ch.head; id != noNode; id = t.nodes[id].next {
			if !yield(Node[T]{t: t, id: id}) {
				return
			}
		}
	}
}

// Items yields every item of the chain index in insertion order together
// with its node chain.
func (t *Tree[T]) Items() iter.Seq2[T, iter.Seq[Node[T]]] {
	return func(yield func(T, iter.Seq[Node[T]]) bool) {
		for _, item := range slices.Clone(t.keys) {
			if !yield(item, t.NodesFor(item)) {
				return
			}
		}
	}
}

// Support sums the counts along the chain of item.
func (t *Tree[T]) Support(item T) int {
	var total int
	for n := range t.NodesFor(item) {
		total += n.rec().count
	}
	return total
}

// PrefixPaths yields, for each node of item, the path from just below the
// root down to and including that node.
func (t *Tree[T]) PrefixPaths(item T) iter.Seq[[]Node[T]] {
	return func(yield func([]Node[T]) bool) {
		for n := range t.NodesFor(item) {
			if !yield(t.pathTo(n.id)) {
				return
			}
		}
	}
}

func (t *Tree[T]) pathTo(id nodeID) []Node[T] {
	var path []Node[T]
	for ; id != noNode && id != rootID; id = t.nodes[id].parent {
		path = append(path, Node[T]{t: t, id: id})
	}
	slices.Reverse(path)
	return path
}

//---------------------
// Arena Helpers
//---------------------

func (t *Tree[T]) alloc(item T, count int) nodeID {
	t.nodes = append(t.nodes, record[T]{item: item, count: count, parent: noNode, next: noNode})
	return nodeID(len(t.nodes) - 1)
}

// attach links child under parent. The child must be detached and parent
// must not hold its item yet.
func (t *Tree[T]) attach(parent, child nodeID) {
	p := &t.nodes[parent]
	if p.children == nil {
		p.children = make(map[T]nodeID)
	}
	p.children[t.nodes[child].item] = child
	p.order = append(p.order, child)
	t.nodes[child].parent = parent
}

func (t *Tree[T]) detach(parent, child nodeID) {
	p := &t.nodes[parent]
	delete(p.children, t.nodes[child].item)
	if i := slices.Index(p.order, child); i >= 0 {
		p.order = slices.Delete(p.order, i, i+1)
	}
	t.nodes[child].parent = noNode
}

// adopt moves the detached node g under parent, merging it into an
// existing child of the same item.
func (t *Tree[T]) adopt(parent, g nodeID) {
	dst, ok := t.nodes[parent].children[t.nodes[g].item]
	if !ok {
		t.attach(parent, g)
		return
	}
	t.nodes[dst].count += t.nodes[g].count
	t.unlink(g)
	moved := t.nodes[g].order
	t.nodes[g].children, t.nodes[g].order = nil, nil
	for _, s := range moved {
		t.nodes[s].parent = noNode
		t.adopt(dst, s)
	}
}

//---------------------
// Chain Index
//---------------------

// link appends id to the tail of its item chain.
func (t *Tree[T]) link(id nodeID) {
	r := &t.nodes[id]
	r.linked, r.next = true, noNode
	t.size++
	ch, ok := t.chains[r.item]
	if !ok {
		t.chains[r.item] = chain{head: id, tail: id}
		t.keys = append(t.keys, r.item)
		return
	}
	t.nodes[ch.tail].next = id
	ch.tail = id
	t.chains[r.item] = ch
}

// unlink drops id from its item chain, deleting the chain when it empties.
func (t *Tree[T]) unlink(id nodeID) {
	r := &t.nodes[id]
	if !r.linked {
		return
	}
	ch := t.chains[r.item]
	if ch.head == id {
		if ch.tail == id || r.next == noNode {
			t.dropChain(r.item)
		} else {
			ch.head = r.next
			t.chains[r.item] = ch
		}
	} else {
		// singly linked: find the predecessor
		for prev := ch.head; prev != noNode; prev = t.nodes[prev].next {
			if t.nodes[prev].next != id {
				continue
			}
			t.nodes[prev].next = r.next
			if ch.tail == id {
				ch.tail = prev
				t.chains[r.item] = ch
			}
			break
		}
	}
	r.linked, r.next = false, noNode
	t.size--
}

func (t *Tree[T]) dropChain(item T) {
	delete(t.chains, item)
	if i := slices.Index(t.keys, item); i >= 0 {
		t.keys = slices.Delete(t.keys, i, i+1)
	}
}
