// file:fpgrowth/pkg/x_fp/conditional.go
package x_fp

import (
	"fmt"
	"iter"
	"slices"
)

// Conditional builds the conditional tree of the item that ends every path
// in paths (as produced by Tree.PrefixPaths). Ancestor counts are rebuilt
// from the terminal counts, items below minSupport are pruned and the
// conditioning item itself is removed, so the result describes the
// database projected on that item. No paths yield an empty tree.
func Conditional[T comparable](paths iter.Seq[[]Node[T]], minSupport int) (*Tree[T], error) {
	tree := New[T]()

	var (
		cond    T
		hasCond bool
		items   []T
		seen    = make(map[T]struct{})
	)
	for path := range paths {
		if len(path) == 0 {
			continue
		}
		if !hasCond {
			cond, hasCond = path[len(path)-1].Item(), true
		}
		at := tree.Root()
		for _, src := range path {
			item := src.Item()
			next, ok := at.Search(item)
			if !ok {
				if _, dup := seen[item]; !dup {
					seen[item] = struct{}{}
					items = append(items, item)
				}
				// only the terminal count is known, ancestors are repaired below
				var count int
				if item == cond {
					count = src.rec().count
				}
				var err error
				if next, err = tree.Attach(at, item, count); err != nil {
					return nil, fmt.Errorf("conditional %v: %w", cond, err)
				}
			}
			at = next
		}
	}
	if !hasCond {
		return tree, nil
	}

	for path := range tree.PrefixPaths(cond) {
		last := path[len(path)-1].rec().count
		for i := len(path) - 2; i >= 0; i-- {
			path[i].rec().count += last
		}
	}

	for _, item := range items {
		if tree.Support(item) >= minSupport {
			continue
		}
		if err := tree.removeAll(item); err != nil {
			return nil, fmt.Errorf("conditional %v: prune %v: %w", cond, item, err)
		}
	}

	if err := tree.removeAll(cond); err != nil {
		return nil, fmt.Errorf("conditional %v: strip: %w", cond, err)
	}
	return tree, nil
}

// removeAll removes every node of item, folding their children into their
// parents.
func (t *Tree[T]) removeAll(item T) error {
	for _, n := range slices.Collect(t.NodesFor(item)) {
		p, ok := n.Parent()
		if !ok {
			continue
		}
		if err := p.Remove(n); err != nil {
			return err
		}
	}
	return nil
}
