// file:fpgrowth/pkg/x_fp/miner.go
package x_fp

import (
	"fmt"
	"iter"
	"slices"
)

// Itemset is a frequent set of items with its support. Items holds the
// newly found item first, followed by the suffix it extends.
type Itemset[T comparable] struct {
	Items   []T `json:"items"`
	Support int `json:"support"`
}

type frame[T comparable] struct {
	tree   *Tree[T]
	suffix []T
	items  []T
	pos    int
}

// Mine yields every itemset of tree (extended by suffix) whose support is
// at least minSupport. Traversal is depth first in chain index order and
// runs on an explicit stack; the sequence may be abandoned at any point and
// ranged over again as long as tree is not mutated. An invariant violation
// is yielded once as an error and ends the sequence.
func Mine[T comparable](tree *Tree[T], suffix []T, minSupport int) iter.Seq2[Itemset[T], error] {
	return func(yield func(Itemset[T], error) bool) {
		stack := []*frame[T]{{tree: tree, suffix: slices.Clone(suffix), items: slices.Clone(tree.keys)}}
		for len(stack) > 0 {
			f := stack[len(stack)-1]
			if f.pos == len(f.items) {
				stack = stack[:len(stack)-1]
				continue
			}
			item := f.items[f.pos]
			f.pos++

			support := f.tree.Support(item)
			if support < minSupport {
				continue
			}
			found := make([]T, 0, len(f.suffix)+1)
			found = append(found, item)
			found = append(found, f.suffix...)
			if !yield(Itemset[T]{Items: slices.Clone(found), Support: support}, nil) {
				return
			}

			cond, err := Conditional(f.tree.PrefixPaths(item), minSupport)
			if err != nil {
				yield(Itemset[T]{}, fmt.Errorf("mine %v: %w", item, err))
				return
			}
			if cond.Empty() {
				continue
			}
			stack = append(stack, &frame[T]{tree: cond, suffix: found, items: slices.Clone(cond.keys)})
		}
	}
}

// MineAll collects Mine over tree with an empty suffix.
func MineAll[T comparable](tree *Tree[T], minSupport int) ([]Itemset[T], error) {
	var out []Itemset[T]
	for set, err := range Mine(tree, nil, minSupport) {
		if err != nil {
			return out, err
		}
		out = append(out, set)
	}
	return out, nil
}
