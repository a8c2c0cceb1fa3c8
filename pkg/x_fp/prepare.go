// file:fpgrowth/pkg/x_fp/prepare.go
package x_fp

import (
	"cmp"
	"iter"
	"math"
	"slices"
)

//---------------------
// Frequency Pre-pass
//---------------------

// CountItems returns, per item, the number of transactions containing it.
func CountItems[T comparable](transactions [][]T) map[T]int {
	counts := make(map[T]int)
	for _, txn := range transactions {
		for _, item := range dedup(txn) {
			counts[item]++
		}
	}
	return counts
}

// Prepare drops items below minSupport from every transaction, removes
// duplicates and orders the survivors by decreasing global frequency. Items
// of equal frequency keep the order of their first appearance in the
// input. Transactions left empty are dropped. The returned map holds the
// support of every frequent item.
func Prepare[T comparable](transactions [][]T, minSupport int) ([][]T, map[T]int) {
	counts := make(map[T]int)
	rank := make(map[T]int)
	for _, txn := range transactions {
		for _, item := range dedup(txn) {
			if _, ok := rank[item]; !ok {
				rank[item] = len(rank)
			}
			counts[item]++
		}
	}
	for item, n := range counts {
		if n < minSupport {
			delete(counts, item)
		}
	}

	cleaned := make([][]T, 0, len(transactions))
	for _, txn := range transactions {
		kept := slices.DeleteFunc(dedup(txn), func(item T) bool {
			_, ok := counts[item]
			return !ok
		})
		if len(kept) == 0 {
			continue
		}
		slices.SortFunc(kept, func(a, b T) int {
			if c := cmp.Compare(counts[b], counts[a]); c != 0 {
				return c
			}
			return cmp.Compare(rank[a], rank[b])
		})
		cleaned = append(cleaned, kept)
	}
	return cleaned, counts
}

// Build prepares transactions and loads them into a new tree.
func Build[T comparable](transactions [][]T, minSupport int) *Tree[T] {
	cleaned, _ := Prepare(transactions, minSupport)
	tree := New[T]()
	for _, txn := range cleaned {
		tree.Add(txn)
	}
	return tree
}

// FindFrequentItemsets mines raw transactions end to end.
func FindFrequentItemsets[T comparable](transactions [][]T, minSupport int) iter.Seq2[Itemset[T], error] {
	return Mine(Build(transactions, minSupport), nil, minSupport)
}

// ResolveSupport turns an absolute threshold or a ratio of n transactions
// into an absolute support of at least 1. A ratio in (0, 1] wins over the
// absolute value.
func ResolveSupport(absolute int, ratio float64, n int) int {
	if ratio > 0 && ratio <= 1 {
		absolute = int(math.Ceil(ratio * float64(n)))
	}
	return max(absolute, 1)
}

// SortItemsets orders the items inside each set, then the sets by
// decreasing support, increasing size and lexicographically.
func SortItemsets[T cmp.Ordered](sets []Itemset[T]) {
	for i := range sets {
		slices.Sort(sets[i].Items)
	}
	slices.SortFunc(sets, func(a, b Itemset[T]) int {
		if c := cmp.Compare(b.Support, a.Support); c != 0 {
			return c
		}
		if c := cmp.Compare(len(a.Items), len(b.Items)); c != 0 {
			return c
		}
		return slices.Compare(a.Items, b.Items)
	})
}

// dedup returns a copy of txn without repeated items.
func dedup[T comparable](txn []T) []T {
	seen := make(map[T]struct{}, len(txn))
	out := make([]T, 0, len(txn))
	for _, item := range txn {
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}
