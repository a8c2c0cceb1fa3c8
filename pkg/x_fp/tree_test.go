package x_fp_test

import (
	"bytes"
	"math/rand"
	"slices"
	"testing"

	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// reachable groups every non-root node reachable from the root by item.
func reachable(tree *x_fp.Tree[string]) map[string][]x_fp.Node[string] {
	out := map[string][]x_fp.Node[string]{}
	var walk func(n x_fp.Node[string])
	walk = func(n x_fp.Node[string]) {
		for _, c := range n.Children() {
			out[c.Item()] = append(out[c.Item()], c)
			walk(c)
		}
	}
	walk(tree.Root())
	return out
}

func assertChainsMatchTree(t *testing.T, tree *x_fp.Tree[string]) {
	t.Helper()
	inTree := reachable(tree)

	inChains := map[string][]x_fp.Node[string]{}
	total := 0
	for item, nodes := range tree.Items() {
		for n := range nodes {
			assert.Equal(t, item, n.Item())
			inChains[item] = append(inChains[item], n)
			total++
		}
	}
	require.Equal(t, len(inTree), len(inChains))
	for item, nodes := range inTree {
		assert.ElementsMatch(t, nodes, inChains[item], item)
	}
	assert.Equal(t, total, tree.Len())
}

func rootMass(t *testing.T, tree *x_fp.Tree[string]) int {
	var sum int
	for _, c := range tree.Root().Children() {
		sum += mustCount(t, c)
	}
	return sum
}

func TestTree_AddConservesCount(t *testing.T) {
	tree := x_fp.New[string]()
	txns := [][]string{{"a", "b", "c"}, {"a", "b"}, {"a", "c"}, {"a"}, {"b", "c"}}
	for _, txn := range txns {
		tree.Add(txn)
	}

	assert.Equal(t, len(txns), rootMass(t, tree))
	assert.Equal(t, 4, tree.Support("a"))
	assert.Equal(t, 3, tree.Support("b"))
	assert.Equal(t, 3, tree.Support("c"))
	assert.Equal(t, 6, tree.Len())
	assertChainsMatchTree(t, tree)
}

func TestTree_EmptyTree(t *testing.T) {
	tree := x_fp.New[int]()
	assert.True(t, tree.Empty())
	assert.Equal(t, 0, tree.Len())
	assert.Equal(t, 0, tree.Support(7))

	var items int
	for range tree.Items() {
		items++
	}
	assert.Zero(t, items)
	assert.Empty(t, slices.Collect(tree.NodesFor(7)))
}

func TestTree_ItemsInsertionOrder(t *testing.T) {
	tree := x_fp.New[string]()
	tree.Add([]string{"z", "y"})
	tree.Add([]string{"x"})
	tree.Add([]string{"z", "w"})

	var order []string
	for item := range tree.Items() {
		order = append(order, item)
	}
	assert.Equal(t, []string{"z", "y", "x", "w"}, order)
}

func TestTree_NodesForIsRestartable(t *testing.T) {
	tree := x_fp.New[string]()
	tree.Add([]string{"a", "c"})
	tree.Add([]string{"b", "c"})
	tree.Add([]string{"c"})

	seq := tree.NodesFor("c")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Len(t, first, 3)
	assert.Equal(t, first, second)

	// chain order follows creation order
	next, ok := first[0].Next()
	require.True(t, ok)
	assert.Equal(t, first[1], next)
	_, ok = first[2].Next()
	assert.False(t, ok)
}

func TestTree_PrefixPaths(t *testing.T) {
	tree := x_fp.New[string]()
	tree.Add([]string{"a", "b", "c"})
	tree.Add([]string{"b", "c"})
	tree.Add([]string{"c"})

	var got [][]string
	for path := range tree.PrefixPaths("c") {
		var items []string
		for _, n := range path {
			items = append(items, n.Item())
		}
		got = append(got, items)
	}
	assert.Equal(t, [][]string{{"a", "b", "c"}, {"b", "c"}, {"c"}}, got)
}

func TestTree_ChainConsistencyAfterRemovals(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	universe := []string{"a", "b", "c", "d", "e", "f"}

	for round := 0; round < 25; round++ {
		tree := x_fp.New[string]()
		for i := 0; i < 30; i++ {
			var txn []string
			for _, item := range universe {
				if rng.Intn(2) == 0 {
					txn = append(txn, item)
				}
			}
			tree.Add(txn)
		}
		support := map[string]int{}
		for _, item := range universe {
			support[item] = tree.Support(item)
		}

		// drop a random item everywhere, head, middle and tail of chains alike
		victim := universe[rng.Intn(len(universe))]
		for _, n := range slices.Collect(tree.NodesFor(victim)) {
			p, ok := n.Parent()
			require.True(t, ok)
			require.NoError(t, p.Remove(n))
		}

		assert.Zero(t, tree.Support(victim))
		assertChainsMatchTree(t, tree)
		for _, item := range universe {
			if item != victim {
				assert.Equal(t, support[item], tree.Support(item), item)
			}
		}
	}
}

func TestTree_RemoveChainTail(t *testing.T) {
	tree := x_fp.New[string]()
	tree.Add([]string{"a", "c"})
	tree.Add([]string{"b", "c"})
	tree.Add([]string{"d", "c"})

	nodes := slices.Collect(tree.NodesFor("c"))
	tail := nodes[2]
	p, _ := tail.Parent()
	require.NoError(t, p.Remove(tail))

	assert.Len(t, slices.Collect(tree.NodesFor("c")), 2)

	// the new tail must accept appends
	tree.Add([]string{"e", "c"})
	assert.Equal(t, 3, tree.Support("c"))
	assertChainsMatchTree(t, tree)
}

func TestTree_Dump(t *testing.T) {
	tree := x_fp.New[string]()
	tree.Add([]string{"a", "b"})
	tree.Add([]string{"a"})

	var buf bytes.Buffer
	tree.Dump(&buf)
	out := buf.String()

	assert.Contains(t, out, "-- (root)")
	assert.Contains(t, out, "  |__ a (2)")
	assert.Contains(t, out, "    |__ b (1)")
	assert.Contains(t, out, "CHAINS:")
	assert.Contains(t, out, "b: b (1)")
}
