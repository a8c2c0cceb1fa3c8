package x_fp_test

import (
	"testing"

	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountItems_OncePerTransaction(t *testing.T) {
	counts := x_fp.CountItems([][]string{{"a", "a", "b"}, {"b"}, {}})
	assert.Equal(t, map[string]int{"a": 1, "b": 2}, counts)
}

func TestPrepare_FiltersDedupsAndOrders(t *testing.T) {
	txns := [][]string{
		{"c", "b", "a", "b"},
		{"a", "x"},
		{"c", "a"},
		{"x"},
		{"b", "c", "a"},
	}
	cleaned, freq := x_fp.Prepare(txns, 2)

	assert.Equal(t, map[string]int{"a": 4, "b": 2, "c": 3, "x": 2}, freq)
	assert.Equal(t, [][]string{
		{"a", "c", "b"},
		{"a", "x"},
		{"a", "c"},
		{"x"},
		{"a", "c", "b"},
	}, cleaned)
}

func TestPrepare_TiesFollowFirstAppearance(t *testing.T) {
	cleaned, _ := x_fp.Prepare([][]string{{"q", "p"}, {"p", "q"}}, 1)
	assert.Equal(t, [][]string{{"q", "p"}, {"q", "p"}}, cleaned)
}

func TestPrepare_DropsEmptyTransactions(t *testing.T) {
	cleaned, freq := x_fp.Prepare([][]string{{"a"}, {"b"}, {"a"}}, 2)
	assert.Equal(t, [][]string{{"a"}, {"a"}}, cleaned)
	assert.Equal(t, map[string]int{"a": 2}, freq)
}

func TestBuild_SharesPrefixes(t *testing.T) {
	tree := x_fp.Build([][]string{{"q", "p"}, {"p", "q"}}, 1)
	assert.Equal(t, 2, tree.Len())
	assert.Len(t, tree.Root().Children(), 1)
}

func TestFindFrequentItemsets(t *testing.T) {
	var got []x_fp.Itemset[string]
	for set, err := range x_fp.FindFrequentItemsets([][]string{{"milk", "bread"}, {"bread"}, {"milk", "bread", "eggs"}}, 2) {
		require.NoError(t, err)
		got = append(got, set)
	}
	x_fp.SortItemsets(got)
	assert.Equal(t, []x_fp.Itemset[string]{
		{Items: []string{"bread"}, Support: 3},
		{Items: []string{"milk"}, Support: 2},
		{Items: []string{"bread", "milk"}, Support: 2},
	}, got)
}

func TestResolveSupport(t *testing.T) {
	assert.Equal(t, 3, x_fp.ResolveSupport(3, 0, 100))
	assert.Equal(t, 25, x_fp.ResolveSupport(3, 0.25, 100))
	assert.Equal(t, 1, x_fp.ResolveSupport(0, 0.001, 10))
	assert.Equal(t, 1, x_fp.ResolveSupport(-4, 0, 10))
	assert.Equal(t, 5, x_fp.ResolveSupport(5, 1.5, 10))
}
