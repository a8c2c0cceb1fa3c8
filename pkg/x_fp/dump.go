// file:fpgrowth/pkg/x_fp/dump.go
package x_fp

import (
	"fmt"
	"io"
	"strings"
)

//---------------------
// Tree Dump (Debug)
//---------------------

// Dump writes the tree structure followed by every item chain.
func (t *Tree[T]) Dump(w io.Writer) {
	fmt.Fprintln(w, "TREE:")
	t.dump(w, rootID, 0)
	fmt.Fprintln(w, "CHAINS:")
	for item, nodes := range t.Items() {
		var parts []string
		for n := range nodes {
			parts = append(parts, n.String())
		}
		fmt.Fprintf(w, "%v: %s\n", item, strings.Join(parts, " -> "))
	}
}

func (t *Tree[T]) dump(w io.Writer, id nodeID, depth int) {
	fmt.Fprintf(w, "%s%s\n", dumpPre(depth), Node[T]{t: t, id: id})
	for _, c := range t.nodes[id].order {
		t.dump(w, c, depth+1)
	}
}

func dumpPre(depth int) string {
	if depth == 0 {
		return "-- "
	}
	return strings.Repeat("  ", depth) + "|__ "
}
