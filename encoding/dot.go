package encoding

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteDOT writes t as a Graphviz digraph. Node ids are postorder indices
// ("n0", "n1", ...); each operator has an edge to its left, then right child.
func (t *Tree) WriteDOT(w io.Writer) error {
	nodes := t.Postorder()
	ids := make(map[*Node]string, len(nodes))
	for i, n := range nodes {
		ids[n] = "n" + strconv.Itoa(i)
	}

	var sb strings.Builder
	sb.WriteString("digraph {\n")
	for _, n := range nodes {
		fmt.Fprintf(&sb, "\t%s [label=%q];\n", ids[n], n.label)
	}
	for _, n := range nodes {
		if n.left != nil {
			fmt.Fprintf(&sb, "\t%s -> %s;\n", ids[n], ids[n.left])
		}
		if n.right != nil {
			fmt.Fprintf(&sb, "\t%s -> %s;\n", ids[n], ids[n.right])
		}
	}
	sb.WriteString("}\n")

	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("WriteDOT: %w", err)
	}
	return nil
}
