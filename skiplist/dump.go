package skiplist

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// DumpLayers renders every layer top to bottom as an ordered key sequence,
// one table row per layer. The output is for eyeballs only; nothing parses
// it.
func (x *LayeredIndex[K, V]) DumpLayers(w io.Writer) {
	rows := make([][]string, 0, x.layers)
	layer := x.layers - 1
	for neg := x.top; neg != nil; neg = neg.below {
		var sb strings.Builder
		sb.WriteString("-inf")
		for n := neg.next; n.isData(); n = n.next {
			fmt.Fprintf(&sb, " -> %v", n.key)
		}
		sb.WriteString(" -> +inf")
		rows = append(rows, []string{fmt.Sprintf("S_%d", layer), sb.String()})
		layer--
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Layer", "Keys"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
}

// String renders the layer dump, so an index can be dropped straight into a
// log statement while debugging.
func (x *LayeredIndex[K, V]) String() string {
	var sb strings.Builder
	x.DumpLayers(&sb)
	return sb.String()
}
