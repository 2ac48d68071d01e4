package render

import (
	"io"
	"strings"

	"github.com/aws/mlsblk/internal/blockdev"
)

const (
	childIndent    = "  "
	branch         = "├── "
	lastBranch     = "└── "
	continuation   = "│   "
	noContinuation = "    "
)

// Tree writes a header followed by each root and its descendants, children drawn beneath their parent with
// box-drawing connectors. The device name always leads a row; the remaining selected columns follow it.
func Tree(w io.Writer, roots []*blockdev.Device, columns []Column, opts Options) error {
	rest := withoutName(columns)

	var b strings.Builder
	writeHeader(&b, append([]Column{Name}, rest...), opts)
	for _, root := range roots {
		writeRow(&b, treeRow(root, rest))
		writeChildren(&b, root, rest, "")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// writeChildren appends the rows for d's descendants. prefix carries the connectors of d's ancestors.
func writeChildren(b *strings.Builder, d *blockdev.Device, columns []Column, prefix string) {
	for i, child := range d.Children {
		connector, next := branch, continuation
		if i == len(d.Children)-1 {
			connector, next = lastBranch, noContinuation
		}

		writeRow(b, childIndent+prefix+connector+treeRow(child, columns))
		writeChildren(b, child, columns, prefix+next)
	}
}

func treeRow(d *blockdev.Device, columns []Column) string {
	cells := make([]string, 0, len(columns)+1)
	cells = append(cells, d.Name)
	for _, c := range columns {
		cells = append(cells, c.value(d))
	}
	return strings.Join(cells, " ")
}

func withoutName(columns []Column) []Column {
	out := make([]Column, 0, len(columns))
	for _, c := range columns {
		if c != Name {
			out = append(out, c)
		}
	}
	return out
}
