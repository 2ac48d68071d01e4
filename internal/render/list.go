package render

import (
	"io"
	"strings"

	"github.com/aws/mlsblk/internal/blockdev"
)

// List writes a header followed by one row per device, parents before their children, exactly projecting columns.
func List(w io.Writer, roots []*blockdev.Device, columns []Column, opts Options) error {
	var b strings.Builder
	writeHeader(&b, columns, opts)

	var visit func(d *blockdev.Device)
	visit = func(d *blockdev.Device) {
		cells := make([]string, 0, len(columns))
		for _, c := range columns {
			cells = append(cells, c.value(d))
		}
		writeRow(&b, strings.Join(cells, " "))

		for _, child := range d.Children {
			visit(child)
		}
	}
	for _, root := range roots {
		visit(root)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
