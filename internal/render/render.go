package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/aws/mlsblk/internal/blockdev"
)

// Format selects how devices are written.
type Format uint8

const (
	// TreeFormat draws each root with its descendants beneath it.
	TreeFormat Format = iota
	// ListFormat writes one row per device with no indentation.
	ListFormat
	// JSONFormat writes a "blockdevices" document.
	JSONFormat
)

func (f Format) String() string {
	switch f {
	case TreeFormat:
		return "tree"
	case ListFormat:
		return "list"
	case JSONFormat:
		return "json"
	default:
		return "unknown"
	}
}

// Options adjust the text formats.
type Options struct {
	// Styled renders the header row in bold. It should only be set when writing to a terminal.
	Styled bool
}

var headerStyle = lipgloss.NewStyle().Bold(true)

// Write renders roots and their descendants to w in the given format. Columns are ignored by JSONFormat, which
// always writes every field.
func Write(w io.Writer, format Format, roots []*blockdev.Device, columns []Column, opts Options) error {
	switch format {
	case TreeFormat:
		return Tree(w, roots, columns, opts)
	case ListFormat:
		return List(w, roots, columns, opts)
	case JSONFormat:
		return JSON(w, roots)
	default:
		return fmt.Errorf("unsupported output format %d", format)
	}
}

// writeHeader appends the header row, styled if requested.
func writeHeader(b *strings.Builder, columns []Column, opts Options) {
	h := header(columns)
	if opts.Styled {
		h = headerStyle.Render(h)
	}
	b.WriteString(h)
	b.WriteByte('\n')
}

// writeRow appends a line with trailing blanks left by empty cells removed.
func writeRow(b *strings.Builder, line string) {
	b.WriteString(strings.TrimRight(line, " "))
	b.WriteByte('\n')
}
