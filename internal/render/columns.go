// Package render writes a block device forest as a tree, a flat list, or JSON.
package render

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aws/mlsblk/internal/blockdev"
)

// Column is a displayable device field.
type Column uint8

const (
	Name Column = iota
	Size
	Type
	MountPoint
	FSType
	Label
	UUID
)

// columnNames are the display names of every Column, indexed by Column.
var columnNames = [...]string{
	Name:       "NAME",
	Size:       "SIZE",
	Type:       "TYPE",
	MountPoint: "MOUNTPOINT",
	FSType:     "FSTYPE",
	Label:      "LABEL",
	UUID:       "UUID",
}

var (
	// DefaultColumns are displayed when no columns are requested.
	DefaultColumns = []Column{Name, Size, Type, MountPoint}

	// FSColumns are displayed by default when device metadata is requested.
	FSColumns = []Column{Name, Size, Type, FSType, MountPoint, Label, UUID}
)

func (c Column) String() string {
	if int(c) < len(columnNames) {
		return columnNames[c]
	}
	return "UNKNOWN"
}

// value returns the cell for d in this column.
func (c Column) value(d *blockdev.Device) string {
	switch c {
	case Name:
		return d.Name
	case Size:
		return FormatSize(d.Size)
	case Type:
		return d.Kind.String()
	case MountPoint:
		return d.MountPoint
	case FSType:
		return d.FSType
	case Label:
		return d.Label
	case UUID:
		return d.UUID
	default:
		return ""
	}
}

// ParseColumns parses a comma separated list of column names (e.g. "name,size,uuid"). Names are case-insensitive
// and may repeat. Unknown names are logged and skipped; an error is returned only when no known column remains.
func ParseColumns(s string) ([]Column, error) {
	var columns []Column
	for _, field := range strings.Split(s, ",") {
		name := strings.TrimSpace(field)
		if name == "" {
			continue
		}

		c, ok := lookupColumn(name)
		if !ok {
			logrus.WithField("column", name).Warn("Ignoring unknown column")
			continue
		}
		columns = append(columns, c)
	}

	if len(columns) == 0 {
		return nil, fmt.Errorf("no known columns in %q", s)
	}

	return columns, nil
}

func lookupColumn(name string) (Column, bool) {
	for i, n := range columnNames {
		if strings.EqualFold(n, name) {
			return Column(i), true
		}
	}
	return 0, false
}

// header joins the display names of columns.
func header(columns []Column) string {
	names := make([]string, 0, len(columns))
	for _, c := range columns {
		names = append(names, c.String())
	}
	return strings.Join(names, " ")
}
