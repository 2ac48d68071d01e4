package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/aws/mlsblk/internal/blockdev"
)

type jsonDevice struct {
	Name       string       `json:"name"`
	Size       uint64       `json:"size"`
	Type       string       `json:"type"`
	MountPoint string       `json:"mountpoint"`
	FSType     string       `json:"fstype"`
	Label      string       `json:"label"`
	UUID       string       `json:"uuid"`
	Children   []jsonDevice `json:"children,omitempty"`
}

type jsonDocument struct {
	BlockDevices []jsonDevice `json:"blockdevices"`
}

// JSON writes roots and their descendants as {"blockdevices": [...]}. Every field is present on every device;
// "children" only appears on devices that have any.
func JSON(w io.Writer, roots []*blockdev.Device) error {
	doc := jsonDocument{BlockDevices: make([]jsonDevice, 0, len(roots))}
	for _, root := range roots {
		doc.BlockDevices = append(doc.BlockDevices, newJSONDevice(root))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode devices: %w", err)
	}

	return nil
}

func newJSONDevice(d *blockdev.Device) jsonDevice {
	out := jsonDevice{
		Name:       d.Name,
		Size:       d.Size,
		Type:       d.Kind.String(),
		MountPoint: d.MountPoint,
		FSType:     d.FSType,
		Label:      d.Label,
		UUID:       d.UUID,
	}
	for _, child := range d.Children {
		out.Children = append(out.Children, newJSONDevice(child))
	}
	return out
}
