// Package blockdev assembles diskutil's listing into a forest of block devices and annotates it with mount points
// and per-device metadata.
package blockdev

// Kind classifies a Device as a whole disk or something nested beneath one.
type Kind uint8

const (
	// Disk is a whole disk or an APFS container.
	Disk Kind = iota
	// Partition is a disk slice or an APFS volume.
	Partition
)

func (k Kind) String() string {
	switch k {
	case Disk:
		return "disk"
	case Partition:
		return "part"
	default:
		return "unknown"
	}
}

// Device is a node in the block device forest. Scalar fields are empty when unknown.
type Device struct {
	Name       string
	Size       uint64
	Kind       Kind
	MountPoint string
	FSType     string
	Label      string
	UUID       string

	// Children are owned by the device and ordered by CompareNames once the forest is built.
	Children []*Device

	parent *Device
}

// Parent returns the device this one is attached to, or nil for roots.
func (d *Device) Parent() *Device {
	return d.parent
}

// attach makes child a child of d. A device is attached at most once.
func (d *Device) attach(child *Device) {
	child.parent = d
	d.Children = append(d.Children, child)
}

// walk visits d and its descendants depth-first in child order until fn returns false. It reports whether the walk
// ran to completion.
func (d *Device) walk(depth int, fn func(d *Device, depth int) bool) bool {
	if !fn(d, depth) {
		return false
	}
	for _, child := range d.Children {
		if !child.walk(depth+1, fn) {
			return false
		}
	}
	return true
}
