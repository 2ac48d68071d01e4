package blockdev

import "fmt"

// Forest holds the root devices, each owning its subtree, together with an index of every device by identifier.
type Forest struct {
	// Roots are the top-level devices in display order.
	Roots []*Device

	index   map[string]*Device
	devices []*Device
}

func newForest() *Forest {
	return &Forest{index: make(map[string]*Device)}
}

// device returns the device registered under id, creating and indexing it when it doesn't exist yet. The boolean
// reports whether the device was created; an existing device is returned untouched.
func (f *Forest) device(id string, size uint64, kind Kind) (*Device, bool) {
	if d, ok := f.index[id]; ok {
		return d, false
	}

	d := &Device{Name: id, Size: size, Kind: kind}
	f.index[id] = d
	f.devices = append(f.devices, d)

	return d, true
}

// Lookup fetches a device by identifier.
func (f *Forest) Lookup(id string) (*Device, bool) {
	d, ok := f.index[id]
	return d, ok
}

// Devices returns every device in the order it was first seen in the listing.
func (f *Forest) Devices() []*Device {
	return f.devices
}

// Len is the number of unique devices in the forest.
func (f *Forest) Len() int {
	return len(f.devices)
}

// Walk visits every device depth-first, root by root, in display order. Roots have depth 0.
func (f *Forest) Walk(fn func(d *Device, depth int)) {
	for _, root := range f.Roots {
		root.walk(0, func(d *Device, depth int) bool {
			fn(d, depth)
			return true
		})
	}
}

// find returns the first device named id in a depth-first walk of the forest.
func (f *Forest) find(id string) *Device {
	var found *Device
	for _, root := range f.Roots {
		completed := root.walk(0, func(d *Device, _ int) bool {
			if d.Name == id {
				found = d
				return false
			}
			return true
		})
		if !completed {
			break
		}
	}
	return found
}

// Select returns the devices named by ids, in the given order, for display as roots. With no ids the forest's own
// roots are returned.
func (f *Forest) Select(ids []string) ([]*Device, error) {
	if len(ids) == 0 {
		return f.Roots, nil
	}

	selected := make([]*Device, 0, len(ids))
	for _, id := range ids {
		d, ok := f.Lookup(id)
		if !ok {
			return nil, fmt.Errorf("%s: not a block device", id)
		}
		selected = append(selected, d)
	}

	return selected, nil
}
