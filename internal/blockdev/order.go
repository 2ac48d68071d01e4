package blockdev

import (
	"sort"
	"strings"
)

const (
	// wholeDiskPrefix is the common prefix of BSD disk names. It's dropped before comparing.
	wholeDiskPrefix = "disk"

	// sliceSeparator separates a disk number from its slice numbers (e.g. disk2s1).
	sliceSeparator = 's'
)

// CompareNames orders device identifiers the way a person would read them: numbers compare by value, a whole disk
// precedes its slices, and slices of a disk precede the next disk. It returns a negative number when a sorts before b,
// a positive number when after, and zero when they are equivalent.
func CompareNames(a, b string) int {
	a = strings.TrimPrefix(a, wholeDiskPrefix)
	b = strings.TrimPrefix(b, wholeDiskPrefix)

	i, j := 0, 0
	for i < len(a) && j < len(b) {
		ca, cb := a[i], b[j]

		switch {
		case ca == sliceSeparator && cb == sliceSeparator:
			i++
			j++
		case ca == sliceSeparator:
			return 1
		case cb == sliceSeparator:
			return -1
		case isDigit(ca) && isDigit(cb):
			endA, endB := digitRunEnd(a, i), digitRunEnd(b, j)
			if c := compareNumbers(a[i:endA], b[j:endB]); c != 0 {
				return c
			}
			i, j = endA, endB
		case ca != cb:
			if ca < cb {
				return -1
			}
			return 1
		default:
			i++
			j++
		}
	}

	switch {
	case i == len(a) && j == len(b):
		return 0
	case i == len(a):
		return -1
	default:
		return 1
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

// digitRunEnd returns the index just past the run of digits starting at i.
func digitRunEnd(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

// compareNumbers compares two runs of decimal digits by value. Runs of any length are supported.
func compareNumbers(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")

	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}

	return strings.Compare(a, b)
}

// sortDevices orders devices by name, keeping the listing order of equivalent names.
func sortDevices(devices []*Device) {
	sort.SliceStable(devices, func(i, j int) bool {
		return CompareNames(devices[i].Name, devices[j].Name) < 0
	})
}

// sort orders the roots and every sibling group in the forest.
func (f *Forest) sort() {
	sortDevices(f.Roots)
	for _, d := range f.devices {
		sortDevices(d.Children)
	}
}
