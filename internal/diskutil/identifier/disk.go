package identifier

import (
	"regexp"
	"strings"
)

// DevicePathPrefix is the directory prefix of block device nodes in the mount table.
const DevicePathPrefix = "/dev/"

// diskIDExp matches a whole device identifier, including any slice suffixes (e.g. disk2s1s1). Raw device spellings
// such as rdisk2 are not identifiers.
var diskIDExp = regexp.MustCompile(`^disk[0-9]+(s[0-9]+)*$`)

// ParseDiskID parses a supported disk identifier, given bare (disk2s1) or as a device node (/dev/disk2s1). It returns
// an empty string for anything else.
func ParseDiskID(s string) string {
	id, _ := FromDevicePath(strings.TrimSpace(s))
	if !diskIDExp.MatchString(id) {
		return ""
	}
	return id
}

// FromDevicePath strips the device directory prefix from a mount source (e.g. /dev/disk1s1) and reports whether the
// prefix was present. Other spellings, such as raw device nodes, are returned untouched.
func FromDevicePath(path string) (string, bool) {
	if !strings.HasPrefix(path, DevicePathPrefix) {
		return path, false
	}
	return strings.TrimPrefix(path, DevicePathPrefix), true
}
