package blockdev

import (
	"strings"
	"unicode/utf8"
)

const (
	apfsFSType = "apfs"
	hfsFSType  = "hfs"
	vfatFSType = "vfat"

	// maxFSTypeLen bounds content hints that are passed through verbatim.
	maxFSTypeLen = 31
)

// wholeDiskContents are the partition scheme and container hints diskutil reports for whole disks. They say nothing
// about a filesystem.
var wholeDiskContents = []string{
	"GUID_partition_scheme",
	"FDisk_partition_scheme",
	"Apple_partition_scheme",
	"Apple_APFS_Container",
	// APFS container type GUID, reported as the content of synthesized containers.
	"EF57347C",
}

// contentRules map content hints to filesystem types. The first rule whose marker is contained in the hint wins.
var contentRules = []struct {
	marker string
	fsType string
}{
	{"APFS", apfsFSType},
	// "APFS" spelled in hex.
	{"41504653", apfsFSType},
	{"HFS", hfsFSType},
	{"EFI", vfatFSType},
	// EFI system partition type GUID.
	{"C12A7328", vfatFSType},
	{"DOS_FAT", vfatFSType},
}

// isWholeDiskContent reports whether content names a partition scheme or APFS container.
func isWholeDiskContent(content string) bool {
	for _, c := range wholeDiskContents {
		if strings.Contains(content, c) {
			return true
		}
	}
	return false
}

// fsTypeFromContent derives a filesystem type from diskutil's content hint. Unrecognized hints are kept as-is so that
// nothing diskutil reports is hidden.
func fsTypeFromContent(content string) string {
	if content == "" || isWholeDiskContent(content) {
		return ""
	}

	for _, rule := range contentRules {
		if strings.Contains(content, rule.marker) {
			return rule.fsType
		}
	}

	return truncate(content, maxFSTypeLen)
}

// truncate shortens s to at most n bytes without splitting a rune.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}

	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}

	return s[:cut]
}
