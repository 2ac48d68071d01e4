package blockdev

import (
	"github.com/sirupsen/logrus"

	"github.com/aws/mlsblk/internal/diskutil/identifier"
	"github.com/aws/mlsblk/internal/mounts"
)

// ResolveMounts sets the mount point of every device named by a mount table entry. Entries whose source isn't a
// device node, or names no known device, are ignored. When a device appears more than once the last entry wins.
// It returns the number of entries applied.
func (f *Forest) ResolveMounts(entries []mounts.Entry) int {
	applied := 0
	for _, entry := range entries {
		id, ok := identifier.FromDevicePath(entry.Source)
		if !ok || id == "" {
			continue
		}

		d := f.find(id)
		if d == nil {
			continue
		}

		d.MountPoint = entry.Target
		applied++

		logrus.WithFields(logrus.Fields{
			"device_id":   d.Name,
			"mount_point": entry.Target,
		}).Debug("Resolved mount point")
	}

	return applied
}
