package blockdev

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/aws/mlsblk/internal/diskutil/types"
)

// Lister provides the disk listing a forest is built from.
type Lister interface {
	// List returns the decoded "diskutil list" output.
	List(ctx context.Context, args []string) (*types.SystemPartitions, error)
}

// BuildOptions adjust how a listing is read for the release that produced it.
type BuildOptions struct {
	// SnapshotMounts fills an APFS volume's missing mount point from its first mounted snapshot. Releases that boot
	// from a sealed system volume mount the snapshot instead of the volume.
	SnapshotMounts bool
}

// Load lists every disk with l and builds the forest from the result. Failures are reported as *TopologyParseError.
func Load(ctx context.Context, l Lister, opts BuildOptions) (*Forest, *types.SystemPartitions, error) {
	parts, err := l.List(ctx, nil)
	if err != nil {
		return nil, nil, &TopologyParseError{Reason: "failed to list disks", Err: err}
	}

	forest, err := Build(parts, opts)
	if err != nil {
		return nil, nil, err
	}

	return forest, parts, nil
}

// Build assembles the forest described by the listing. Whole disk entries become roots; their partitions and APFS
// volumes become children. Every identifier is represented by exactly one device: an identifier seen again keeps the
// fields and parent it was first created with. The returned forest is sorted with CompareNames.
func Build(parts *types.SystemPartitions, opts BuildOptions) (*Forest, error) {
	if parts == nil {
		return nil, &TopologyParseError{Reason: "no disk listing"}
	}
	if parts.AllDisksAndPartitions == nil {
		return nil, &TopologyParseError{Reason: "listing has no AllDisksAndPartitions"}
	}

	f := newForest()
	for _, disk := range parts.AllDisksAndPartitions {
		f.addWholeDisk(disk, opts)
	}
	f.sort()

	logrus.WithField("devices", f.Len()).Debug("Built device forest")

	return f, nil
}

// addWholeDisk adds a top-level listing entry along with everything nested in it.
func (f *Forest) addWholeDisk(disk types.DiskPart, opts BuildOptions) {
	if disk.DeviceIdentifier == "" {
		logrus.Debug("Skipping listing entry without a device identifier")
		return
	}

	kind := Partition
	if isWholeDiskContent(disk.Content) || disk.IsAPFSContainer() {
		kind = Disk
	}

	node, created := f.device(disk.DeviceIdentifier, disk.Size, kind)
	if created {
		node.FSType = fsTypeFromContent(disk.Content)
		f.Roots = append(f.Roots, node)

		logrus.WithFields(logrus.Fields{
			"device_id": node.Name,
			"type":      node.Kind,
			"size":      humanize.IBytes(node.Size),
		}).Debug("Found top-level device")
	}

	for _, part := range disk.Partitions {
		f.addPartition(node, part)
	}
	for _, vol := range disk.APFSVolumes {
		f.addAPFSVolume(node, vol, opts)
	}
}

// addPartition attaches a disk slice to parent unless the slice was already seen.
func (f *Forest) addPartition(parent *Device, part types.Partition) {
	if part.DeviceIdentifier == "" {
		return
	}

	node, created := f.device(part.DeviceIdentifier, part.Size, Partition)
	if !created {
		return
	}

	node.FSType = fsTypeFromContent(part.Content)
	node.MountPoint = part.MountPoint
	node.Label = part.VolumeName
	node.UUID = part.VolumeUUID

	parent.attach(node)
}

// addAPFSVolume attaches a volume to its container unless the volume was already seen.
func (f *Forest) addAPFSVolume(parent *Device, vol types.APFSVolume, opts BuildOptions) {
	if vol.DeviceIdentifier == "" {
		return
	}

	node, created := f.device(vol.DeviceIdentifier, vol.Size, Partition)
	if !created {
		return
	}

	node.FSType = apfsFSType
	node.MountPoint = vol.MountPoint
	node.Label = vol.VolumeName
	node.UUID = vol.VolumeUUID

	if node.MountPoint == "" && opts.SnapshotMounts {
		for _, snap := range vol.MountedSnapshots {
			if snap.SnapshotMountPoint != "" {
				node.MountPoint = snap.SnapshotMountPoint
				break
			}
		}
	}

	parent.attach(node)
}
