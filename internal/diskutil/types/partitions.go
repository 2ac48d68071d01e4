package types

import "strings"

// SystemPartitions mirrors the output format of the command "diskutil list -plist" to store all disk
// and partition information.
type SystemPartitions struct {
	AllDisks              []string   `plist:"AllDisks"`
	AllDisksAndPartitions []DiskPart `plist:"AllDisksAndPartitions"`
	VolumesFromDisks      []string   `plist:"VolumesFromDisks"`
	WholeDisks            []string   `plist:"WholeDisks"`
}

// HasDevice reports whether the listing knows about the given device identifier. Both AllDisks and the nested
// partition/volume entries are checked since diskutil omits some synthesized devices from AllDisks on older releases.
func (p *SystemPartitions) HasDevice(id string) bool {
	for _, name := range p.AllDisks {
		if strings.EqualFold(name, id) {
			return true
		}
	}

	for _, disk := range p.AllDisksAndPartitions {
		if strings.EqualFold(disk.DeviceIdentifier, id) {
			return true
		}
		for _, part := range disk.Partitions {
			if strings.EqualFold(part.DeviceIdentifier, id) {
				return true
			}
		}
		for _, vol := range disk.APFSVolumes {
			if strings.EqualFold(vol.DeviceIdentifier, id) {
				return true
			}
		}
	}

	return false
}

// APFSPhysicalStoreID represents the physical device usually relating
// to synthesized virtual devices.
type APFSPhysicalStoreID struct {
	DeviceIdentifier string `plist:"DeviceIdentifier"`
}

// DiskPart represents a whole disk (or APFS container) entry of the listing.
type DiskPart struct {
	APFSPhysicalStores []APFSPhysicalStoreID `plist:"APFSPhysicalStores"`
	APFSVolumes        []APFSVolume          `plist:"APFSVolumes"`
	Content            string                `plist:"Content"`
	DeviceIdentifier   string                `plist:"DeviceIdentifier"`
	OSInternal         bool                  `plist:"OSInternal"`
	Partitions         []Partition           `plist:"Partitions"`
	Size               uint64                `plist:"Size"`
}

// IsAPFSContainer checks if the entry is a synthesized APFS container, which lists its volumes (and the physical
// stores backing it) rather than partitions.
func (d DiskPart) IsAPFSContainer() bool {
	return d.APFSVolumes != nil || d.APFSPhysicalStores != nil
}

// Partition stores relevant information about a partition in macOS.
type Partition struct {
	Content          string `plist:"Content"`
	DeviceIdentifier string `plist:"DeviceIdentifier"`
	DiskUUID         string `plist:"DiskUUID"`
	MountPoint       string `plist:"MountPoint"`
	Size             uint64 `plist:"Size"`
	VolumeName       string `plist:"VolumeName"`
	VolumeUUID       string `plist:"VolumeUUID"`
}

// APFSVolume represents a macOS APFS Volume with relevant information.
type APFSVolume struct {
	DeviceIdentifier string     `plist:"DeviceIdentifier"`
	DiskUUID         string     `plist:"DiskUUID"`
	MountPoint       string     `plist:"MountPoint"`
	MountedSnapshots []Snapshot `plist:"MountedSnapshots"`
	OSInternal       bool       `plist:"OSInternal"`
	Size             uint64     `plist:"Size"`
	VolumeName       string     `plist:"VolumeName"`
	VolumeUUID       string     `plist:"VolumeUUID"`
}

// Snapshot stores relevant information about a snapshot in macOS.
type Snapshot struct {
	Sealed             string `plist:"Sealed"`
	SnapshotBSD        string `plist:"SnapshotBSD"`
	SnapshotMountPoint string `plist:"SnapshotMountPoint"`
	SnapshotName       string `plist:"SnapshotName"`
	SnapshotUUID       string `plist:"SnapshotUUID"`
}
