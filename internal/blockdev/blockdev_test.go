package blockdev

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/aws/mlsblk/internal/diskutil/types"
)

// sealedSystem reads listings the way Big Sur and later produce them.
var sealedSystem = BuildOptions{SnapshotMounts: true}

func init() {
	logrus.SetOutput(io.Discard)
}

// testListing describes an internal disk with an EFI partition and an APFS physical store backing a container with
// a data volume and a sealed system volume.
func testListing() *types.SystemPartitions {
	return &types.SystemPartitions{
		AllDisks: []string{"disk0", "disk0s1", "disk0s2", "disk1", "disk1s1", "disk1s2"},
		AllDisksAndPartitions: []types.DiskPart{
			{
				Content:          "GUID_partition_scheme",
				DeviceIdentifier: "disk0",
				Size:             121332826112,
				Partitions: []types.Partition{
					{
						Content:          "EFI",
						DeviceIdentifier: "disk0s1",
						Size:             209715200,
						VolumeName:       "EFI",
						VolumeUUID:       "0E239BC6-F960-3107-89CF-1C97F78BB46B",
					},
					{
						Content:          "Apple_APFS",
						DeviceIdentifier: "disk0s2",
						Size:             121123069952,
					},
				},
			},
			{
				DeviceIdentifier:   "disk1",
				Size:               121123069952,
				APFSPhysicalStores: []types.APFSPhysicalStoreID{{DeviceIdentifier: "disk0s2"}},
				APFSVolumes: []types.APFSVolume{
					{
						DeviceIdentifier: "disk1s1",
						MountPoint:       "/System/Volumes/Data",
						Size:             121123069952,
						VolumeName:       "Macintosh HD - Data",
						VolumeUUID:       "6F1B4D2A-3C5E-4F70-8A9B-0C1D2E3F4A5B",
					},
					{
						DeviceIdentifier: "disk1s2",
						Size:             121123069952,
						VolumeName:       "Macintosh HD",
						VolumeUUID:       "2D3E4F50-6172-4839-9A0B-1C2D3E4F5061",
						MountedSnapshots: []types.Snapshot{
							{SnapshotBSD: "disk1s2s1", SnapshotMountPoint: "/"},
						},
					},
				},
			},
		},
		WholeDisks: []string{"disk0", "disk1"},
	}
}

// names returns the names of the given devices.
func names(devices []*Device) []string {
	out := make([]string, 0, len(devices))
	for _, d := range devices {
		out = append(out, d.Name)
	}
	return out
}

// mountPoints maps every device in f to its mount point.
func mountPoints(f *Forest) map[string]string {
	out := make(map[string]string)
	f.Walk(func(d *Device, _ int) {
		out[d.Name] = d.MountPoint
	})
	return out
}
