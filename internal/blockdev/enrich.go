package blockdev

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/aws/mlsblk/internal/diskutil/types"
)

// InfoSource provides per-device metadata.
type InfoSource interface {
	// Info returns the decoded "diskutil info" output for id.
	Info(ctx context.Context, id string) (*types.DiskInfo, error)
}

// Enrich queries src for every device in the forest and overlays the non-empty metadata it returns. Devices src can't
// describe keep what the listing and mount table gave them. It returns the number of devices enriched.
func Enrich(ctx context.Context, f *Forest, src InfoSource) int {
	enriched := 0
	for _, d := range f.Devices() {
		info, err := src.Info(ctx, d.Name)
		if err != nil || info == nil {
			logrus.WithError(err).WithField("device_id", d.Name).Debug("Skipping device metadata")
			continue
		}

		applyInfo(d, info)
		enriched++
	}

	return enriched
}

// applyInfo overlays info on d. Empty fields never clear what d already has, and the media name only fills in a
// label nothing else provided.
func applyInfo(d *Device, info *types.DiskInfo) {
	if info.FilesystemType != "" {
		d.FSType = info.FilesystemType
	}

	if info.VolumeName != "" || d.Label == "" {
		if label := info.Label(); label != "" {
			d.Label = label
		}
	}

	if uuid := info.UUID(); uuid != "" {
		d.UUID = uuid
	}

	if info.MountPoint != "" {
		d.MountPoint = info.MountPoint
	}
}
