// Package diskutil provides the functionality necessary for interacting with macOS's diskutil CLI.
package diskutil

//go:generate mockgen -destination mocks/mock_diskutil.go github.com/aws/mlsblk/internal/diskutil DiskUtil

import (
	"context"
	"errors"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/aws/mlsblk/internal/diskutil/types"
	"github.com/aws/mlsblk/internal/system"
)

// DiskUtil outlines the functionality necessary for wrapping macOS's diskutil tool.
type DiskUtil interface {
	// Info fetches decoded disk information for the specified device identifier.
	Info(ctx context.Context, id string) (*types.DiskInfo, error)
	// List fetches all disk and partition information for the system.
	// This output will be filtered based on the args provided.
	List(ctx context.Context, args []string) (*types.SystemPartitions, error)
}

// ForProduct creates a new diskutil controller for the given product. Releases newer than the ones known to this
// build are given the latest known behavior since diskutil's plist keys have stayed stable across releases.
func ForProduct(p *system.Product) (DiskUtil, error) {
	if p == nil {
		return nil, errors.New("no product provided")
	}

	if p.Release == system.Unknown {
		logrus.WithField("product", p).Warn("Unknown macOS release, assuming latest diskutil behavior")
		return newDiskUtility(system.Latest), nil
	}

	return newDiskUtility(p.Release), nil
}

// Latest creates a diskutil controller for the newest known release. It is used when the product cannot be
// identified at all.
func Latest() DiskUtil {
	return newDiskUtility(system.Latest)
}

// newDiskUtility configures the DiskUtil for the specified release.
func newDiskUtility(release system.Release) *diskUtility {
	return &diskUtility{
		embeddedDiskutil: &DiskUtilityCmd{},
		dec:              &PlistDecoder{},
		release:          release,
	}
}

// embeddedDiskutil is a private interface used to embed UtilImpl into implementation-specific structs.
type embeddedDiskutil interface {
	UtilImpl
}

// diskUtility wraps all the functionality necessary for interacting with macOS's diskutil in GoLang.
type diskUtility struct {
	// embeddedDiskutil provides the raw diskutil implementation.
	embeddedDiskutil

	// dec is the Decoder used to decode the raw output from UtilImpl into usable structs.
	dec Decoder

	// release is the macOS release the utility was configured for.
	release system.Release
}

// List utilizes the UtilImpl.List method to fetch the raw list output from diskutil and returns the decoded
// output in a SystemPartitions struct.
func (d *diskUtility) List(ctx context.Context, args []string) (*types.SystemPartitions, error) {
	logrus.WithField("release", d.release).Debug("Listing disks with diskutil")
	return list(ctx, d.embeddedDiskutil, d.dec, args)
}

// Info utilizes the UtilImpl.Info method to fetch the raw disk output from diskutil and returns the decoded
// output in a DiskInfo struct.
func (d *diskUtility) Info(ctx context.Context, id string) (*types.DiskInfo, error) {
	return info(ctx, d.embeddedDiskutil, d.dec, id)
}

// info is a wrapper that fetches the raw diskutil info data and decodes it into a usable types.DiskInfo struct.
func info(ctx context.Context, util UtilImpl, decoder Decoder, id string) (*types.DiskInfo, error) {
	rawDisk, err := util.Info(ctx, id)
	if err != nil {
		return nil, err
	}

	return decoder.DecodeDiskInfo(strings.NewReader(rawDisk))
}

// list is a wrapper that fetches the raw diskutil list data and decodes it into a usable types.SystemPartitions struct.
func list(ctx context.Context, util UtilImpl, decoder Decoder, args []string) (*types.SystemPartitions, error) {
	rawPartitions, err := util.List(ctx, args)
	if err != nil {
		return nil, err
	}

	return decoder.DecodeSystemPartitions(strings.NewReader(rawPartitions))
}
