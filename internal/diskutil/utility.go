package diskutil

import (
	"context"
	"fmt"

	"github.com/aws/mlsblk/internal/util"
)

// UtilImpl outlines the functionality necessary for wrapping macOS's diskutil tool. The methods are intentionally
// named to correspond to diskutil(8)'s subcommand names as its API.
type UtilImpl interface {
	// Info fetches raw disk information for the specified device identifier.
	Info(ctx context.Context, id string) (string, error)
	// List fetches all disk and partition information for the system.
	// This output will be filtered based on the args provided.
	List(ctx context.Context, args []string) (string, error)
}

// DiskUtilityCmd is an empty struct that provides the implementation for the UtilImpl interface.
type DiskUtilityCmd struct{}

// List uses the macOS diskutil list command to list disks and partitions in a plist format by passing the -plist arg.
// List also appends any given args to fully support the diskutil list verb.
func (d *DiskUtilityCmd) List(ctx context.Context, args []string) (string, error) {
	// Create the diskutil command for retrieving all disk and partition information
	//   * -plist converts diskutil's output from human-readable to the plist format
	cmdListDisks := []string{"diskutil", "list", "-plist"}

	// Append arguments to the diskutil list verb
	if len(args) > 0 {
		cmdListDisks = append(cmdListDisks, args...)
	}

	cmdOut, err := util.ExecuteCommand(ctx, cmdListDisks, nil)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("diskutil: failed to run diskutil command to list all disks, stderr: [%s]: %w", cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}

// Info uses the macOS diskutil info command to get detailed information about a disk, partition, or container
// format by passing the -plist arg.
func (d *DiskUtilityCmd) Info(ctx context.Context, id string) (string, error) {
	// Create the diskutil command for retrieving disk information given a device identifier
	//   * -plist converts diskutil's output from human-readable to the plist format
	//   * id - the device identifier for the disk to be fetched
	cmdDiskInfo := []string{"diskutil", "info", "-plist", id}

	cmdOut, err := util.ExecuteCommand(ctx, cmdDiskInfo, nil)
	if err != nil {
		return cmdOut.Stdout, fmt.Errorf("diskutil: failed to run diskutil command to fetch disk information, stderr: [%s]: %w", cmdOut.Stderr, err)
	}

	return cmdOut.Stdout, nil
}
