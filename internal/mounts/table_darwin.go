//go:build darwin

package mounts

import (
	"context"
	"fmt"

	"golang.org/x/sys/unix"
)

// systemTable reads the mount table with getfsstat(2), the same source mount(8) and getmntinfo(3) use.
type systemTable struct{}

// Entries returns every currently mounted filesystem without blocking on unresponsive (e.g. network) mounts.
func (systemTable) Entries(_ context.Context) ([]Entry, error) {
	n, err := unix.Getfsstat(nil, unix.MNT_NOWAIT)
	if err != nil {
		return nil, fmt.Errorf("mounts: failed to count mounted filesystems: %w", err)
	}
	if n <= 0 {
		return nil, nil
	}

	buf := make([]unix.Statfs_t, n)
	n, err = unix.Getfsstat(buf, unix.MNT_NOWAIT)
	if err != nil {
		return nil, fmt.Errorf("mounts: failed to read mounted filesystems: %w", err)
	}

	entries := make([]Entry, 0, n)
	for _, st := range buf[:n] {
		entries = append(entries, Entry{
			Source: unix.ByteSliceToString(st.Mntfromname[:]),
			Target: unix.ByteSliceToString(st.Mntonname[:]),
		})
	}

	return entries, nil
}
