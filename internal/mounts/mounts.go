// Package mounts reads the host's live mount table.
package mounts

//go:generate mockgen -destination mocks/mock_mounts.go github.com/aws/mlsblk/internal/mounts Table

import (
	"bufio"
	"context"
	"strings"
)

// Entry is a single mounted filesystem: the device (or pseudo device) it was mounted from and the path it is
// mounted on.
type Entry struct {
	Source string
	Target string
}

// Table outlines the functionality necessary for reading the mount table.
type Table interface {
	// Entries returns every currently mounted filesystem.
	Entries(ctx context.Context) ([]Entry, error)
}

// System returns the mount table implementation for the running platform.
func System() Table {
	return systemTable{}
}

// parseMountOutput parses the human-readable output of mount(8). Both the BSD form
// ("/dev/disk1s1 on / (apfs, local, journaled)") and the Linux form ("/dev/sda1 on / type ext4 (rw)") are
// understood. Lines that don't match either form are skipped.
func parseMountOutput(raw string) []Entry {
	var entries []Entry

	scanner := bufio.NewScanner(strings.NewReader(raw))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		source, rest, ok := strings.Cut(line, " on ")
		if !ok || source == "" {
			continue
		}

		target := rest
		if i := strings.Index(target, " type "); i >= 0 {
			target = target[:i]
		} else if i := strings.LastIndex(target, " ("); i >= 0 {
			target = target[:i]
		}

		target = strings.TrimSpace(target)
		if target == "" {
			continue
		}

		entries = append(entries, Entry{Source: source, Target: target})
	}

	return entries
}
