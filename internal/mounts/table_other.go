//go:build !darwin

package mounts

import (
	"context"
	"fmt"

	"github.com/aws/mlsblk/internal/util"
)

// systemTable reads the mount table from the output of mount(8).
type systemTable struct{}

// Entries returns every currently mounted filesystem.
func (systemTable) Entries(ctx context.Context) ([]Entry, error) {
	out, err := util.ExecuteCommand(ctx, []string{"mount"}, nil)
	if err != nil {
		return nil, fmt.Errorf("mounts: failed to run mount, stderr: [%s]: %w", out.Stderr, err)
	}

	return parseMountOutput(out.Stdout), nil
}
