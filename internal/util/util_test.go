package util

import (
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecuteCommand(t *testing.T) {
	t.Run("empty command", func(t *testing.T) {
		out, err := ExecuteCommand(context.Background(), []string{}, nil)

		assert.Error(t, err, "should not run an empty command")
		assert.Equal(t, CommandOutput{}, out)
	})

	t.Run("captures stdout", func(t *testing.T) {
		if _, err := exec.LookPath("echo"); err != nil {
			t.Skip("echo not found")
		}

		out, err := ExecuteCommand(context.Background(), []string{"echo", "disk0"}, nil)

		assert.NoError(t, err)
		assert.Equal(t, "disk0\n", out.Stdout)
		assert.Empty(t, out.Stderr)
	})

	t.Run("passes environment", func(t *testing.T) {
		if _, err := exec.LookPath("sh"); err != nil {
			t.Skip("sh not found")
		}

		out, err := ExecuteCommand(context.Background(), []string{"sh", "-c", "echo $MLSBLK_TEST"}, []string{"MLSBLK_TEST=apfs"})

		assert.NoError(t, err)
		assert.Equal(t, "apfs\n", out.Stdout)
	})

	t.Run("nonzero exit", func(t *testing.T) {
		if _, err := exec.LookPath("sh"); err != nil {
			t.Skip("sh not found")
		}

		out, err := ExecuteCommand(context.Background(), []string{"sh", "-c", "echo oops >&2; exit 3"}, nil)

		assert.Error(t, err, "should surface nonzero exit status")
		assert.Equal(t, "oops\n", out.Stderr)
	})

	t.Run("missing binary", func(t *testing.T) {
		_, err := ExecuteCommand(context.Background(), []string{"/nonexistent/mlsblk-test-binary"}, nil)

		assert.Error(t, err, "should fail to start a missing binary")
	})
}
