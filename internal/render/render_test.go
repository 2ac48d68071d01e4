package render

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aws/mlsblk/internal/blockdev"
	"github.com/aws/mlsblk/internal/diskutil/types"
	"github.com/aws/mlsblk/internal/mounts"
)

func init() {
	logrus.SetOutput(io.Discard)
}

// scenarioRoots builds a single disk holding one mounted APFS partition.
func scenarioRoots(t *testing.T) []*blockdev.Device {
	t.Helper()

	f, err := blockdev.Build(&types.SystemPartitions{
		AllDisksAndPartitions: []types.DiskPart{
			{
				Content:          "GUID_partition_scheme",
				DeviceIdentifier: "disk0",
				Size:             121332826112,
				Partitions: []types.Partition{
					{Content: "Apple_APFS", DeviceIdentifier: "disk0s1", Size: 121213132800},
				},
			},
		},
	}, blockdev.BuildOptions{})
	require.NoError(t, err)
	f.ResolveMounts([]mounts.Entry{{Source: "/dev/disk0s1", Target: "/"}})

	return f.Roots
}

// nestedRoots builds a disk with two partitions that each hold a nested slice.
func nestedRoots() []*blockdev.Device {
	return []*blockdev.Device{
		{
			Name: "disk2",
			Size: 1 << 30,
			Kind: blockdev.Disk,
			Children: []*blockdev.Device{
				{
					Name:     "disk2s1",
					Size:     1 << 20,
					Kind:     blockdev.Partition,
					Children: []*blockdev.Device{{Name: "disk2s1s1", Size: 1024, Kind: blockdev.Partition}},
				},
				{
					Name:     "disk2s2",
					Size:     512,
					Kind:     blockdev.Partition,
					Children: []*blockdev.Device{{Name: "disk2s2s1", Kind: blockdev.Partition}},
				},
			},
		},
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed pipe")
}

func TestTree(t *testing.T) {
	t.Run("default columns", func(t *testing.T) {
		var buf bytes.Buffer

		err := Tree(&buf, scenarioRoots(t), DefaultColumns, Options{})

		require.NoError(t, err)
		expected := "NAME SIZE TYPE MOUNTPOINT\n" +
			"disk0 113.0G disk\n" +
			"  └── disk0s1 112.9G part /\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("nested connectors", func(t *testing.T) {
		var buf bytes.Buffer

		err := Tree(&buf, nestedRoots(), []Column{Name, Size}, Options{})

		require.NoError(t, err)
		expected := "NAME SIZE\n" +
			"disk2 1.0G\n" +
			"  ├── disk2s1 1.0M\n" +
			"  │   └── disk2s1s1 1.0K\n" +
			"  └── disk2s2 512.0B\n" +
			"      └── disk2s2s1 0.0B\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("name always leads", func(t *testing.T) {
		var buf bytes.Buffer

		err := Tree(&buf, scenarioRoots(t), []Column{Type, Size, Size, Name}, Options{})

		require.NoError(t, err)
		expected := "NAME TYPE SIZE SIZE\n" +
			"disk0 disk 113.0G 113.0G\n" +
			"  └── disk0s1 part 112.9G 112.9G\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("styled header", func(t *testing.T) {
		var buf bytes.Buffer

		err := Tree(&buf, scenarioRoots(t), DefaultColumns, Options{Styled: true})

		require.NoError(t, err)
		assert.Contains(t, buf.String(), "NAME SIZE TYPE MOUNTPOINT")
		assert.True(t, strings.HasSuffix(buf.String(), "disk0 113.0G disk\n  └── disk0s1 112.9G part /\n"))
	})

	t.Run("write failure", func(t *testing.T) {
		assert.Error(t, Tree(failingWriter{}, scenarioRoots(t), DefaultColumns, Options{}))
	})
}

func TestList(t *testing.T) {
	tests := []struct {
		name     string
		columns  []Column
		expected string
	}{
		{
			name:     "projected columns",
			columns:  []Column{Name, Type, MountPoint},
			expected: "NAME TYPE MOUNTPOINT\ndisk0 disk\ndisk0s1 part /\n",
		},
		{
			name:     "duplicates kept in order",
			columns:  []Column{Size, Name, Name},
			expected: "SIZE NAME NAME\n113.0G disk0 disk0\n112.9G disk0s1 disk0s1\n",
		},
		{
			name:     "empty cells keep their place",
			columns:  []Column{Name, MountPoint, FSType},
			expected: "NAME MOUNTPOINT FSTYPE\ndisk0\ndisk0s1 / apfs\n",
		},
		{
			name:     "empty middle cell",
			columns:  []Column{Name, MountPoint, Type},
			expected: "NAME MOUNTPOINT TYPE\ndisk0  disk\ndisk0s1 / part\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			err := List(&buf, scenarioRoots(t), tt.columns, Options{})

			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}

	t.Run("pre-order", func(t *testing.T) {
		var buf bytes.Buffer

		err := List(&buf, nestedRoots(), []Column{Name}, Options{})

		require.NoError(t, err)
		assert.Equal(t, "NAME\ndisk2\ndisk2s1\ndisk2s1s1\ndisk2s2\ndisk2s2s1\n", buf.String())
	})
}

func TestJSON(t *testing.T) {
	t.Run("scenario", func(t *testing.T) {
		var buf bytes.Buffer

		err := JSON(&buf, scenarioRoots(t))

		require.NoError(t, err)
		expected := `{
  "blockdevices": [
    {
      "name": "disk0",
      "size": 121332826112,
      "type": "disk",
      "mountpoint": "",
      "fstype": "",
      "label": "",
      "uuid": "",
      "children": [
        {
          "name": "disk0s1",
          "size": 121213132800,
          "type": "part",
          "mountpoint": "/",
          "fstype": "apfs",
          "label": "",
          "uuid": ""
        }
      ]
    }
  ]
}
`
		assert.Equal(t, expected, buf.String())
	})

	t.Run("no devices", func(t *testing.T) {
		var buf bytes.Buffer

		err := JSON(&buf, nil)

		require.NoError(t, err)
		assert.JSONEq(t, `{"blockdevices": []}`, buf.String())
	})

	t.Run("escapes quotes and control characters", func(t *testing.T) {
		var buf bytes.Buffer
		roots := []*blockdev.Device{{Name: "disk3s1", Label: "My \"Disk\"\t<1>"}}

		err := JSON(&buf, roots)

		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"label": "My \"Disk\"\t<1>"`)
	})

	t.Run("write failure", func(t *testing.T) {
		assert.Error(t, JSON(failingWriter{}, scenarioRoots(t)))
	})
}

func TestWrite(t *testing.T) {
	roots := scenarioRoots(t)
	for _, format := range []Format{TreeFormat, ListFormat, JSONFormat} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer

			err := Write(&buf, format, roots, DefaultColumns, Options{})

			require.NoError(t, err)
			assert.Contains(t, buf.String(), "disk0s1")
		})
	}

	t.Run("unsupported", func(t *testing.T) {
		err := Write(io.Discard, Format(9), roots, DefaultColumns, Options{})

		assert.Error(t, err)
		assert.Equal(t, "unknown", Format(9).String())
	})
}
