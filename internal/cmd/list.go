package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aws/mlsblk/internal/blockdev"
	"github.com/aws/mlsblk/internal/contextual"
	"github.com/aws/mlsblk/internal/diskutil"
	"github.com/aws/mlsblk/internal/diskutil/identifier"
	"github.com/aws/mlsblk/internal/diskutil/types"
	"github.com/aws/mlsblk/internal/mounts"
	"github.com/aws/mlsblk/internal/render"
	"github.com/aws/mlsblk/internal/system"
)

// listOptions is a struct for holding all information passed into the list command.
type listOptions struct {
	fs      bool
	output  string
	json    bool
	list    bool
	noColor bool

	// devices restricts output to these devices and their descendants.
	devices []string
	// styled is set when output goes to a terminal that may be styled.
	styled bool
	// build matches listing interpretation to the running release.
	build blockdev.BuildOptions
}

// format returns the output format selected by the flags. JSON and list are mutually exclusive.
func (o listOptions) format() render.Format {
	switch {
	case o.json:
		return render.JSONFormat
	case o.list:
		return render.ListFormat
	default:
		return render.TreeFormat
	}
}

// columns returns the requested columns, or the defaults for the mode when none were requested.
func (o listOptions) columns() ([]render.Column, error) {
	if o.output != "" {
		return render.ParseColumns(o.output)
	}
	if o.fs {
		return render.FSColumns, nil
	}
	return render.DefaultColumns, nil
}

// addListFlags sets up cmd to list block devices.
func addListFlags(cmd *cobra.Command) {
	opts := listOptions{}
	cmd.Flags().BoolVarP(&opts.fs, "fs", "f", false, "query filesystem metadata (type, label, UUID) for every device")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "comma separated columns to print (NAME,SIZE,TYPE,MOUNTPOINT,FSTYPE,LABEL,UUID)")
	cmd.Flags().BoolVarP(&opts.json, "json", "J", false, "use JSON output format")
	cmd.Flags().BoolVarP(&opts.list, "list", "l", false, "use list output format")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "never style output")
	cmd.MarkFlagsMutuallyExclusive("json", "list")

	cmd.Args = cobra.ArbitraryArgs

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		product := contextual.Product(ctx)
		d, err := diskutilFor(product)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		opts.devices = args
		opts.styled = isStyled(out, opts.noColor)
		opts.build = buildOptionsFor(product)

		logrus.WithField("args", opts).Debug("Running list command with args")
		return run(ctx, d, mounts.System(), opts, out)
	}
}

// diskutilFor configures diskutil for the product. Without a product the latest known behavior is assumed.
func diskutilFor(product *system.Product) (diskutil.DiskUtil, error) {
	if product == nil {
		logrus.Debug("No product identified, using latest diskutil")
		return diskutil.Latest(), nil
	}

	logrus.WithField("product", product).Debug("Configuring diskutil for product")
	return diskutil.ForProduct(product)
}

// buildOptionsFor reads listings the way the product's release produces them. Without a product the latest release
// is assumed.
func buildOptionsFor(product *system.Product) blockdev.BuildOptions {
	if product == nil {
		return blockdev.BuildOptions{SnapshotMounts: true}
	}
	return blockdev.BuildOptions{SnapshotMounts: product.SealedSystemVolume()}
}

// run lists the devices known to utility, annotates them with the mount table and, if requested, per-device
// metadata, then writes them to w.
func run(ctx context.Context, utility diskutil.DiskUtil, table mounts.Table, opts listOptions, w io.Writer) error {
	columns, err := opts.columns()
	if err != nil {
		return fmt.Errorf("invalid output columns: %w", err)
	}

	forest, partitions, err := blockdev.Load(ctx, utility, opts.build)
	if err != nil {
		return err
	}

	roots, err := selectDevices(forest, partitions, opts.devices)
	if err != nil {
		return err
	}

	entries, err := table.Entries(ctx)
	if err != nil {
		logrus.WithError(err).Warn("Cannot read mount table, mount points may be incomplete")
	} else {
		applied := forest.ResolveMounts(entries)
		logrus.WithFields(logrus.Fields{
			"entries": len(entries),
			"applied": applied,
		}).Debug("Resolved mount table")
	}

	if opts.fs {
		enriched := blockdev.Enrich(ctx, forest, utility)
		logrus.WithFields(logrus.Fields{
			"devices":  forest.Len(),
			"enriched": enriched,
		}).Debug("Fetched device metadata")
	}

	return render.Write(w, opts.format(), roots, columns, render.Options{Styled: opts.styled})
}

// selectDevices returns the devices named by args for display, or every root when args is empty.
func selectDevices(forest *blockdev.Forest, partitions *types.SystemPartitions, args []string) ([]*blockdev.Device, error) {
	ids := make([]string, 0, len(args))
	for _, arg := range args {
		id, err := validateDeviceID(arg, partitions)
		if err != nil {
			return nil, fmt.Errorf("invalid device %q: %w", arg, err)
		}
		ids = append(ids, id)
	}

	return forest.Select(ids)
}

// validateDeviceID verifies if the provided ID is a valid device identifier or device node and returns the bare
// identifier.
func validateDeviceID(id string, partitions *types.SystemPartitions) (string, error) {
	deviceID := identifier.ParseDiskID(id)
	if deviceID == "" {
		return "", errors.New("id does not match the expected device identifier format")
	}

	if !partitions.HasDevice(deviceID) {
		return "", errors.New("no such device")
	}

	return deviceID, nil
}

// isStyled reports whether output to w may be styled: w must be a terminal and color must not be disabled.
func isStyled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
