// Package cmd provides the mlsblk command line.
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aws/mlsblk/internal/build"
	"github.com/aws/mlsblk/internal/contextual"
	"github.com/aws/mlsblk/internal/system"
)

const shortLicenseText = "Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved."

// MainCommand provides the main program entrypoint, which lists block devices.
func MainCommand() *cobra.Command {
	cmd := rootCommand()
	addListFlags(cmd)

	return cmd
}

// rootCommand builds a root command object for program run.
func rootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   build.Name + " [flags] [DEVICE...]",
		Short: "list block devices on macOS",
		Long: strings.TrimSpace(`
mlsblk lists information about the block devices macOS knows about: whole disks, their partitions, and the APFS 
containers and volumes synthesized on top of them. Devices are drawn as a tree by default, or as a flat list or 
JSON document.

Devices may be given by identifier (e.g. disk2 or /dev/disk2s1) to only show those devices and their descendants.
`),
		Version:      build.Version,
		SilenceUsage: true,
	}

	versionTemplate := "{{.Name}} {{.Version}} [%s]\n\n%s\n"
	cmd.SetVersionTemplate(fmt.Sprintf(versionTemplate, build.CommitDate, shortLicenseText))

	var verbose bool
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging output")

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := logrus.InfoLevel
		if verbose {
			level = logrus.DebugLevel
		}
		setupLogging(level)

		ctx := cmd.Context()
		if contextual.Product(ctx) == nil {
			if p := detectProduct(); p != nil {
				cmd.SetContext(contextual.WithProduct(ctx, p))
			}
		}

		return nil
	}

	return cmd
}

// detectProduct identifies the running macOS product, or returns nil when it can't be identified.
func detectProduct() *system.Product {
	sys, err := system.Scan()
	if err != nil {
		logrus.WithError(err).Debug("Cannot identify system, assuming latest macOS")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"product": sys.Product(),
		"build":   sys.BuildVersion(),
	}).Debug("Identified system")

	return sys.Product()
}

// setupLogging configures logrus to use the desired timestamp format and log level.
func setupLogging(level logrus.Level) {
	Formatter := &logrus.TextFormatter{}

	// Configure the formatter
	Formatter.TimestampFormat = time.RFC822
	Formatter.FullTimestamp = true

	// Set the desired log level
	logrus.SetLevel(level)

	logrus.SetFormatter(Formatter)
}
