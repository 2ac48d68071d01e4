// Package system identifies the macOS release mlsblk is running on.
package system

import (
	"fmt"
	"io"
	"os"

	"howett.net/plist"
)

const (
	// versionPath is the path on the root filesystem to the SystemVersion plist
	versionPath = "/System/Library/CoreServices/SystemVersion.plist"

	// dotVersionPath is the path to the symlink that directly references versionPath and bypasses the compatibility
	// mode that was introduced with macOS 11.0.
	dotVersionPath = "/System/Library/CoreServices/.SystemVersionPlatform.plist"

	// dotVersionSwitch is the product version number returned by macOS when the system is in compat mode
	// (SYSTEM_VERSION_COMPAT=1). If this version is returned, dotVersionPath should be read to bypass compat mode.
	dotVersionSwitch = "10.16"
)

// System correlates VersionInfo with a Product.
type System struct {
	versionInfo *VersionInfo
	product     *Product
}

// Product returns the identified Product.
func (sys *System) Product() *Product {
	return sys.product
}

// BuildVersion returns the raw build version (e.g. 23A344) of the running system.
func (sys *System) BuildVersion() string {
	if sys.versionInfo == nil {
		return ""
	}
	return sys.versionInfo.ProductBuildVersion
}

// Scan reads the VersionInfo and creates a new System struct from that and the associated Product.
func Scan() (*System, error) {
	version, err := readVersion(versionPath, dotVersionPath)
	if err != nil {
		return nil, err
	}

	product, err := version.Product()
	if err != nil {
		return nil, err
	}

	return &System{versionInfo: version, product: product}, nil
}

// VersionInfo mirrors the raw data found in the SystemVersion plist file.
type VersionInfo struct {
	ProductBuildVersion       string `plist:"ProductBuildVersion"`
	ProductCopyright          string `plist:"ProductCopyright"`
	ProductName               string `plist:"ProductName"`
	ProductUserVisibleVersion string `plist:"ProductUserVisibleVersion"`
	ProductVersion            string `plist:"ProductVersion"`
	IOSSupportVersion         string `plist:"iOSSupportVersion"`
}

// Product determines the specific product that the VersionInfo.ProductVersion is associated with.
func (v *VersionInfo) Product() (*Product, error) {
	return newProduct(v.ProductVersion)
}

// decodeVersionInfo attempts to decode the raw data from the reader into a new VersionInfo struct.
func decodeVersionInfo(reader io.ReadSeeker) (*VersionInfo, error) {
	version := &VersionInfo{}
	if err := plist.NewDecoder(reader).Decode(version); err != nil {
		return nil, fmt.Errorf("system failed to decode contents of reader: %w", err)
	}

	return version, nil
}

// readVersion reads the SystemVersion plist data from path. If the system reports the compat mode version, it
// instead reads from dotPath to bypass macOS's compat mode.
func readVersion(path, dotPath string) (*VersionInfo, error) {
	version, err := readProductVersionFile(path)
	if err != nil {
		return nil, err
	}

	if version.ProductVersion == dotVersionSwitch {
		return readProductVersionFile(dotPath)
	}

	return version, nil
}

// readProductVersionFile opens the given file and attempts to decode it as VersionInfo.
func readProductVersionFile(path string) (*VersionInfo, error) {
	versionFile, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer versionFile.Close()

	return decodeVersionInfo(versionFile)
}
