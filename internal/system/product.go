package system

import (
	"fmt"

	"github.com/Masterminds/semver"
)

// Release is a macOS release (e.g. Catalina, Big Sur).
type Release uint8

const (
	Unknown Release = iota
	Mojave
	Catalina
	BigSur
	Monterey
	Ventura
	Sonoma
	Sequoia
	Tahoe
	CompatMode
)

// Latest is the newest release known to this build.
const Latest = Tahoe

func (r Release) String() string {
	switch r {
	case Mojave:
		return "Mojave"
	case Catalina:
		return "Catalina"
	case BigSur:
		return "Big Sur"
	case Monterey:
		return "Monterey"
	case Ventura:
		return "Ventura"
	case Sonoma:
		return "Sonoma"
	case Sequoia:
		return "Sequoia"
	case Tahoe:
		return "Tahoe"
	case CompatMode:
		return "Compatibility Mode"
	default:
		return "unknown"
	}
}

// releaseConstraints map version ranges to releases. They're checked in order; the first match wins. 10.16 is what
// Big Sur and later report in compat mode (SYSTEM_VERSION_COMPAT=1).
var releaseConstraints = []struct {
	release    Release
	constraint *semver.Constraints
}{
	{Mojave, mustInitConstraint(semver.NewConstraint("~10.14"))},
	{Catalina, mustInitConstraint(semver.NewConstraint("~10.15"))},
	{CompatMode, mustInitConstraint(semver.NewConstraint("~10.16"))},
	{BigSur, mustInitConstraint(semver.NewConstraint("~11"))},
	{Monterey, mustInitConstraint(semver.NewConstraint("~12"))},
	{Ventura, mustInitConstraint(semver.NewConstraint("~13"))},
	{Sonoma, mustInitConstraint(semver.NewConstraint("~14"))},
	{Sequoia, mustInitConstraint(semver.NewConstraint("~15"))},
	{Tahoe, mustInitConstraint(semver.NewConstraint("~26"))},
}

// sealedSystemConstraints match the versions that boot from a snapshot of a sealed system volume: Big Sur and later,
// including the compat mode version.
var sealedSystemConstraints = mustInitConstraint(semver.NewConstraint(">= 10.16"))

// mustInitConstraint ensures that a semver.Constraints can be initialized and used.
func mustInitConstraint(c *semver.Constraints, err error) *semver.Constraints {
	if err != nil {
		panic(fmt.Errorf("must initialize semver constraint: %w", err))
	}
	return c
}

// Product identifies a macOS release and product version (e.g. Big Sur 11.x).
type Product struct {
	Release
	Version semver.Version
}

func (p Product) String() string {
	return fmt.Sprintf("macOS %s %s", p.Release, p.Version.String())
}

// SealedSystemVolume reports whether the product mounts its system volume from a snapshot rather than the volume
// itself, which leaves the volume's own mount point empty in diskutil's listing.
func (p Product) SealedSystemVolume() bool {
	return sealedSystemConstraints.Check(&p.Version)
}

// newProduct parses version and identifies the Release it belongs to.
func newProduct(version string) (*Product, error) {
	ver, err := semver.NewVersion(version)
	if err != nil {
		return nil, fmt.Errorf("invalid product version %q: %w", version, err)
	}

	return &Product{Release: getVersionRelease(*ver), Version: *ver}, nil
}

// getVersionRelease returns the first Release whose constraint version satisfies, or Unknown.
func getVersionRelease(version semver.Version) Release {
	for _, rc := range releaseConstraints {
		if rc.constraint.Check(&version) {
			return rc.release
		}
	}
	return Unknown
}
