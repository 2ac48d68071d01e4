package blockdev

import "fmt"

// TopologyParseError reports that the disk listing could not be obtained or does not describe a device topology.
// No forest is produced alongside it.
type TopologyParseError struct {
	// Reason describes what was wrong with the listing.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *TopologyParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse disk topology: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("cannot parse disk topology: %s", e.Reason)
}

func (e *TopologyParseError) Unwrap() error {
	return e.Err
}
