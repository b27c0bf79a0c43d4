// Package container defines the container record model and the pure helpers
// applied to raw runtime output: status classification, published-port
// extraction, and relative-time parsing of status text.
package container

import "time"

// WorkdirFallback is the grouping key for containers whose working directory
// cannot be determined from labels or mounts.
const WorkdirFallback = "ungrouped"

// shortIDLen is the display width of container IDs.
const shortIDLen = 8

// Container is one record from the runtime, built fresh on every run.
type Container struct {
	ID        string
	Name      string
	Image     string
	Workdir   string // grouping key, never empty (WorkdirFallback applied)
	Status    string // raw status text, e.g. "Up 2 hours (healthy)"
	State     Class  // derived from Status only
	CreatedAt time.Time
	StartedAt time.Time // zero when never started or inspect unavailable
	Ports     []PortBinding
}

// PortBinding is one host-to-container port mapping. Host is zero for
// unpublished ports.
type PortBinding struct {
	Host      int
	Container int
}

// ShortID returns the truncated ID used for display. The full ID stays on the
// record for lookups.
func (c Container) ShortID() string {
	if len(c.ID) <= shortIDLen {
		return c.ID
	}
	return c.ID[:shortIDLen]
}
