// Package render formats container records into the terminal table.
package render

import (
	"fmt"
	"time"

	"github.com/rgoodwin/dps/internal/container"
)

const (
	day   = 24 * time.Hour
	month = 30 * day
	year  = 12 * month
)

// FormatUptime renders a non-negative elapsed duration as its largest whole
// unit: "59s", "12m", "3h", "12d", "5mo", "2y". Negative input (clock skew)
// clamps to zero.
func FormatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < day:
		return fmt.Sprintf("%dh", int(d.Hours()))
	case d < month:
		return fmt.Sprintf("%dd", int(d/day))
	case d < year:
		return fmt.Sprintf("%dmo", int(d/month))
	default:
		return fmt.Sprintf("%dy", int(d/year))
	}
}

// Uptime picks the best available elapsed time for c: the start timestamp
// when known, creation time otherwise, and as a last resort the relative time
// written into the status text.
func Uptime(c container.Container, now time.Time) string {
	switch {
	case !c.StartedAt.IsZero():
		return FormatUptime(now.Sub(c.StartedAt))
	case !c.CreatedAt.IsZero():
		return FormatUptime(now.Sub(c.CreatedAt))
	}
	if d, ok := container.ElapsedFromStatus(c.Status); ok {
		return FormatUptime(d)
	}
	return "?"
}
