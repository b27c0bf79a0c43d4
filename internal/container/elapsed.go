package container

import (
	"regexp"
	"strconv"
	"time"
)

var relativeTimePattern = regexp.MustCompile(`(\d+)\s+(second|minute|hour|day|week|month|year)`)

// unitDurations uses the same calendar approximations as the uptime
// formatter: 30-day months, 12-month years.
var unitDurations = map[string]time.Duration{
	"second": time.Second,
	"minute": time.Minute,
	"hour":   time.Hour,
	"day":    24 * time.Hour,
	"week":   7 * 24 * time.Hour,
	"month":  30 * 24 * time.Hour,
	"year":   360 * 24 * time.Hour,
}

// ElapsedFromStatus extracts an approximate elapsed duration from relative
// time in status text, e.g. "Up 2 hours (healthy)" yields 2h. It is the last
// resort when no timestamp is available for a container.
func ElapsedFromStatus(status string) (time.Duration, bool) {
	m := relativeTimePattern.FindStringSubmatch(status)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return time.Duration(n) * unitDurations[m[2]], true
}
