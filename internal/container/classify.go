package container

import (
	"regexp"
	"strings"
)

// Class is the semantic state derived from a container's raw status text.
type Class int

const (
	ClassUnknown Class = iota
	ClassHealthy
	ClassUnhealthy
	ClassRestarting
	ClassStarting
	ClassError
	ClassStopped
	ClassRunning
)

func (c Class) String() string {
	switch c {
	case ClassHealthy:
		return "healthy"
	case ClassUnhealthy:
		return "unhealthy"
	case ClassRestarting:
		return "restarting"
	case ClassStarting:
		return "starting"
	case ClassError:
		return "error"
	case ClassStopped:
		return "stopped"
	case ClassRunning:
		return "running"
	default:
		return "unknown"
	}
}

var exitCodePattern = regexp.MustCompile(`exited \((\d+)\)`)

// classifyRules are evaluated in order; the first match wins. Health keywords
// outrank transitional ones, which outrank terminal/running states, so
// "Restarting (unhealthy)" classifies as unhealthy.
var classifyRules = []struct {
	match func(string) bool
	class Class
}{
	{hasHealthy, ClassHealthy},
	{func(s string) bool { return strings.Contains(s, "unhealthy") }, ClassUnhealthy},
	{func(s string) bool { return strings.Contains(s, "restarting") }, ClassRestarting},
	{func(s string) bool { return strings.Contains(s, "starting") }, ClassStarting},
	{isErrorExit, ClassError},
	{isCleanStop, ClassStopped},
	{isRunning, ClassRunning},
}

// Classify maps raw status text to a Class. It is a pure function of the
// status text and always succeeds, falling back to ClassUnknown.
func Classify(status string) Class {
	s := strings.ToLower(strings.TrimSpace(status))
	for _, r := range classifyRules {
		if r.match(s) {
			return r.class
		}
	}
	return ClassUnknown
}

// hasHealthy reports an occurrence of "healthy" that is not part of
// "unhealthy".
func hasHealthy(s string) bool {
	return strings.Contains(strings.ReplaceAll(s, "unhealthy", ""), "healthy")
}

func isErrorExit(s string) bool {
	if strings.Contains(s, "dead") {
		return true
	}
	m := exitCodePattern.FindStringSubmatch(s)
	return m != nil && m[1] != "0"
}

func isCleanStop(s string) bool {
	if strings.Contains(s, "stopped") || strings.Contains(s, "exited (0)") {
		return true
	}
	// An exit without a code in the text still means the container stopped.
	return strings.Contains(s, "exited") && exitCodePattern.FindStringSubmatch(s) == nil
}

func isRunning(s string) bool {
	return s == "up" || strings.HasPrefix(s, "up ") || strings.Contains(s, "running")
}
