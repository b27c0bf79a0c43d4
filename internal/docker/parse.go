package docker

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/docker/docker/api/types"
)

// summary mirrors the fields emitted by `docker ps --format "{{json .}}"`.
// Everything arrives as display-formatted strings.
type summary struct {
	ID        string `json:"ID"`
	Names     string `json:"Names"`
	Image     string `json:"Image"`
	State     string `json:"State"`
	Status    string `json:"Status"`
	Ports     string `json:"Ports"`
	Labels    string `json:"Labels"`
	CreatedAt string `json:"CreatedAt"`
	Mounts    string `json:"Mounts"`
}

// createdAtLayout matches the CreatedAt column of docker ps,
// e.g. "2024-06-01 09:30:00 +0200 CEST".
const createdAtLayout = "2006-01-02 15:04:05 -0700 MST"

// parseList splits the raw listing into one summary per line. Malformed
// lines are skipped with a warning; a payload where no line parses at all is
// an ErrParse.
func parseList(raw []byte) ([]summary, error) {
	var (
		summaries []summary
		malformed int
	)

	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var s summary
		if err := json.Unmarshal([]byte(line), &s); err != nil || s.ID == "" {
			malformed++
			slog.Warn("skipping unparsable container line", "line", truncate(line, 80), "err", err)
			continue
		}
		summaries = append(summaries, s)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if malformed > 0 && len(summaries) == 0 {
		return nil, fmt.Errorf("%w: %d lines, none parsable", ErrParse, malformed)
	}
	return summaries, nil
}

// parseInspect decodes `docker inspect` output, keyed by truncated ID so
// listing entries can be matched regardless of ID length.
func parseInspect(raw []byte) (map[string]types.ContainerJSON, error) {
	var details []types.ContainerJSON
	if err := json.Unmarshal(raw, &details); err != nil {
		return nil, fmt.Errorf("decoding inspect output: %w", err)
	}

	byID := make(map[string]types.ContainerJSON, len(details))
	for _, d := range details {
		byID[idKey(d.ID)] = d
	}
	return byID, nil
}

// idKey normalizes container IDs to the 12-character form docker ps uses.
func idKey(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

// labelValue extracts one label from the comma-joined "k=v,k=v" Labels column.
func labelValue(labels, key string) string {
	for _, kv := range strings.Split(labels, ",") {
		if k, v, ok := strings.Cut(kv, "="); ok && k == key {
			return v
		}
	}
	return ""
}

func parseCreatedAt(s string) time.Time {
	t, err := time.Parse(createdAtLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// parseStartedAt handles the RFC3339Nano timestamps of the inspect payload.
// Docker reports the zero year for containers that never started.
func parseStartedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil || t.Year() <= 1 {
		return time.Time{}
	}
	return t
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
