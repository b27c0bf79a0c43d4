package render

import (
	"strings"
	"testing"
	"time"

	"github.com/rgoodwin/dps/internal/container"
	"github.com/rgoodwin/dps/internal/group"
)

func fixtureGroups(now time.Time) []group.Group {
	records := []container.Container{
		{
			ID:        "4f5b0f1a9c2d",
			Name:      "web",
			Workdir:   "/opt/app/web",
			Status:    "Up 2 hours (healthy)",
			State:     container.ClassHealthy,
			StartedAt: now.Add(-2 * time.Hour),
			Ports:     []container.PortBinding{{Host: 8080, Container: 80}},
		},
		{
			ID:        "9a8b7c6d5e4f",
			Name:      "db",
			Workdir:   container.WorkdirFallback,
			Status:    "Exited (137) 3 days ago",
			State:     container.ClassError,
			CreatedAt: now.Add(-5 * 24 * time.Hour),
		},
	}
	return group.ByWorkdir(records)
}

func TestTable(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var buf strings.Builder

	Table(&buf, fixtureGroups(now), Options{NoColor: true, Now: now})
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	// Header, two group headers, two rows.
	if len(lines) != 5 {
		t.Fatalf("got %d lines, want 5:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") || !strings.Contains(lines[0], "STATUS") {
		t.Errorf("header line = %q", lines[0])
	}
	if lines[1] != "▸ /opt/app/web" {
		t.Errorf("first group header = %q", lines[1])
	}

	webRow := lines[2]
	for _, want := range []string{"4f5b0f1a", "web", "/opt/app/web", "8080", "2h", "healthy"} {
		if !strings.Contains(webRow, want) {
			t.Errorf("web row %q missing %q", webRow, want)
		}
	}
	if strings.Contains(webRow, "4f5b0f1a9") {
		t.Errorf("web row %q shows more than 8 ID characters", webRow)
	}

	if lines[3] != "▸ -" {
		t.Errorf("second group header = %q", lines[3])
	}

	dbRow := lines[4]
	for _, want := range []string{"9a8b7c6d", "db", "5d", "error"} {
		if !strings.Contains(dbRow, want) {
			t.Errorf("db row %q missing %q", dbRow, want)
		}
	}
	// No published ports renders a placeholder, not an error.
	if !strings.Contains(dbRow, "-") {
		t.Errorf("db row %q missing port placeholder", dbRow)
	}
}

func TestTableFlat(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var buf strings.Builder

	Table(&buf, fixtureGroups(now), Options{NoColor: true, Flat: true, Now: now})
	out := buf.String()

	if strings.Contains(out, "▸") {
		t.Errorf("flat output contains group headers:\n%s", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("got %d lines, want 3:\n%s", len(lines), out)
	}
}

func TestTableAlignment(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	var buf strings.Builder

	Table(&buf, fixtureGroups(now), Options{NoColor: true, Flat: true, Now: now})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// NAME starts at the same offset in every line.
	idx := strings.Index(lines[0], "NAME")
	if idx < 0 {
		t.Fatalf("header missing NAME: %q", lines[0])
	}
	if lines[1][idx:idx+3] != "web" {
		t.Errorf("web row misaligned: %q", lines[1])
	}
	if lines[2][idx:idx+2] != "db" {
		t.Errorf("db row misaligned: %q", lines[2])
	}
}
