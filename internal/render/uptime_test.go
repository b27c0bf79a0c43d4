package render

import (
	"testing"
	"time"

	"github.com/rgoodwin/dps/internal/container"
)

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"}, // clock skew clamps to zero
		{59 * time.Second, "59s"},
		{60 * time.Second, "1m"},
		{59 * time.Minute, "59m"},
		{3661 * time.Second, "1h"},
		{23 * time.Hour, "23h"},
		{24 * time.Hour, "1d"},
		{29 * day, "29d"},
		{30 * day, "1mo"},
		{11 * month, "11mo"},
		{12 * month, "1y"},
		{25 * month, "2y"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatUptime(tt.d); got != tt.want {
				t.Errorf("FormatUptime(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

func TestUptime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		c    container.Container
		want string
	}{
		{
			name: "prefers started-at",
			c: container.Container{
				StartedAt: now.Add(-2 * time.Hour),
				CreatedAt: now.Add(-48 * time.Hour),
			},
			want: "2h",
		},
		{
			name: "falls back to created-at",
			c:    container.Container{CreatedAt: now.Add(-3 * 24 * time.Hour)},
			want: "3d",
		},
		{
			name: "falls back to status text",
			c:    container.Container{Status: "Up 2 hours (healthy)"},
			want: "2h",
		},
		{
			name: "nothing known",
			c:    container.Container{Status: "Created"},
			want: "?",
		},
		{
			name: "future start clamps to zero",
			c:    container.Container{StartedAt: now.Add(time.Minute)},
			want: "0s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Uptime(tt.c, now); got != tt.want {
				t.Errorf("Uptime() = %q, want %q", got, tt.want)
			}
		})
	}
}
