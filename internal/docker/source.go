// Package docker reads container records out of the Docker CLI. Listing and
// enrichment both shell out to the docker binary; the daemon API is never
// dialed directly, so the package works anywhere the CLI does.
package docker

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

var (
	// ErrSourceUnavailable means the docker binary is missing or the daemon
	// did not answer. Fatal, no retry.
	ErrSourceUnavailable = errors.New("container runtime unavailable")

	// ErrParse means the listing output was unreadable as a whole.
	ErrParse = errors.New("unreadable container listing")
)

// Source produces raw listing and inspect output. The CLI is the only
// production implementation; tests substitute canned fixtures.
type Source interface {
	List(ctx context.Context) ([]byte, error)
	Inspect(ctx context.Context, ids []string) ([]byte, error)
}

// CLI invokes the docker binary found on PATH.
type CLI struct {
	Binary string // defaults to "docker"
	All    bool   // include stopped containers
}

func (c *CLI) binary() string {
	if c.Binary != "" {
		return c.Binary
	}
	return "docker"
}

// List returns one JSON object per line, one line per container.
func (c *CLI) List(ctx context.Context) ([]byte, error) {
	args := []string{"ps"}
	if c.All {
		args = append(args, "-a")
	}
	args = append(args, "--no-trunc", "--format", "{{json .}}")
	return c.run(ctx, args...)
}

// Inspect returns the engine-API JSON array for the given containers.
func (c *CLI) Inspect(ctx context.Context, ids []string) ([]byte, error) {
	if len(ids) == 0 {
		return []byte("[]"), nil
	}
	return c.run(ctx, append([]string{"inspect"}, ids...)...)
}

func (c *CLI) run(ctx context.Context, args ...string) ([]byte, error) {
	bin := c.binary()
	if _, err := exec.LookPath(bin); err != nil {
		return nil, fmt.Errorf("%w: %s not found in PATH", ErrSourceUnavailable, bin)
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := firstLine(stderr.String())
		if detail == "" {
			detail = err.Error()
		}
		return nil, fmt.Errorf("%w: %s %s: %s", ErrSourceUnavailable, bin, args[0], detail)
	}

	slog.Debug("ran docker command", "args", args, "bytes", stdout.Len())
	return stdout.Bytes(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return s
}
