package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgoodwin/dps/internal/container"
	"github.com/rgoodwin/dps/internal/group"
)

var (
	styleHealthy      = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // bright green
	styleFailed       = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // bright red
	styleTransitional = lipgloss.NewStyle().Foreground(lipgloss.Color("11")) // bright yellow
	styleRunning      = lipgloss.NewStyle().Foreground(lipgloss.Color("14")) // bright cyan
	styleUnknown      = lipgloss.NewStyle().Foreground(lipgloss.Color("15")) // white
	styleID           = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // bright black
	styleHeader       = lipgloss.NewStyle().Bold(true)
	styleGroup        = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// styleFor maps a status class to its display color.
func styleFor(c container.Class) lipgloss.Style {
	switch c {
	case container.ClassHealthy:
		return styleHealthy
	case container.ClassUnhealthy, container.ClassError, container.ClassStopped:
		return styleFailed
	case container.ClassStarting, container.ClassRestarting:
		return styleTransitional
	case container.ClassRunning:
		return styleRunning
	default:
		return styleUnknown
	}
}

// Options control table rendering.
type Options struct {
	NoColor bool
	Flat    bool      // suppress per-workdir group headers
	Now     time.Time // zero means time.Now(); fixed in tests
}

var headers = []string{"ID", "NAME", "WORKDIR", "PORTS", "UPTIME", "STATUS"}

type row struct {
	cells [6]string
	class container.Class
}

// Table writes one aligned row per container to w, preserving the group
// order, with a dim workdir header above each group.
func Table(w io.Writer, groups []group.Group, opts Options) {
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	rowsByGroup := make([][]row, len(groups))
	widths := [6]int{}
	for i, h := range headers {
		widths[i] = len(h)
	}
	for gi, g := range groups {
		rows := make([]row, 0, len(g.Containers))
		for _, c := range g.Containers {
			r := row{
				cells: [6]string{
					c.ShortID(),
					c.Name,
					displayWorkdir(c.Workdir),
					formatPorts(c.Ports),
					Uptime(c, now),
					c.State.String(),
				},
				class: c.State,
			}
			for i, cell := range r.cells {
				if len(cell) > widths[i] {
					widths[i] = len(cell)
				}
			}
			rows = append(rows, r)
		}
		rowsByGroup[gi] = rows
	}

	printRow(w, headers[:], widths, func(_ int, s string) string {
		return paint(s, styleHeader, opts.NoColor)
	})

	for gi, g := range groups {
		if !opts.Flat {
			header := fmt.Sprintf("▸ %s", displayWorkdir(g.Workdir))
			fmt.Fprintln(w, paint(header, styleGroup, opts.NoColor))
		}
		for _, r := range rowsByGroup[gi] {
			st := styleFor(r.class)
			printRow(w, r.cells[:], widths, func(col int, s string) string {
				switch col {
				case 0:
					return paint(s, styleID, opts.NoColor)
				case 1, 5:
					return paint(s, st, opts.NoColor)
				default:
					return s
				}
			})
		}
	}
}

// printRow pads every cell to its column width before styling, so escape
// sequences never skew the alignment.
func printRow(w io.Writer, cells []string, widths [6]int, style func(col int, s string) string) {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := cell + strings.Repeat(" ", widths[i]-len(cell))
		parts[i] = style(i, padded)
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(parts, "  "), " "))
}

func paint(s string, st lipgloss.Style, noColor bool) string {
	if noColor {
		return s
	}
	return st.Render(s)
}

// formatPorts joins the published host ports, "-" when there are none.
func formatPorts(bindings []container.PortBinding) string {
	ports := container.PublishedHostPorts(bindings)
	if len(ports) == 0 {
		return "-"
	}
	parts := make([]string, len(ports))
	for i, p := range ports {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}

func displayWorkdir(workdir string) string {
	if workdir == container.WorkdirFallback {
		return "-"
	}
	return workdir
}
