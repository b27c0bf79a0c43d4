package docker

import (
	"context"
	"log/slog"
	"regexp"
	"sort"
	"strconv"

	"github.com/docker/docker/api/types"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"

	"github.com/rgoodwin/dps/internal/container"
)

const composeWorkdirLabel = "com.docker.compose.project.working_dir"

// Load runs the full listing round-trip against src: list, enrich via
// inspect, and assemble container records. Inspect failure is non-fatal; the
// records then carry only what the listing itself provides.
func Load(ctx context.Context, src Source) ([]container.Container, error) {
	raw, err := src.List(ctx)
	if err != nil {
		return nil, err
	}

	summaries, err := parseList(raw)
	if err != nil {
		return nil, err
	}

	details := inspectAll(ctx, src, summaries)

	records := make([]container.Container, 0, len(summaries))
	for _, s := range summaries {
		d, ok := details[idKey(s.ID)]
		if !ok {
			records = append(records, build(s, nil))
			continue
		}
		records = append(records, build(s, &d))
	}
	return records, nil
}

func inspectAll(ctx context.Context, src Source, summaries []summary) map[string]types.ContainerJSON {
	if len(summaries) == 0 {
		return nil
	}

	ids := make([]string, len(summaries))
	for i, s := range summaries {
		ids[i] = s.ID
	}

	raw, err := src.Inspect(ctx, ids)
	if err != nil {
		slog.Warn("inspect failed, using listing output only", "err", err)
		return nil
	}

	details, err := parseInspect(raw)
	if err != nil {
		slog.Warn("inspect output unreadable, using listing output only", "err", err)
		return nil
	}
	return details
}

// build assembles one record from its listing line, refined by the inspect
// payload when present.
func build(s summary, d *types.ContainerJSON) container.Container {
	c := container.Container{
		ID:        s.ID,
		Name:      s.Names,
		Image:     s.Image,
		Status:    s.Status,
		State:     container.Classify(s.Status),
		CreatedAt: parseCreatedAt(s.CreatedAt),
		Workdir:   labelValue(s.Labels, composeWorkdirLabel),
		Ports:     parsePortsColumn(s.Ports),
	}
	if c.Status == "" {
		c.Status = s.State
		c.State = container.Classify(s.State)
	}

	if d != nil {
		if d.State != nil {
			c.StartedAt = parseStartedAt(d.State.StartedAt)
		}
		if d.Config != nil && d.Config.Labels[composeWorkdirLabel] != "" {
			c.Workdir = d.Config.Labels[composeWorkdirLabel]
		}
		if c.Workdir == "" {
			c.Workdir = firstBindSource(d.Mounts)
		}
		if d.NetworkSettings != nil && len(d.NetworkSettings.Ports) > 0 {
			c.Ports = fromPortMap(d.NetworkSettings.Ports)
		}
	}

	if c.Workdir == "" {
		c.Workdir = container.WorkdirFallback
	}
	return c
}

// firstBindSource is the mount heuristic for containers without compose
// labels: the source path of the first bind mount, if any.
func firstBindSource(mounts []types.MountPoint) string {
	for _, m := range mounts {
		if m.Type == mount.TypeBind && m.Source != "" {
			return m.Source
		}
	}
	return ""
}

// portsColumnPattern pulls "host->container" pairs out of the Ports column,
// e.g. "0.0.0.0:8080->80/tcp, [::]:8080->80/tcp". Unpublished entries like
// "80/tcp" carry no "->" and never match.
var portsColumnPattern = regexp.MustCompile(`:(\d+)->(\d+)/`)

func parsePortsColumn(ports string) []container.PortBinding {
	matches := portsColumnPattern.FindAllStringSubmatch(ports, -1)
	if matches == nil {
		return nil
	}

	seen := make(map[container.PortBinding]bool, len(matches))
	var bindings []container.PortBinding
	for _, m := range matches {
		host, _ := strconv.Atoi(m[1])
		cont, _ := strconv.Atoi(m[2])
		b := container.PortBinding{Host: host, Container: cont}
		if seen[b] {
			continue
		}
		seen[b] = true
		bindings = append(bindings, b)
	}
	return bindings
}

// fromPortMap flattens the inspect payload's port map. Map iteration order is
// random, so the result is sorted for determinism.
func fromPortMap(pm nat.PortMap) []container.PortBinding {
	seen := make(map[container.PortBinding]bool)
	var bindings []container.PortBinding
	for port, hostBindings := range pm {
		for _, hb := range hostBindings {
			host, err := strconv.Atoi(hb.HostPort)
			if err != nil || host == 0 {
				continue
			}
			b := container.PortBinding{Host: host, Container: port.Int()}
			if seen[b] {
				continue
			}
			seen[b] = true
			bindings = append(bindings, b)
		}
	}
	sort.Slice(bindings, func(i, j int) bool {
		if bindings[i].Host != bindings[j].Host {
			return bindings[i].Host < bindings[j].Host
		}
		return bindings[i].Container < bindings[j].Container
	})
	return bindings
}
