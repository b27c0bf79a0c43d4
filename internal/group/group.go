// Package group buckets container records by working directory and imposes a
// stable total order on them.
package group

import (
	"sort"
	"strings"

	"github.com/rgoodwin/dps/internal/container"
)

// Bucket is one of four fixed groups a workdir falls into. Declaration order
// is display order.
type Bucket int

const (
	BucketRunner Bucket = iota // workdirs under an actions-runner tree
	BucketOpt                  // workdirs under /opt/
	BucketVar                  // workdirs under /var/
	BucketOther                // everything else, including the fallback key
)

func (b Bucket) String() string {
	switch b {
	case BucketRunner:
		return "actions-runner"
	case BucketOpt:
		return "opt"
	case BucketVar:
		return "var"
	default:
		return "other"
	}
}

// For assigns a workdir to its bucket. The checks run in precedence order:
// an actions-runner path under /opt/ still lands in BucketRunner.
func For(workdir string) Bucket {
	switch {
	case strings.Contains(workdir, "/actions-runner/"):
		return BucketRunner
	case strings.HasPrefix(workdir, "/opt/"):
		return BucketOpt
	case strings.HasPrefix(workdir, "/var/"):
		return BucketVar
	default:
		return BucketOther
	}
}

// Group is all containers sharing one exact workdir.
type Group struct {
	Bucket     Bucket
	Workdir    string
	Containers []container.Container
}

// ByWorkdir arranges records into ordered groups: buckets in precedence
// order, workdirs alphabetical within a bucket, containers by name with ID as
// tiebreak. The order is total, so repeated runs over the same records render
// identically.
func ByWorkdir(records []container.Container) []Group {
	byDir := make(map[string][]container.Container)
	for _, r := range records {
		byDir[r.Workdir] = append(byDir[r.Workdir], r)
	}

	groups := make([]Group, 0, len(byDir))
	for dir, members := range byDir {
		sort.Slice(members, func(i, j int) bool {
			if members[i].Name != members[j].Name {
				return members[i].Name < members[j].Name
			}
			return members[i].ID < members[j].ID
		})
		groups = append(groups, Group{Bucket: For(dir), Workdir: dir, Containers: members})
	}

	sort.Slice(groups, func(i, j int) bool {
		if groups[i].Bucket != groups[j].Bucket {
			return groups[i].Bucket < groups[j].Bucket
		}
		return groups[i].Workdir < groups[j].Workdir
	})
	return groups
}

// Flatten restores a single record list from ordered groups.
func Flatten(groups []Group) []container.Container {
	var records []container.Container
	for _, g := range groups {
		records = append(records, g.Containers...)
	}
	return records
}
