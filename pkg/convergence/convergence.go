// Package convergence reports artifacts that reach the manifest with more
// than one version.
package convergence

import (
	"sort"
	"strings"

	mm "github.com/Masterminds/semver/v3"

	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Conflict is one groupId:artifactId managed at several versions.
type Conflict struct {
	GroupID    string
	ArtifactID string
	// Versions are distinct, lowest first.
	Versions []string
}

// Key returns "groupId:artifactId".
func (c Conflict) Key() string {
	return c.GroupID + ":" + c.ArtifactID
}

// Highest returns the greatest version.
func (c Conflict) Highest() string {
	if len(c.Versions) == 0 {
		return ""
	}
	return c.Versions[len(c.Versions)-1]
}

// Analyze groups coords by groupId:artifactId and returns every key with
// more than one distinct version, ordered by key.
func Analyze(coords []types.Coordinate) []Conflict {
	versions := make(map[string]map[string]bool)
	keys := make(map[string]types.Coordinate)
	for _, c := range coords {
		ga := c.GA()
		if versions[ga] == nil {
			versions[ga] = make(map[string]bool)
			keys[ga] = c
		}
		versions[ga][c.Version] = true
	}

	var conflicts []Conflict
	for ga, set := range versions {
		if len(set) < 2 {
			continue
		}
		list := make([]string, 0, len(set))
		for v := range set {
			list = append(list, v)
		}
		SortVersions(list)
		conflicts = append(conflicts, Conflict{
			GroupID:    keys[ga].GroupID,
			ArtifactID: keys[ga].ArtifactID,
			Versions:   list,
		})
	}
	sort.Slice(conflicts, func(i, j int) bool {
		return conflicts[i].Key() < conflicts[j].Key()
	})
	return conflicts
}

// Report logs one warning per conflict and returns them.
func Report(coords []types.Coordinate) []Conflict {
	conflicts := Analyze(coords)
	logger := logging.GetLogger("convergence")
	for _, c := range conflicts {
		logger.Warn().
			Str("artifact", c.Key()).
			Strs("versions", c.Versions).
			Str("highest", c.Highest()).
			Msg("Artifact managed at multiple versions")
	}
	return conflicts
}

// SortVersions orders versions by semantic version. Versions that do not
// parse sort after those that do, lexically among themselves.
func SortVersions(versions []string) {
	sort.SliceStable(versions, func(i, j int) bool {
		return compareVersions(versions[i], versions[j]) < 0
	})
}

func compareVersions(a, b string) int {
	va, errA := mm.NewVersion(a)
	vb, errB := mm.NewVersion(b)
	switch {
	case errA == nil && errB == nil:
		if c := va.Compare(vb); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
