// Package collect gathers the raw candidate coordinates for a manifest from
// a module graph snapshot.
package collect

import (
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Collect returns the union of the coordinates selected by policy. The
// graph is only read.
func Collect(graph *types.ModuleGraph, policy ScopePolicy) *types.CoordinateSet {
	logger := logging.GetLogger("collect")
	set := types.NewCoordinateSet()
	if graph == nil {
		return set
	}

	current := graph.Current()
	if current == nil && usesCurrent(policy) {
		logger.Warn().Str("current", graph.CurrentKey).Msg("No current module in graph, current-module selections are empty")
	}

	for _, m := range modulesFor(graph, current, policy.Modules) {
		if policy.IncludePoms || !m.Coordinate().IsPom() {
			set.Add(m.Coordinate())
		}
	}

	for _, m := range dependencyModules(graph, current, policy.Direct, policy.IncludePoms) {
		set.AddAll(m.Dependencies)
	}

	for _, m := range dependencyModules(graph, current, policy.Transitive, policy.IncludePoms) {
		set.AddAll(withoutTestScope(m.Artifacts))
	}

	logger.Debug().
		Int("modules", len(graph.Modules)).
		Str("modulesScope", policy.Modules.String()).
		Str("directScope", policy.Direct.String()).
		Str("transitiveScope", policy.Transitive.String()).
		Bool("includePoms", policy.IncludePoms).
		Int("collected", set.Len()).
		Msg("Collected coordinates")
	return set
}

func usesCurrent(policy ScopePolicy) bool {
	return policy.Modules == BreadthCurrent ||
		policy.Direct == BreadthCurrent ||
		policy.Transitive == BreadthCurrent
}

func modulesFor(graph *types.ModuleGraph, current *types.Module, breadth Breadth) []*types.Module {
	switch breadth {
	case BreadthAll:
		out := make([]*types.Module, 0, len(graph.Modules))
		for i := range graph.Modules {
			out = append(out, &graph.Modules[i])
		}
		return out
	case BreadthCurrent:
		if current != nil {
			return []*types.Module{current}
		}
	}
	return nil
}

// dependencyModules returns the modules whose dependencies are read. Across
// the whole graph, aggregator (pom) modules are skipped unless includePoms;
// the current module is always read.
func dependencyModules(graph *types.ModuleGraph, current *types.Module, breadth Breadth, includePoms bool) []*types.Module {
	modules := modulesFor(graph, current, breadth)
	if breadth != BreadthAll || includePoms {
		return modules
	}
	out := modules[:0]
	for _, m := range modules {
		if !m.Coordinate().IsPom() {
			out = append(out, m)
		}
	}
	return out
}

// withoutTestScope returns a filtered copy of coords.
func withoutTestScope(coords []types.Coordinate) []types.Coordinate {
	out := make([]types.Coordinate, 0, len(coords))
	for _, c := range coords {
		if c.Scope != types.ScopeTest {
			out = append(out, c)
		}
	}
	return out
}
