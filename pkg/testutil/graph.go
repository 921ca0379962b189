package testutil

import (
	"testing"

	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Coord parses a "g:a:v" (or longer) coordinate and fails the test on error.
func Coord(t testing.TB, s string) types.Coordinate {
	t.Helper()
	c, err := types.ParseCoordinate(s)
	if err != nil {
		t.Fatalf("invalid test coordinate %q: %v", s, err)
	}
	return c
}

// Scoped returns c with the given scope.
func Scoped(c types.Coordinate, scope string) types.Coordinate {
	c.Scope = scope
	return c
}

// GraphBuilder builds a types.ModuleGraph for tests.
type GraphBuilder struct {
	t     testing.TB
	graph types.ModuleGraph
}

// NewGraph starts an empty graph.
func NewGraph(t testing.TB) *GraphBuilder {
	return &GraphBuilder{t: t}
}

// ModuleBuilder configures one module of a GraphBuilder.
type ModuleBuilder struct {
	g   *GraphBuilder
	idx int
}

// Module adds a module from a "g:a:v" coordinate with the given packaging.
func (b *GraphBuilder) Module(gav, packaging string) *ModuleBuilder {
	b.t.Helper()
	c := Coord(b.t, gav)
	b.graph.Modules = append(b.graph.Modules, types.Module{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
		Packaging:  packaging,
	})
	return &ModuleBuilder{g: b, idx: len(b.graph.Modules) - 1}
}

// Current marks the module with key "g:a" as current.
func (b *GraphBuilder) Current(key string) *GraphBuilder {
	b.graph.CurrentKey = key
	return b
}

// Build returns the graph.
func (b *GraphBuilder) Build() *types.ModuleGraph {
	g := b.graph
	return &g
}

func (m *ModuleBuilder) module() *types.Module {
	return &m.g.graph.Modules[m.idx]
}

// Current marks this module as the current one.
func (m *ModuleBuilder) Current() *ModuleBuilder {
	m.g.graph.CurrentKey = m.module().Key()
	return m
}

// Depends adds direct dependencies.
func (m *ModuleBuilder) Depends(coords ...string) *ModuleBuilder {
	m.g.t.Helper()
	for _, s := range coords {
		m.module().Dependencies = append(m.module().Dependencies, Coord(m.g.t, s))
	}
	return m
}

// Resolves adds resolved transitive artifacts.
func (m *ModuleBuilder) Resolves(coords ...types.Coordinate) *ModuleBuilder {
	m.module().Artifacts = append(m.module().Artifacts, coords...)
	return m
}

// Parent sets the module's parent.
func (m *ModuleBuilder) Parent(gav, relativePath string) *ModuleBuilder {
	m.g.t.Helper()
	c := Coord(m.g.t, gav)
	m.module().Parent = &types.ParentRef{
		GroupID:      c.GroupID,
		ArtifactID:   c.ArtifactID,
		Version:      c.Version,
		RelativePath: relativePath,
	}
	return m
}

// SubModules sets the declared sub-module names.
func (m *ModuleBuilder) SubModules(names ...string) *ModuleBuilder {
	m.module().Modules = append(m.module().Modules, names...)
	return m
}

// Metadata sets descriptive metadata.
func (m *ModuleBuilder) Metadata(md types.Metadata) *ModuleBuilder {
	m.module().Metadata = md
	return m
}

// BuildDirectory sets the module's build directory.
func (m *ModuleBuilder) BuildDirectory(dir string) *ModuleBuilder {
	m.module().BuildDirectory = dir
	return m
}

// Module continues with another module.
func (m *ModuleBuilder) Module(gav, packaging string) *ModuleBuilder {
	return m.g.Module(gav, packaging)
}

// Build returns the graph.
func (m *ModuleBuilder) Build() *types.ModuleGraph {
	return m.g.Build()
}
