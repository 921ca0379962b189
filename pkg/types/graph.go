package types

// ParentRef points at a module's parent POM.
type ParentRef struct {
	GroupID      string `yaml:"groupId" toml:"groupId"`
	ArtifactID   string `yaml:"artifactId" toml:"artifactId"`
	Version      string `yaml:"version" toml:"version"`
	RelativePath string `yaml:"relativePath,omitempty" toml:"relativePath,omitempty"`
}

// License is a descriptive license entry.
type License struct {
	Name         string `yaml:"name,omitempty" toml:"name,omitempty"`
	URL          string `yaml:"url,omitempty" toml:"url,omitempty"`
	Distribution string `yaml:"distribution,omitempty" toml:"distribution,omitempty"`
	Comments     string `yaml:"comments,omitempty" toml:"comments,omitempty"`
}

// Developer is a descriptive developer entry.
type Developer struct {
	ID           string `yaml:"id,omitempty" toml:"id,omitempty"`
	Name         string `yaml:"name,omitempty" toml:"name,omitempty"`
	Email        string `yaml:"email,omitempty" toml:"email,omitempty"`
	Organization string `yaml:"organization,omitempty" toml:"organization,omitempty"`
}

// SCM describes the source control location.
type SCM struct {
	URL                 string `yaml:"url,omitempty" toml:"url,omitempty"`
	Connection          string `yaml:"connection,omitempty" toml:"connection,omitempty"`
	DeveloperConnection string `yaml:"developerConnection,omitempty" toml:"developerConnection,omitempty"`
	Tag                 string `yaml:"tag,omitempty" toml:"tag,omitempty"`
}

// IsZero reports whether no SCM field is set.
func (s SCM) IsZero() bool {
	return s == SCM{}
}

// Metadata is the descriptive part of a module's own document.
type Metadata struct {
	Name        string      `yaml:"name,omitempty" toml:"name,omitempty"`
	Description string      `yaml:"description,omitempty" toml:"description,omitempty"`
	URL         string      `yaml:"url,omitempty" toml:"url,omitempty"`
	Licenses    []License   `yaml:"licenses,omitempty" toml:"licenses,omitempty"`
	Developers  []Developer `yaml:"developers,omitempty" toml:"developers,omitempty"`
	SCM         *SCM        `yaml:"scm,omitempty" toml:"scm,omitempty"`
}

// Module is one project of the host build, as seen after the host
// resolved its dependencies.
type Module struct {
	GroupID    string `yaml:"groupId" toml:"groupId"`
	ArtifactID string `yaml:"artifactId" toml:"artifactId"`
	Version    string `yaml:"version" toml:"version"`
	Packaging  string `yaml:"packaging,omitempty" toml:"packaging,omitempty"`

	Parent         *ParentRef `yaml:"parent,omitempty" toml:"parent,omitempty"`
	Modules        []string   `yaml:"modules,omitempty" toml:"modules,omitempty"`
	BuildDirectory string     `yaml:"buildDirectory,omitempty" toml:"buildDirectory,omitempty"`

	// Dependencies are the declared direct dependencies.
	Dependencies []Coordinate `yaml:"dependencies,omitempty" toml:"dependencies,omitempty"`
	// Artifacts is the resolved transitive dependency set.
	Artifacts []Coordinate `yaml:"artifacts,omitempty" toml:"artifacts,omitempty"`

	Metadata `yaml:",inline"`
}

// Key returns "groupId:artifactId", the name other modules use for it.
func (m *Module) Key() string {
	return m.GroupID + ":" + m.ArtifactID
}

// PackagingOrDefault returns the packaging, "jar" when unset.
func (m *Module) PackagingOrDefault() string {
	if m.Packaging == "" {
		return DefaultType
	}
	return m.Packaging
}

// Coordinate returns the module's own artifact coordinate.
func (m *Module) Coordinate() Coordinate {
	return Coordinate{
		GroupID:    m.GroupID,
		ArtifactID: m.ArtifactID,
		Version:    m.Version,
		Type:       m.PackagingOrDefault(),
	}
}

// IsAggregatorLeaf reports whether the module is packaging "pom" and
// declares no sub-modules.
func (m *Module) IsAggregatorLeaf() bool {
	return m.PackagingOrDefault() == PackagingPom && len(m.Modules) == 0
}

// ModuleGraph is an immutable snapshot of the host build.
type ModuleGraph struct {
	// CurrentKey names the module the run executes for ("groupId:artifactId").
	CurrentKey string   `yaml:"current,omitempty" toml:"current,omitempty"`
	Modules    []Module `yaml:"modules" toml:"modules"`
}

// Current returns the current module, or nil if none is designated.
func (g *ModuleGraph) Current() *Module {
	if g == nil {
		return nil
	}
	return g.Find(g.CurrentKey)
}

// Find returns the module with the given "groupId:artifactId" key.
func (g *ModuleGraph) Find(key string) *Module {
	if g == nil || key == "" {
		return nil
	}
	for i := range g.Modules {
		if g.Modules[i].Key() == key {
			return &g.Modules[i]
		}
	}
	return nil
}
