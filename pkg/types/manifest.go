package types

// ModelVersion is the POM model version written into every manifest.
const ModelVersion = "4.0.0"

// Exclusion is a transitive exclusion on a manifest entry.
type Exclusion struct {
	GroupID    string
	ArtifactID string
}

// ManagedDependency is one entry of the dependency management list.
type ManagedDependency struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Type       string
	Exclusions []Exclusion
}

// Manifest is the generated BOM. It is built once and not modified.
type Manifest struct {
	ModelVersion string
	Parent       *ParentRef

	GroupID    string
	ArtifactID string
	Version    string
	Packaging  string

	Name        string
	Description string
	URL         string
	Licenses    []License
	Developers  []Developer
	SCM         *SCM

	Properties   *Properties
	Dependencies []ManagedDependency
}

// Coordinate returns the manifest's own coordinate.
func (m *Manifest) Coordinate() Coordinate {
	return Coordinate{
		GroupID:    m.GroupID,
		ArtifactID: m.ArtifactID,
		Version:    m.Version,
		Type:       m.Packaging,
	}
}
