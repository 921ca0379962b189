package types

// Wildcard matches any value, including the empty string.
const Wildcard = "*"

// GroupArtifactPattern selects coordinates by groupId and artifactId.
// Either field may be Wildcard.
type GroupArtifactPattern struct {
	GroupID    string `koanf:"group_id" yaml:"groupId"`
	ArtifactID string `koanf:"artifact_id" yaml:"artifactId"`
}

// String returns "groupId:artifactId".
func (p GroupArtifactPattern) String() string {
	return p.GroupID + ":" + p.ArtifactID
}

// ExclusionRule drops matching coordinates from the manifest.
type ExclusionRule = GroupArtifactPattern

// InclusionRule allow-lists matching coordinates. With no inclusion
// rules every coordinate is included.
type InclusionRule = GroupArtifactPattern

// ExclusionMapping adds a transitive exclusion to the manifest entry of
// the dependency it names. It does not filter anything.
type ExclusionMapping struct {
	DependencyGroupID    string `koanf:"dependency_group_id" yaml:"dependencyGroupId"`
	DependencyArtifactID string `koanf:"dependency_artifact_id" yaml:"dependencyArtifactId"`
	ExclusionGroupID     string `koanf:"exclusion_group_id" yaml:"exclusionGroupId"`
	ExclusionArtifactID  string `koanf:"exclusion_artifact_id" yaml:"exclusionArtifactId"`
}

// AppliesTo reports whether the mapping targets c.
func (m ExclusionMapping) AppliesTo(c Coordinate) bool {
	return m.DependencyGroupID == c.GroupID && m.DependencyArtifactID == c.ArtifactID
}
