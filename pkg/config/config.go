package config

import (
	"github.com/arthur-debert/bombuilder/pkg/collect"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Config is the complete run configuration.
type Config struct {
	Graph   Graph   `koanf:"graph"`
	Bom     Bom     `koanf:"bom"`
	Scope   Scope   `koanf:"scope"`
	Filters Filters `koanf:"filters"`
	Output  Output  `koanf:"output"`
}

// Graph locates the module graph snapshot.
type Graph struct {
	Path string `koanf:"path"`
}

// Bom holds the manifest's identity and generation switches.
type Bom struct {
	GroupID     string `koanf:"group_id"`
	ArtifactID  string `koanf:"artifact_id"`
	Version     string `koanf:"version"`
	Name        string `koanf:"name"`
	Description string `koanf:"description"`
	Classifier  string `koanf:"classifier"`
	// Parent is an explicit "groupId:artifactId:version" parent.
	Parent          string `koanf:"parent"`
	UseModuleParent bool   `koanf:"use_module_parent"`
	Attach          bool   `koanf:"attach"`

	AddVersionProperties    bool `koanf:"add_version_properties"`
	UsePropertiesForVersion bool `koanf:"use_properties_for_version"`
}

// Scope selects which coordinates are collected.
type Scope struct {
	Modules     collect.Breadth `koanf:"modules"`
	Direct      collect.Breadth `koanf:"direct"`
	Transitive  collect.Breadth `koanf:"transitive"`
	IncludePoms bool            `koanf:"include_poms"`
}

// Policy converts the scope section to a collector policy.
func (s Scope) Policy() collect.ScopePolicy {
	return collect.ScopePolicy{
		Modules:     s.Modules,
		Direct:      s.Direct,
		Transitive:  s.Transitive,
		IncludePoms: s.IncludePoms,
	}
}

// Filters holds inclusion, exclusion and exclusion-mapping rules.
type Filters struct {
	Include    []types.InclusionRule    `koanf:"include"`
	Exclude    []types.ExclusionRule    `koanf:"exclude"`
	Exclusions []types.ExclusionMapping `koanf:"exclusions"`
}

// Output says where results go.
type Output struct {
	Directory string `koanf:"directory"`
	Filename  string `koanf:"filename"`
	Record    string `koanf:"record"`
}
