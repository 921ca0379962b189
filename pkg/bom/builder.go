// Package bom turns a filtered set of coordinates into the final ordered
// dependency-management manifest.
package bom

import (
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/properties"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Input is everything Build needs. Coordinates must already be filtered.
type Input struct {
	// Coordinates that survived inclusion and exclusion, in any order.
	Coordinates []types.Coordinate
	// ExclusionMappings annotate entries, in configuration order.
	ExclusionMappings []types.ExclusionMapping

	// Self is the manifest's own group/artifact/version.
	Self types.Coordinate
	// Name and Description are applied whenever non-empty.
	Name        string
	Description string

	// ParentSpec is an explicit "g:a:v" parent; it wins over UseModuleParent.
	ParentSpec      string
	UseModuleParent bool

	// AddVersionProperties emits one version property per group.
	AddVersionProperties bool
	// UsePropertiesForVersion also rewrites entry versions to "${property}".
	UsePropertiesForVersion bool

	// Module is the current module; source of the inherited parent and
	// descriptive metadata. May be nil.
	Module *types.Module
	// Standalone is set when the manifest replaces the module's own
	// document, so it must carry the publishing metadata itself.
	Standalone bool
}

// Build creates the manifest. It fails only on a malformed parent spec, and
// then returns no manifest at all.
func Build(in Input) (*types.Manifest, error) {
	logger := logging.GetLogger("bom")

	parent, err := resolveParent(in.ParentSpec, in.UseModuleParent, in.Module)
	if err != nil {
		return nil, err
	}

	manifest := &types.Manifest{
		ModelVersion: types.ModelVersion,
		Parent:       parent,
		GroupID:      in.Self.GroupID,
		ArtifactID:   in.Self.ArtifactID,
		Version:      in.Self.Version,
		Packaging:    types.PackagingPom,
		Name:         in.Name,
		Description:  in.Description,
		Properties:   types.NewProperties(),
	}
	applyMetadata(manifest, in)

	set := types.NewCoordinateSet()
	set.AddAll(in.Coordinates)
	sorted := set.Sorted()

	useProps := in.AddVersionProperties || in.UsePropertiesForVersion
	versionProps := types.NewProperties()
	for _, c := range sorted {
		version := c.Version
		if useProps {
			name := properties.AssignPropertyName(c.GroupID, c.ArtifactID, c.Version, versionProps)
			if in.UsePropertiesForVersion {
				version = properties.Reference(name)
			}
		}

		dep := types.ManagedDependency{
			GroupID:    c.GroupID,
			ArtifactID: c.ArtifactID,
			Version:    version,
			Classifier: c.Classifier,
			Type:       c.Type,
			Exclusions: exclusionsFor(c, in.ExclusionMappings),
		}
		manifest.Dependencies = append(manifest.Dependencies, dep)
	}
	if useProps {
		manifest.Properties.Merge(versionProps)
	}

	logger.Debug().
		Str("bom", manifest.Coordinate().String()).
		Int("dependencies", len(manifest.Dependencies)).
		Int("properties", manifest.Properties.Len()).
		Bool("parent", manifest.Parent != nil).
		Msg("Built BOM model")
	return manifest, nil
}

func exclusionsFor(c types.Coordinate, mappings []types.ExclusionMapping) []types.Exclusion {
	var out []types.Exclusion
	for _, m := range mappings {
		if m.AppliesTo(c) {
			out = append(out, types.Exclusion{GroupID: m.ExclusionGroupID, ArtifactID: m.ExclusionArtifactID})
		}
	}
	return out
}

// applyMetadata copies the module's publishing metadata into a standalone
// manifest. Classified attachments leave it to the module's own document.
func applyMetadata(manifest *types.Manifest, in Input) {
	if !in.Standalone || in.Module == nil {
		return
	}
	md := in.Module.Metadata
	if manifest.Name == "" {
		manifest.Name = md.Name
	}
	if manifest.Description == "" {
		manifest.Description = md.Description
	}
	manifest.URL = md.URL
	manifest.Licenses = append([]types.License(nil), md.Licenses...)
	manifest.Developers = append([]types.Developer(nil), md.Developers...)
	if md.SCM != nil {
		scm := *md.SCM
		manifest.SCM = &scm
	}
}
