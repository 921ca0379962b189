package bom

import (
	"strings"

	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// ParseParentSpec parses a "groupId:artifactId:version" parent spec.
// Anything but three non-empty segments is a configuration error.
func ParseParentSpec(spec string) (*types.ParentRef, error) {
	segments := strings.Split(spec, ":")
	if len(segments) != 3 {
		return nil, invalidParent(spec)
	}
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
		if segments[i] == "" {
			return nil, invalidParent(spec)
		}
	}
	return &types.ParentRef{
		GroupID:    segments[0],
		ArtifactID: segments[1],
		Version:    segments[2],
	}, nil
}

func invalidParent(spec string) error {
	return errors.Newf(errors.ErrParentSpec,
		"BOM parent should be specified as [groupId]:[artifactId]:[version] but is '%s'", spec).
		WithDetail("spec", spec)
}

// resolveParent picks the manifest parent: an explicit spec wins, then the
// module's own parent with its relative path cleared.
func resolveParent(spec string, useModuleParent bool, module *types.Module) (*types.ParentRef, error) {
	if strings.TrimSpace(spec) != "" {
		return ParseParentSpec(spec)
	}
	if useModuleParent && module != nil && module.Parent != nil {
		parent := *module.Parent
		parent.RelativePath = ""
		return &parent, nil
	}
	return nil, nil
}
