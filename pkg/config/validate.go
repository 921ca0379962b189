package config

import (
	"strings"

	"github.com/arthur-debert/bombuilder/pkg/errors"
)

// Validate checks values the decoder cannot. The parent spec itself is
// checked when the manifest is built.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Output.Filename) == "" {
		return errors.New(errors.ErrConfigValid, "output.filename must not be empty")
	}
	for i, m := range c.Filters.Exclusions {
		if m.DependencyGroupID == "" || m.DependencyArtifactID == "" ||
			m.ExclusionGroupID == "" || m.ExclusionArtifactID == "" {
			return errors.Newf(errors.ErrConfigValid,
				"filters.exclusions[%d] needs dependency_group_id, dependency_artifact_id, exclusion_group_id and exclusion_artifact_id", i).
				WithDetail("index", i)
		}
	}
	return nil
}
