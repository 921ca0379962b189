package core

import (
	"github.com/arthur-debert/bombuilder/pkg/attach"
	"github.com/arthur-debert/bombuilder/pkg/bom"
	"github.com/arthur-debert/bombuilder/pkg/collect"
	"github.com/arthur-debert/bombuilder/pkg/config"
	"github.com/arthur-debert/bombuilder/pkg/convergence"
	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/matchers"
	"github.com/arthur-debert/bombuilder/pkg/pom"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// GenerateBom runs the whole pipeline and returns what it produced. On any
// configuration error nothing is written.
func GenerateBom(opts GenerateBomOptions) (*Result, error) {
	logger := logging.GetLogger("core.generate")
	defer logging.LogOperationStart(logger, "GenerateBom")()

	if err := requireConfig(opts.Config); err != nil {
		return nil, err
	}
	cfg := opts.Config
	fs := fsOrDefault(opts.Fs)

	g, err := loadGraph(fs, cfg, opts.WorkDir, opts.Graph)
	if err != nil {
		return nil, err
	}
	current := g.Current()

	self, err := selfCoordinate(cfg, current)
	if err != nil {
		return nil, err
	}

	// Collect and filter
	collected := collect.Collect(g, cfg.Scope.Policy()).Sorted()
	filtered := matchers.Filter(collected, cfg.Filters.Include, cfg.Filters.Exclude)
	conflicts := convergence.Report(filtered.Kept)

	// Decide attachment before anything touches the filesystem
	decision, err := attach.Decide(cfg.Bom.Attach, cfg.Bom.Classifier, current)
	if err != nil {
		return nil, err
	}

	manifest, err := bom.Build(bom.Input{
		Coordinates:             filtered.Kept,
		ExclusionMappings:       cfg.Filters.Exclusions,
		Self:                    self,
		Name:                    cfg.Bom.Name,
		Description:             cfg.Bom.Description,
		ParentSpec:              cfg.Bom.Parent,
		UseModuleParent:         cfg.Bom.UseModuleParent,
		AddVersionProperties:    cfg.Bom.AddVersionProperties,
		UsePropertiesForVersion: cfg.Bom.UsePropertiesForVersion,
		Module:                  current,
		Standalone:              decision.Standalone(),
	})
	if err != nil {
		return nil, err
	}

	result := &Result{
		Manifest:    manifest,
		OutputPath:  outputPath(cfg, current, opts.WorkDir),
		Decision:    decision,
		Conflicts:   conflicts,
		DryRun:      opts.DryRun,
		Collected:   len(collected),
		Included:    len(manifest.Dependencies),
		Excluded:    len(filtered.Excluded),
		NotIncluded: len(filtered.NotIncluded),
	}

	logger.Info().
		Int("collected", result.Collected).
		Int("included", result.Included).
		Int("excluded", result.Excluded).
		Int("notIncluded", result.NotIncluded).
		Str("attach", string(decision.Mode)).
		Bool("dryRun", opts.DryRun).
		Msg("Built BOM")

	if opts.DryRun {
		logger.Info().Str("path", result.OutputPath).Msg("Dry run, nothing written")
		return result, nil
	}

	if err := pom.NewWriter(fs).Write(manifest, result.OutputPath); err != nil {
		return nil, err
	}

	recorder := opts.Recorder
	if recorder == nil {
		if path := recordPath(cfg, result.OutputPath); path != "" {
			recorder = attach.NewFileRecorder(fs, path)
		}
	}
	if recorder != nil {
		if err := recorder.Record(decision, manifest.Coordinate(), current, result.OutputPath); err != nil {
			return nil, err
		}
	}

	return result, nil
}

// selfCoordinate fills unset manifest identity fields from the current
// module.
func selfCoordinate(cfg *config.Config, current *types.Module) (types.Coordinate, error) {
	self := types.Coordinate{
		GroupID:    cfg.Bom.GroupID,
		ArtifactID: cfg.Bom.ArtifactID,
		Version:    cfg.Bom.Version,
		Type:       types.PackagingPom,
	}
	if current != nil {
		if self.GroupID == "" {
			self.GroupID = current.GroupID
		}
		if self.ArtifactID == "" {
			self.ArtifactID = current.ArtifactID
		}
		if self.Version == "" {
			self.Version = current.Version
		}
	}
	if self.GroupID == "" || self.ArtifactID == "" || self.Version == "" {
		return types.Coordinate{}, errors.New(errors.ErrConfigValid,
			"bom group_id, artifact_id and version are required when the graph has no current module").
			WithDetail("groupId", self.GroupID).
			WithDetail("artifactId", self.ArtifactID).
			WithDetail("version", self.Version)
	}
	return self, nil
}
