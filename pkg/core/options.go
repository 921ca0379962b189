package core

import (
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/arthur-debert/bombuilder/pkg/attach"
	"github.com/arthur-debert/bombuilder/pkg/config"
	"github.com/arthur-debert/bombuilder/pkg/convergence"
	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/graph"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// DefaultBuildDirectory is used when neither the configuration nor the
// current module names one.
const DefaultBuildDirectory = "target"

// GenerateBomOptions holds the options for GenerateBom.
type GenerateBomOptions struct {
	Config *config.Config
	// Graph is used as-is when set; otherwise Config.Graph.Path is loaded.
	Graph *types.ModuleGraph
	// Fs defaults to the OS filesystem.
	Fs afero.Fs
	// WorkDir anchors relative paths. Empty means the process directory.
	WorkDir string
	// Recorder defaults to a FileRecorder at Config.Output.Record.
	Recorder attach.Recorder
	// DryRun builds the manifest but writes and records nothing.
	DryRun bool
}

// InspectGraphOptions holds the options for InspectGraph.
type InspectGraphOptions struct {
	Config  *config.Config
	Graph   *types.ModuleGraph
	Fs      afero.Fs
	WorkDir string
}

// Result is the outcome of GenerateBom.
type Result struct {
	Manifest   *types.Manifest
	OutputPath string
	Decision   attach.Decision
	Conflicts  []convergence.Conflict
	DryRun     bool

	Collected   int
	Included    int
	Excluded    int
	NotIncluded int
}

// InspectResult is the outcome of InspectGraph.
type InspectResult struct {
	Current     *types.Module
	Modules     int
	Collected   []types.Coordinate
	Kept        []types.Coordinate
	Excluded    []types.Coordinate
	NotIncluded []types.Coordinate
	Conflicts   []convergence.Conflict
}

func fsOrDefault(fs afero.Fs) afero.Fs {
	if fs == nil {
		return afero.NewOsFs()
	}
	return fs
}

func resolvePath(workDir, path string) string {
	if path == "" || filepath.IsAbs(path) || workDir == "" {
		return path
	}
	return filepath.Join(workDir, path)
}

func requireConfig(cfg *config.Config) error {
	if cfg == nil {
		return errors.New(errors.ErrInvalidInput, "configuration is required")
	}
	return nil
}

func loadGraph(fs afero.Fs, cfg *config.Config, workDir string, preloaded *types.ModuleGraph) (*types.ModuleGraph, error) {
	if preloaded != nil {
		if err := graph.Validate(preloaded); err != nil {
			return nil, err
		}
		return preloaded, nil
	}
	return graph.Load(fs, resolvePath(workDir, cfg.Graph.Path))
}

// outputPath resolves where the manifest goes: an absolute filename is used
// as-is, otherwise it is placed in the configured directory, the current
// module's build directory, or DefaultBuildDirectory.
func outputPath(cfg *config.Config, module *types.Module, workDir string) string {
	filename := cfg.Output.Filename
	if filepath.IsAbs(filename) {
		return filename
	}
	dir := cfg.Output.Directory
	if dir == "" && module != nil {
		dir = module.BuildDirectory
	}
	if dir == "" {
		dir = DefaultBuildDirectory
	}
	return resolvePath(workDir, filepath.Join(dir, filename))
}

// recordPath places a relative record file beside the manifest.
func recordPath(cfg *config.Config, manifestPath string) string {
	if cfg.Output.Record == "" || filepath.IsAbs(cfg.Output.Record) {
		return cfg.Output.Record
	}
	return filepath.Join(filepath.Dir(manifestPath), cfg.Output.Record)
}
