package core

import (
	"github.com/arthur-debert/bombuilder/pkg/collect"
	"github.com/arthur-debert/bombuilder/pkg/convergence"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/matchers"
)

// InspectGraph collects and filters without building or writing anything.
func InspectGraph(opts InspectGraphOptions) (*InspectResult, error) {
	logger := logging.GetLogger("core.inspect")
	defer logging.LogOperationStart(logger, "InspectGraph")()

	if err := requireConfig(opts.Config); err != nil {
		return nil, err
	}
	cfg := opts.Config

	g, err := loadGraph(fsOrDefault(opts.Fs), cfg, opts.WorkDir, opts.Graph)
	if err != nil {
		return nil, err
	}

	collected := collect.Collect(g, cfg.Scope.Policy()).Sorted()
	filtered := matchers.Filter(collected, cfg.Filters.Include, cfg.Filters.Exclude)

	return &InspectResult{
		Current:     g.Current(),
		Modules:     len(g.Modules),
		Collected:   collected,
		Kept:        filtered.Kept,
		Excluded:    filtered.Excluded,
		NotIncluded: filtered.NotIncluded,
		Conflicts:   convergence.Analyze(filtered.Kept),
	}, nil
}
