package collect

import (
	"fmt"
	"strings"
)

// Breadth says how much of the module graph a selector covers.
type Breadth int

const (
	// BreadthNone selects nothing.
	BreadthNone Breadth = iota
	// BreadthCurrent selects only the current module.
	BreadthCurrent
	// BreadthAll selects every module of the graph.
	BreadthAll
)

// String returns the configuration spelling of b.
func (b Breadth) String() string {
	switch b {
	case BreadthNone:
		return "none"
	case BreadthCurrent:
		return "current"
	case BreadthAll:
		return "all"
	default:
		return fmt.Sprintf("breadth(%d)", int(b))
	}
}

// ParseBreadth accepts none, current, all and the reactor-style aliases
// current_project and reactor, case-insensitively.
func ParseBreadth(s string) (Breadth, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "":
		return BreadthNone, nil
	case "current", "current_project", "current-project":
		return BreadthCurrent, nil
	case "all", "reactor":
		return BreadthAll, nil
	default:
		return BreadthNone, fmt.Errorf("unknown scope breadth %q (want none, current or all)", s)
	}
}

// ScopePolicy picks which coordinates the collector gathers. Each selector
// is independent.
type ScopePolicy struct {
	// Modules selects the modules' own coordinates.
	Modules Breadth
	// Direct selects declared direct dependencies.
	Direct Breadth
	// Transitive selects resolved transitive dependencies.
	Transitive Breadth
	// IncludePoms keeps modules with packaging "pom" when selecting across
	// the whole graph or selecting own coordinates.
	IncludePoms bool
}

// DefaultScopePolicy selects every module's own coordinate and nothing else.
func DefaultScopePolicy() ScopePolicy {
	return ScopePolicy{Modules: BreadthAll}
}
