// Package matchers decides which collected coordinates make it into the
// manifest, using group/artifact wildcard patterns.
package matchers

import (
	"strings"

	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Matches reports whether c matches pattern. Fields are trimmed before
// comparison; a pattern field of "*" matches any value, including empty.
func Matches(c types.Coordinate, pattern types.GroupArtifactPattern) bool {
	return fieldMatches(c.GroupID, pattern.GroupID) &&
		fieldMatches(c.ArtifactID, pattern.ArtifactID)
}

func fieldMatches(actual, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	return pattern == types.Wildcard || strings.TrimSpace(actual) == pattern
}

// IsIncluded reports whether c passes the allow-list. An empty rule set
// includes everything.
func IsIncluded(c types.Coordinate, rules []types.InclusionRule) bool {
	if len(rules) == 0 {
		return true
	}
	rule, ok := firstMatch(c, rules)
	if ok {
		logger := logging.GetLogger("matchers")
		logger.Debug().
			Str("artifact", c.GA()).
			Str("rule", rule.String()).
			Msg("Artifact matches included dependency")
	}
	return ok
}

// IsExcluded reports whether c matches any exclusion rule. An empty rule
// set excludes nothing.
func IsExcluded(c types.Coordinate, rules []types.ExclusionRule) bool {
	rule, ok := firstMatch(c, rules)
	if ok {
		logger := logging.GetLogger("matchers")
		logger.Debug().
			Str("artifact", c.GA()).
			Str("rule", rule.String()).
			Msg("Artifact matches excluded dependency")
	}
	return ok
}

func firstMatch(c types.Coordinate, rules []types.GroupArtifactPattern) (types.GroupArtifactPattern, bool) {
	for _, rule := range rules {
		if Matches(c, rule) {
			return rule, true
		}
	}
	return types.GroupArtifactPattern{}, false
}

// FilterResult holds the outcome of Filter.
type FilterResult struct {
	Kept []types.Coordinate
	// NotIncluded failed the allow-list.
	NotIncluded []types.Coordinate
	// Excluded passed the allow-list but matched an exclusion rule.
	Excluded []types.Coordinate
}

// Filter applies inclusion first, then exclusion, preserving input order.
func Filter(coords []types.Coordinate, include []types.InclusionRule, exclude []types.ExclusionRule) FilterResult {
	var result FilterResult
	for _, c := range coords {
		switch {
		case !IsIncluded(c, include):
			result.NotIncluded = append(result.NotIncluded, c)
		case IsExcluded(c, exclude):
			result.Excluded = append(result.Excluded, c)
		default:
			result.Kept = append(result.Kept, c)
		}
	}
	return result
}
