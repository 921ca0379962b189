package matchers

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
	"github.com/stretchr/testify/assert"
)

func coord(g, a string) types.Coordinate {
	return types.Coordinate{GroupID: g, ArtifactID: a, Version: "version", Type: "type", Classifier: "classifier", Scope: "scope"}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		name            string
		want            bool
		groupID         string
		artifactID      string
		patternGroup    string
		patternArtifact string
	}{
		{"exact", true, "groupId", "artifactId", "groupId", "artifactId"},
		{"wildcard_group", true, "groupId", "artifactId", "*", "artifactId"},
		{"wildcard_artifact", true, "groupId", "artifactId", "groupId", "*"},
		{"wildcard_both", true, "groupId", "artifactId", "*", "*"},
		{"wildcard_padded", true, "groupId", "artifactId", " * ", " * "},
		{"pattern_padded", true, "groupId", "artifactId", " groupId ", "artifactId\t"},
		{"empty_artifact_pattern", false, "groupId", "otherArtifactId", "groupId", ""},
		{"empty_group_pattern", false, "groupId", "otherArtifactId", "", "artifactId"},
		{"other_artifact", false, "groupId", "otherArtifactId", "groupId", "artifactId"},
		{"other_group", false, "otherGroupId", "artifactId", "groupId", "artifactId"},
		{"other_both", false, "otherGroupId", "otherArtifactId", "groupId", "artifactId"},
		{"empty_matches_empty", true, "", "", "", ""},
		{"wildcard_matches_empty", true, "", "", "*", "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern := types.GroupArtifactPattern{GroupID: tt.patternGroup, ArtifactID: tt.patternArtifact}
			assert.Equal(t, tt.want, Matches(coord(tt.groupID, tt.artifactID), pattern))
		})
	}
}

func TestMatches_IgnoresOtherFields(t *testing.T) {
	coords := []types.Coordinate{
		{GroupID: "g", ArtifactID: "a"},
		{GroupID: "g", ArtifactID: "a", Version: "1", Classifier: "tests", Type: "test-jar", Scope: "test"},
		{GroupID: "g", ArtifactID: "a", Version: "2", Type: "pom"},
	}
	for _, c := range coords {
		assert.True(t, Matches(c, types.GroupArtifactPattern{GroupID: c.GroupID, ArtifactID: c.ArtifactID}), c.String())
	}
}

func TestIsExcluded_WildcardExcludesAll(t *testing.T) {
	rules := []types.ExclusionRule{{GroupID: "*", ArtifactID: "*"}}
	for _, c := range []types.Coordinate{coord("a", "b"), coord("", ""), coord("org.x", "y")} {
		assert.True(t, IsExcluded(c, rules))
	}
}

func TestIsExcluded_EmptyRules(t *testing.T) {
	assert.False(t, IsExcluded(coord("a", "b"), nil))
}

func TestIsIncluded_OptIn(t *testing.T) {
	c := coord("a", "b")

	assert.True(t, IsIncluded(c, nil), "no rules includes everything")
	assert.False(t, IsIncluded(c, []types.InclusionRule{{GroupID: "nothing", ArtifactID: "*"}}))
	assert.True(t, IsIncluded(c, []types.InclusionRule{{GroupID: "nothing", ArtifactID: "*"}, {GroupID: "a", ArtifactID: "*"}}))
}

func TestFilter(t *testing.T) {
	coords := []types.Coordinate{
		coord("org.keep", "one"),
		coord("org.keep", "dropped"),
		coord("org.other", "two"),
	}

	t.Run("no_rules_keeps_all", func(t *testing.T) {
		result := Filter(coords, nil, nil)
		assert.Equal(t, coords, result.Kept)
		assert.Empty(t, result.Excluded)
		assert.Empty(t, result.NotIncluded)
	})

	t.Run("inclusion_before_exclusion", func(t *testing.T) {
		result := Filter(coords,
			[]types.InclusionRule{{GroupID: "org.keep", ArtifactID: "*"}},
			[]types.ExclusionRule{{GroupID: "*", ArtifactID: "dropped"}, {GroupID: "org.other", ArtifactID: "*"}},
		)
		assert.Equal(t, []types.Coordinate{coords[0]}, result.Kept)
		assert.Equal(t, []types.Coordinate{coords[1]}, result.Excluded)
		assert.Equal(t, []types.Coordinate{coords[2]}, result.NotIncluded)
	})

	t.Run("inclusion_matching_nothing", func(t *testing.T) {
		result := Filter(coords, []types.InclusionRule{{GroupID: "none", ArtifactID: "none"}}, nil)
		assert.Empty(t, result.Kept)
		assert.Len(t, result.NotIncluded, 3)
	})
}

func TestMatchLogsRule(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupLoggerWithWriter(2, &buf)
	t.Cleanup(func() { logging.SetupLoggerWithWriter(0, &bytes.Buffer{}) })

	assert.True(t, IsIncluded(coord("org.acme", "core"), []types.InclusionRule{{GroupID: "org.acme", ArtifactID: "*"}}))
	assert.True(t, IsExcluded(coord("org.junit", "junit"), []types.ExclusionRule{{GroupID: "org.junit", ArtifactID: "junit"}}))

	out := buf.String()
	assert.Contains(t, out, "Artifact matches included dependency")
	assert.Contains(t, out, "Artifact matches excluded dependency")
	assert.Contains(t, out, `"component":"matchers"`)
	assert.Contains(t, out, `"rule":"org.junit:junit"`)
}
