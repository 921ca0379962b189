package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bombuilder/pkg/attach"
	"github.com/arthur-debert/bombuilder/pkg/convergence"
	"github.com/arthur-debert/bombuilder/pkg/core"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAuto, false},
		{"auto", FormatAuto, false},
		{"TERM", FormatTerminal, false},
		{"terminal", FormatTerminal, false},
		{"plain", FormatText, false},
		{"json", FormatAuto, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}
}

func TestNewRenderer_AutoOnBufferIsText(t *testing.T) {
	r := NewRenderer(FormatAuto, &bytes.Buffer{})
	assert.Equal(t, FormatText, r.Format())
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(FormatText, &buf).Render("# Title\n"))
	assert.Equal(t, "# Title\n", buf.String())
}

func TestRender_Terminal(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTerminal, &buf)
	r.Style = "notty"
	require.NoError(t, r.Render("# Title\n\nbody text\n"))
	assert.Contains(t, buf.String(), "Title")
	assert.Contains(t, buf.String(), "body text")
}

func TestBuildSummary(t *testing.T) {
	props := types.NewProperties()
	props.Set("version.org.slf4j", "2.0.9")
	result := &core.Result{
		Manifest: &types.Manifest{
			GroupID: "com.acme", ArtifactID: "acme-bom", Version: "1.0", Packaging: "pom",
			Parent:     &types.ParentRef{GroupID: "com.acme", ArtifactID: "parent", Version: "1.0"},
			Properties: props,
		},
		OutputPath: "target/bom-pom.xml",
		Decision:   attach.Decision{Mode: attach.ModeClassified, Classifier: "bom"},
		Conflicts: []convergence.Conflict{
			{GroupID: "org.slf4j", ArtifactID: "slf4j-api", Versions: []string{"1.7.36", "2.0.9"}},
		},
		Collected: 5, Included: 4, Excluded: 1,
	}

	summary := BuildSummary(result)
	assert.Contains(t, summary, "# BOM com.acme:acme-bom:pom:1.0")
	assert.Contains(t, summary, "Wrote `target/bom-pom.xml`")
	assert.Contains(t, summary, "| managed | 4 |")
	assert.Contains(t, summary, "| properties | 1 |")
	assert.Contains(t, summary, "Parent: `com.acme:parent:1.0`")
	assert.Contains(t, summary, "classifier `bom`")
	assert.Contains(t, summary, "`org.slf4j:slf4j-api`: 1.7.36, 2.0.9")

	result.DryRun = true
	result.Conflicts = nil
	summary = BuildSummary(result)
	assert.Contains(t, summary, "Dry run: would write")
	assert.NotContains(t, summary, "Version conflicts")
}

func TestInspectSummary(t *testing.T) {
	result := &core.InspectResult{
		Modules:  2,
		Current:  &types.Module{GroupID: "com.acme", ArtifactID: "app"},
		Kept:     []types.Coordinate{{GroupID: "com.acme", ArtifactID: "core", Version: "1.0"}},
		Excluded: []types.Coordinate{{GroupID: "org.junit", ArtifactID: "junit", Version: "4.13"}},
	}

	summary := InspectSummary(result)
	assert.Contains(t, summary, "2 modules, current: `com.acme:app`")
	assert.Contains(t, summary, "## Managed (1)")
	assert.Contains(t, summary, "- `com.acme:core:1.0`")
	assert.Contains(t, summary, "## Excluded (1)")
	assert.NotContains(t, summary, "Not included")
}
