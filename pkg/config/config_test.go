package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/bombuilder/pkg/collect"
	"github.com/arthur-debert/bombuilder/pkg/config"
	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/testutil"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(config.LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)

	assert.Equal(t, "bom-graph.yaml", cfg.Graph.Path)
	assert.Equal(t, "bom-pom.xml", cfg.Output.Filename)
	assert.Equal(t, "bom-attachments.yaml", cfg.Output.Record)
	assert.Empty(t, cfg.Output.Directory)
	assert.Equal(t, collect.DefaultScopePolicy(), cfg.Scope.Policy())
	assert.False(t, cfg.Bom.Attach)
	assert.False(t, cfg.Bom.AddVersionProperties)
	assert.Empty(t, cfg.Filters.Include)
	assert.Empty(t, cfg.Filters.Exclude)
}

func TestLoad_TOMLFileDiscovered(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bombuilder.toml", `
[bom]
group_id = "org.acme"
artifact_id = "acme-bom"
version = "2.0.0"
classifier = "bom"
add_version_properties = true

[scope]
modules = "current_project"
direct = "reactor"
transitive = "current"
include_poms = true

[[filters.exclude]]
group_id = "org.junit"
artifact_id = "*"

[[filters.include]]
group_id = "org.acme"
artifact_id = "*"

[[filters.exclusions]]
dependency_group_id = "org.acme"
dependency_artifact_id = "core"
exclusion_group_id = "commons-logging"
exclusion_artifact_id = "commons-logging"
`)

	cfg, err := config.Load(config.LoadOptions{WorkDir: dir})
	require.NoError(t, err)

	assert.Equal(t, "org.acme", cfg.Bom.GroupID)
	assert.Equal(t, "acme-bom", cfg.Bom.ArtifactID)
	assert.Equal(t, "2.0.0", cfg.Bom.Version)
	assert.Equal(t, "bom", cfg.Bom.Classifier)
	assert.True(t, cfg.Bom.AddVersionProperties)
	assert.Equal(t, collect.ScopePolicy{
		Modules:     collect.BreadthCurrent,
		Direct:      collect.BreadthAll,
		Transitive:  collect.BreadthCurrent,
		IncludePoms: true,
	}, cfg.Scope.Policy())
	assert.Equal(t, []types.ExclusionRule{{GroupID: "org.junit", ArtifactID: "*"}}, cfg.Filters.Exclude)
	assert.Equal(t, []types.InclusionRule{{GroupID: "org.acme", ArtifactID: "*"}}, cfg.Filters.Include)
	require.Len(t, cfg.Filters.Exclusions, 1)
	assert.Equal(t, "commons-logging", cfg.Filters.Exclusions[0].ExclusionArtifactID)
}

func TestLoad_ExplicitYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "custom.yaml", `
graph:
  path: build/graph.toml
output:
  directory: out
  filename: acme-bom.xml
`)

	cfg, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.NoError(t, err)
	assert.Equal(t, "build/graph.toml", cfg.Graph.Path)
	assert.Equal(t, "out", cfg.Output.Directory)
	assert.Equal(t, "acme-bom.xml", cfg.Output.Filename)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "bombuilder.toml", `
[bom]
classifier = "from-file"
name = "from-file"
version = "1.0"
`)
	t.Setenv("BOMBUILDER_BOM_NAME", "from-env")
	t.Setenv("BOMBUILDER_BOM_VERSION", "2.0")

	cfg, err := config.Load(config.LoadOptions{
		WorkDir:   dir,
		Overrides: map[string]interface{}{"bom.version": "3.0"},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Bom.Classifier)
	assert.Equal(t, "from-env", cfg.Bom.Name)
	assert.Equal(t, "3.0", cfg.Bom.Version)
}

func TestLoad_EnvBooleanAndScope(t *testing.T) {
	t.Setenv("BOMBUILDER_BOM_USE_MODULE_PARENT", "true")
	t.Setenv("BOMBUILDER_SCOPE_TRANSITIVE", "all")

	cfg, err := config.Load(config.LoadOptions{WorkDir: t.TempDir()})
	require.NoError(t, err)
	assert.True(t, cfg.Bom.UseModuleParent)
	assert.Equal(t, collect.BreadthAll, cfg.Scope.Transitive)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		file    string
		code    errors.ErrorCode
	}{
		{
			name:    "bad_scope",
			file:    "bombuilder.toml",
			content: "[scope]\nmodules = \"everything\"\n",
			code:    errors.ErrConfigParse,
		},
		{
			name:    "malformed_toml",
			file:    "bombuilder.toml",
			content: "[bom\n",
			code:    errors.ErrConfigParse,
		},
		{
			name:    "empty_filename",
			file:    "bombuilder.toml",
			content: "[output]\nfilename = \"  \"\n",
			code:    errors.ErrConfigValid,
		},
		{
			name: "incomplete_exclusion_mapping",
			file: "bombuilder.yaml",
			content: `
filters:
  exclusions:
    - dependency_group_id: org.acme
      dependency_artifact_id: core
`,
			code: errors.ErrConfigValid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeConfig(t, dir, tt.file, tt.content)

			_, err := config.Load(config.LoadOptions{WorkDir: dir})
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, tt.code), "got %v", err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(config.LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_UnsupportedExtension(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "bombuilder.ini", "x=1")
	_, err := config.Load(config.LoadOptions{ConfigFile: path})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_DiscoversConfigOnFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFs(t, fs, "/project/.bombuilder.yaml", `
bom:
  classifier: bom
scope:
  direct: all
`)

	cfg, err := config.Load(config.LoadOptions{Fs: fs, WorkDir: "/project"})
	require.NoError(t, err)
	assert.Equal(t, "bom", cfg.Bom.Classifier)
	assert.Equal(t, collect.BreadthAll, cfg.Scope.Direct)

	_, err = config.Load(config.LoadOptions{Fs: fs, ConfigFile: "/project/missing.toml"})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_NoConfigOnFsUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	testutil.WriteFs(t, fs, "/elsewhere/bombuilder.toml", "[bom]\nclassifier = \"x\"\n")

	cfg, err := config.Load(config.LoadOptions{Fs: fs, WorkDir: "/project"})
	require.NoError(t, err)
	assert.Empty(t, cfg.Bom.Classifier)
}
