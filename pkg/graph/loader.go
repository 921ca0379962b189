// Package graph loads module graph snapshots exported by the host build.
//
// A snapshot lists every module with its own coordinate, declared direct
// dependencies and resolved transitive artifacts. YAML and JSON snapshots
// are decoded with yaml.v3, TOML snapshots with go-toml.
package graph

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Format is a snapshot encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatTOML Format = "toml"
)

// FormatForPath picks the format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported graph snapshot extension %q", filepath.Ext(path))
	}
}

// Load reads and validates the snapshot at path.
func Load(fs afero.Fs, path string) (*types.ModuleGraph, error) {
	logger := logging.GetLogger("graph")

	format, err := FormatForPath(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrGraphLoad, "Unable to load module graph").WithDetail("path", path)
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGraphLoad, "Unable to read module graph %s", path).WithDetail("path", path)
	}

	g, err := Parse(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrGraphParse, "Unable to parse module graph %s", path).WithDetail("path", path)
	}
	if err := Validate(g); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("path", path).
		Str("format", string(format)).
		Int("modules", len(g.Modules)).
		Str("current", g.CurrentKey).
		Msg("Loaded module graph")
	return g, nil
}

// Parse decodes a snapshot. When no current module is named and the graph
// has exactly one module, that module becomes current.
func Parse(data []byte, format Format) (*types.ModuleGraph, error) {
	g := &types.ModuleGraph{}
	switch format {
	case FormatYAML, FormatJSON:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(g); err != nil {
			return nil, err
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		if err := dec.Decode(g); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown graph format %q", format)
	}

	if g.CurrentKey == "" && len(g.Modules) == 1 {
		g.CurrentKey = g.Modules[0].Key()
	}
	for i := range g.Modules {
		defaultTypes(g.Modules[i].Dependencies)
		defaultTypes(g.Modules[i].Artifacts)
	}
	return g, nil
}

// defaultTypes fills unset dependency types the way the host build
// reports them.
func defaultTypes(coords []types.Coordinate) {
	for i := range coords {
		if coords[i].Type == "" {
			coords[i].Type = types.DefaultType
		}
	}
}

// Validate checks that every module is fully identified, that module keys
// are unique and that the current module exists.
func Validate(g *types.ModuleGraph) error {
	seen := make(map[string]bool, len(g.Modules))
	for i, m := range g.Modules {
		if m.GroupID == "" || m.ArtifactID == "" || m.Version == "" {
			return errors.Newf(errors.ErrGraphInvalid,
				"module #%d must have groupId, artifactId and version", i+1).
				WithDetail("module", m.Key())
		}
		if seen[m.Key()] {
			return errors.Newf(errors.ErrGraphInvalid, "module %s listed twice", m.Key())
		}
		seen[m.Key()] = true

		for _, deps := range [][]types.Coordinate{m.Dependencies, m.Artifacts} {
			for _, d := range deps {
				if d.GroupID == "" || d.ArtifactID == "" || d.Version == "" {
					return errors.Newf(errors.ErrGraphInvalid,
						"module %s has a dependency without groupId, artifactId or version", m.Key()).
						WithDetail("dependency", d.String())
				}
			}
		}
	}
	if g.CurrentKey != "" && !seen[g.CurrentKey] {
		return errors.Newf(errors.ErrGraphInvalid, "current module %s is not in the graph", g.CurrentKey)
	}
	return nil
}
