package bombuilder

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/arthur-debert/bombuilder/pkg/types"
)

// configFlags are command flags that override configuration keys. Only
// flags the user actually set are passed on.
type configFlags struct {
	graph string

	groupID, artifactID, bomVersion string
	name, description               string
	classifier, parent              string
	useModuleParent, attach         bool
	addVersionProperties            bool
	usePropertiesForVersion         bool

	modules, direct, transitive string
	includePoms                 bool

	include, exclude []string

	outputDir, filename, record string

	// keys maps flag names to config keys
	keys map[string]string
}

func (f *configFlags) bindScope(fs *pflag.FlagSet) {
	f.bind("graph", "graph.path")
	fs.StringVarP(&f.graph, "graph", "g", "", MsgFlagGraph)

	f.bind("modules", "scope.modules")
	fs.StringVar(&f.modules, "modules", "", MsgFlagModules)
	f.bind("direct", "scope.direct")
	fs.StringVar(&f.direct, "direct", "", MsgFlagDirect)
	f.bind("transitive", "scope.transitive")
	fs.StringVar(&f.transitive, "transitive", "", MsgFlagTransitive)
	f.bind("include-poms", "scope.include_poms")
	fs.BoolVar(&f.includePoms, "include-poms", false, MsgFlagIncludePoms)

	f.bind("include", "filters.include")
	fs.StringArrayVar(&f.include, "include", nil, MsgFlagInclude)
	f.bind("exclude", "filters.exclude")
	fs.StringArrayVar(&f.exclude, "exclude", nil, MsgFlagExclude)
}

func (f *configFlags) bindBom(fs *pflag.FlagSet) {
	f.bind("group-id", "bom.group_id")
	fs.StringVar(&f.groupID, "group-id", "", MsgFlagGroupID)
	f.bind("artifact-id", "bom.artifact_id")
	fs.StringVar(&f.artifactID, "artifact-id", "", MsgFlagArtifactID)
	f.bind("bom-version", "bom.version")
	fs.StringVar(&f.bomVersion, "bom-version", "", MsgFlagBomVersion)
	f.bind("name", "bom.name")
	fs.StringVar(&f.name, "name", "", MsgFlagName)
	f.bind("description", "bom.description")
	fs.StringVar(&f.description, "description", "", MsgFlagDescription)
	f.bind("classifier", "bom.classifier")
	fs.StringVar(&f.classifier, "classifier", "", MsgFlagClassifier)
	f.bind("parent", "bom.parent")
	fs.StringVar(&f.parent, "parent", "", MsgFlagParent)
	f.bind("use-module-parent", "bom.use_module_parent")
	fs.BoolVar(&f.useModuleParent, "use-module-parent", false, MsgFlagUseModuleParent)
	f.bind("attach", "bom.attach")
	fs.BoolVar(&f.attach, "attach", false, MsgFlagAttach)
	f.bind("add-version-properties", "bom.add_version_properties")
	fs.BoolVar(&f.addVersionProperties, "add-version-properties", false, MsgFlagAddVersionProperties)
	f.bind("use-properties-for-version", "bom.use_properties_for_version")
	fs.BoolVar(&f.usePropertiesForVersion, "use-properties-for-version", false, MsgFlagUsePropertiesForVersion)

	f.bind("output-dir", "output.directory")
	fs.StringVarP(&f.outputDir, "output-dir", "o", "", MsgFlagOutputDir)
	f.bind("filename", "output.filename")
	fs.StringVar(&f.filename, "filename", "", MsgFlagFilename)
	f.bind("record", "output.record")
	fs.StringVar(&f.record, "record", "", MsgFlagRecord)
}

func (f *configFlags) bind(flag, key string) {
	if f.keys == nil {
		f.keys = make(map[string]string)
	}
	f.keys[flag] = key
}

// overrides returns the changed flags keyed by config path.
func (f *configFlags) overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	out := make(map[string]interface{})
	var firstErr error
	cmd.Flags().Visit(func(fl *pflag.Flag) {
		key, ok := f.keys[fl.Name]
		if !ok || firstErr != nil {
			return
		}
		switch fl.Name {
		case "include", "exclude":
			values := f.include
			if fl.Name == "exclude" {
				values = f.exclude
			}
			patterns, err := patternOverrides(values)
			if err != nil {
				firstErr = err
				return
			}
			out[key] = patterns
		default:
			if fl.Value.Type() == "bool" {
				out[key] = fl.Value.String() == "true"
			} else {
				out[key] = fl.Value.String()
			}
		}
	})
	if firstErr != nil {
		return nil, firstErr
	}
	return out, nil
}

// patternOverrides turns "g[:a]" values into config list entries.
func patternOverrides(values []string) ([]interface{}, error) {
	out := make([]interface{}, 0, len(values))
	for _, v := range values {
		p, err := parsePattern(v)
		if err != nil {
			return nil, err
		}
		out = append(out, map[string]interface{}{
			"group_id":    p.GroupID,
			"artifact_id": p.ArtifactID,
		})
	}
	return out, nil
}

func parsePattern(s string) (types.GroupArtifactPattern, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) > 2 || parts[0] == "" {
		return types.GroupArtifactPattern{}, fmt.Errorf(MsgErrBadPattern, s)
	}
	p := types.GroupArtifactPattern{GroupID: parts[0], ArtifactID: types.Wildcard}
	if len(parts) == 2 && parts[1] != "" {
		p.ArtifactID = parts[1]
	}
	return p, nil
}
