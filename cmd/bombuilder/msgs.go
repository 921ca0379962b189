package bombuilder

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Generate a Bill of Materials POM from a multi-module build"
	MsgBuildShort      = "Build and write the BOM"
	MsgInspectShort    = "Show which coordinates the BOM would manage"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Error messages
	MsgErrNoCommand   = "no command specified"
	MsgErrWorkDir     = "failed to determine working directory: %w"
	MsgErrBadPattern  = "invalid pattern %q: want groupId[:artifactId]"
	MsgErrBadFormat   = "invalid --format: %w"
	MsgErrWriteOutput = "failed to write summary: %w"

	// Flag descriptions
	MsgFlagVerbose                 = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDryRun                  = "Build the BOM without writing or attaching it"
	MsgFlagConfig                  = "Config file (default: bombuilder.toml or bombuilder.yaml in --dir)"
	MsgFlagDir                     = "Working directory relative paths are resolved against"
	MsgFlagFormat                  = "Summary format: auto, term or text"
	MsgFlagGraph                   = "Module graph snapshot (.yaml, .json or .toml)"
	MsgFlagGroupID                 = "BOM groupId (default: current module)"
	MsgFlagArtifactID              = "BOM artifactId (default: current module)"
	MsgFlagBomVersion              = "BOM version (default: current module)"
	MsgFlagName                    = "BOM name"
	MsgFlagDescription             = "BOM description"
	MsgFlagClassifier              = "Classifier used when attaching"
	MsgFlagParent                  = "Explicit parent as groupId:artifactId:version"
	MsgFlagUseModuleParent         = "Inherit the current module's parent"
	MsgFlagAttach                  = "Attach the BOM to the current module"
	MsgFlagAddVersionProperties    = "Emit one version property per group"
	MsgFlagUsePropertiesForVersion = "Reference version properties from managed entries"
	MsgFlagModules                 = "Modules' own coordinates: none, current or all"
	MsgFlagDirect                  = "Direct dependencies: none, current or all"
	MsgFlagTransitive              = "Transitive dependencies: none, current or all"
	MsgFlagIncludePoms             = "Keep modules with packaging pom"
	MsgFlagInclude                 = "Only manage groupId[:artifactId] (repeatable, * is a wildcard)"
	MsgFlagExclude                 = "Never manage groupId[:artifactId] (repeatable, * is a wildcard)"
	MsgFlagOutputDir               = "Output directory (default: current module's build directory)"
	MsgFlagFilename                = "Output file name"
	MsgFlagRecord                  = "Attachment record file, relative to the output directory"
)

// Long messages from embedded files
var (
	//go:embed msgs/root-long.txt
	msgRootLongRaw string
	MsgRootLong    = strings.TrimSpace(msgRootLongRaw)

	//go:embed msgs/build-long.txt
	msgBuildLongRaw string
	MsgBuildLong    = strings.TrimSpace(msgBuildLongRaw)

	//go:embed msgs/build-example.txt
	msgBuildExampleRaw string
	MsgBuildExample    = strings.TrimRight(msgBuildExampleRaw, "\n")

	//go:embed msgs/inspect-long.txt
	msgInspectLongRaw string
	MsgInspectLong    = strings.TrimSpace(msgInspectLongRaw)

	//go:embed msgs/completion-long.txt
	msgCompletionLongRaw string
	MsgCompletionLong    = strings.TrimSpace(msgCompletionLongRaw)

	//go:embed msgs/usage-template.txt
	msgUsageTemplateRaw string
	MsgUsageTemplate    = strings.TrimSpace(msgUsageTemplateRaw)
)
