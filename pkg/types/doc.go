// Package types defines the data model shared by every bombuilder stage.
// This includes Coordinate and its identity key, the group/artifact
// patterns used for inclusion and exclusion, the host module graph
// snapshot, and the Manifest produced at the end of a run.
package types
