// Package properties names the version properties of a manifest.
//
// Every group gets a "version.<groupId>" property. When two artifacts of
// one group carry different versions, the later one (in manifest order)
// falls back to "version.<groupId>.<artifactId>".
package properties

import (
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Prefix starts every generated property name.
const Prefix = "version."

// AssignPropertyName returns the property carrying version for the given
// artifact, recording it in props.
//
// A fallback name that is already taken with a different version is
// overwritten; the last write wins and a warning is logged.
func AssignPropertyName(groupID, artifactID, version string, props *types.Properties) string {
	name := Prefix + groupID
	existing, ok := props.Get(name)
	if !ok {
		props.Set(name, version)
		return name
	}
	if existing == version {
		return name
	}

	fallback := Prefix + groupID + "." + artifactID
	if previous, taken := props.Get(fallback); taken && previous != version {
		logger := logging.GetLogger("properties")
		logger.Warn().
			Str("property", fallback).
			Str("previous", previous).
			Str("version", version).
			Msg("Version property already set to a different version, overwriting")
	}
	props.Set(fallback, version)
	return fallback
}

// Reference returns the "${name}" expression for a property.
func Reference(name string) string {
	return "${" + name + "}"
}
