// Package pom serializes a manifest as a Maven POM document.
//
// Elements are written in the conventional POM order: modelVersion,
// parent, coordinates, packaging, descriptive metadata, properties and
// finally dependencyManagement. Files are written to a temporary sibling
// and renamed into place, so a failed write never leaves a truncated POM
// at the target path.
package pom
