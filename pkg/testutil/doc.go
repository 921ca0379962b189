// Package testutil provides utilities for testing bombuilder components.
//
// Key components:
//   - GraphBuilder: declarative module graph setup
//   - Coord: terse coordinate construction from "g:a:v" strings
//   - File helpers: temp directories and file assertions on the real
//     filesystem or an afero filesystem
//
// All test data should be defined inline, not in external files.
package testutil
