// Package core wires the bombuilder pipeline together: load the module
// graph, collect and filter coordinates, decide how the result is attached,
// build the manifest, write it and record the attachment.
//
// Commands in cmd/ call GenerateBom and InspectGraph; nothing else in the
// module calls across packages this way.
package core
