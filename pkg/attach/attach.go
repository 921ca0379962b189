// Package attach decides how a generated manifest is registered with the
// host build, and records that registration.
package attach

import (
	"strings"

	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Mode is the kind of registration.
type Mode string

const (
	// ModeNone leaves the manifest as a plain output file.
	ModeNone Mode = "none"
	// ModeClassified attaches the manifest as a secondary artifact.
	ModeClassified Mode = "classified"
	// ModeReplace makes the manifest the module's own document.
	ModeReplace Mode = "replace"
)

// Decision is the outcome of Decide.
type Decision struct {
	Mode       Mode
	Classifier string
}

// Standalone reports whether the manifest will be published as the
// module's own unclassified document.
func (d Decision) Standalone() bool {
	return d.Mode == ModeReplace
}

// Decide validates the attach configuration against the current module.
// It must run before anything is written.
func Decide(attach bool, classifier string, module *types.Module) (Decision, error) {
	if !attach {
		return Decision{Mode: ModeNone}, nil
	}
	if c := strings.TrimSpace(classifier); c != "" {
		return Decision{Mode: ModeClassified, Classifier: c}, nil
	}
	if module != nil && module.IsAggregatorLeaf() {
		return Decision{Mode: ModeReplace}, nil
	}

	err := errors.New(errors.ErrAttachTarget,
		"Cannot replace project POM: invalid project (packaging=pom w/o modules)")
	if module != nil {
		err.WithDetail("module", module.Key()).
			WithDetail("packaging", module.PackagingOrDefault()).
			WithDetail("modules", len(module.Modules))
	}
	return Decision{}, err
}
