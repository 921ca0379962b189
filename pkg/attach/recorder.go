package attach

import (
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/bombuilder/pkg/errors"
	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
)

// Recorder registers a written manifest with the host build session.
type Recorder interface {
	Record(decision Decision, manifest types.Coordinate, module *types.Module, file string) error
}

// Attachment is a secondary artifact of a module.
type Attachment struct {
	GroupID    string `yaml:"groupId"`
	ArtifactID string `yaml:"artifactId"`
	Version    string `yaml:"version"`
	Type       string `yaml:"type"`
	Classifier string `yaml:"classifier"`
	File       string `yaml:"file"`
}

// Replacement swaps a module's own document for another file.
type Replacement struct {
	Module string `yaml:"module"`
	File   string `yaml:"file"`
}

// Record is the attachment record file the host reads back.
type Record struct {
	Attachments  []Attachment  `yaml:"attachments,omitempty"`
	Replacements []Replacement `yaml:"replacements,omitempty"`
}

// FileRecorder keeps the session record in a YAML file. Entries for the
// same artifact or module replace earlier ones.
type FileRecorder struct {
	fs   afero.Fs
	path string
}

// NewFileRecorder returns a recorder writing to path on fs.
func NewFileRecorder(fs afero.Fs, path string) *FileRecorder {
	return &FileRecorder{fs: fs, path: path}
}

// Path returns the record file location.
func (r *FileRecorder) Path() string {
	return r.path
}

// Record implements Recorder.
func (r *FileRecorder) Record(decision Decision, manifest types.Coordinate, module *types.Module, file string) error {
	logger := logging.GetLogger("attach")
	if decision.Mode == ModeNone {
		return nil
	}

	rec, err := r.Load()
	if err != nil {
		return err
	}

	switch decision.Mode {
	case ModeClassified:
		logger.Debug().Str("classifier", decision.Classifier).Msg("Attaching BOM w/ classifier")
		rec.addAttachment(Attachment{
			GroupID:    manifest.GroupID,
			ArtifactID: manifest.ArtifactID,
			Version:    manifest.Version,
			Type:       types.PackagingPom,
			Classifier: decision.Classifier,
			File:       file,
		})
	case ModeReplace:
		logger.Debug().Str("module", module.Key()).Msg("Replacing module POM w/ generated BOM")
		rec.addReplacement(Replacement{Module: module.Key(), File: file})
	}

	return r.save(rec)
}

// Load reads the current record; a missing file is an empty record.
func (r *FileRecorder) Load() (*Record, error) {
	rec := &Record{}
	exists, err := afero.Exists(r.fs, r.path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrAttachRecord, "Unable to read attachment record").WithDetail("path", r.path)
	}
	if !exists {
		return rec, nil
	}
	data, err := afero.ReadFile(r.fs, r.path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrAttachRecord, "Unable to read attachment record").WithDetail("path", r.path)
	}
	if err := yaml.Unmarshal(data, rec); err != nil {
		return nil, errors.Wrap(err, errors.ErrAttachRecord, "Unable to parse attachment record").WithDetail("path", r.path)
	}
	return rec, nil
}

func (r *FileRecorder) save(rec *Record) error {
	data, err := yaml.Marshal(rec)
	if err != nil {
		return errors.Wrap(err, errors.ErrAttachRecord, "Unable to encode attachment record")
	}
	if err := r.fs.MkdirAll(filepath.Dir(r.path), 0755); err != nil {
		return errors.Wrap(err, errors.ErrAttachRecord, "Unable to create attachment record directory").WithDetail("path", r.path)
	}
	if err := afero.WriteFile(r.fs, r.path, data, 0644); err != nil {
		return errors.Wrap(err, errors.ErrAttachRecord, "Unable to write attachment record").WithDetail("path", r.path)
	}
	return nil
}

func (rec *Record) addAttachment(a Attachment) {
	for i, existing := range rec.Attachments {
		if existing.GroupID == a.GroupID && existing.ArtifactID == a.ArtifactID &&
			existing.Version == a.Version && existing.Classifier == a.Classifier {
			rec.Attachments[i] = a
			return
		}
	}
	rec.Attachments = append(rec.Attachments, a)
}

func (rec *Record) addReplacement(r Replacement) {
	for i, existing := range rec.Replacements {
		if existing.Module == r.Module {
			rec.Replacements[i] = r
			return
		}
	}
	rec.Replacements = append(rec.Replacements, r)
}
