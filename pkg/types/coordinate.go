package types

import (
	"fmt"
	"sort"
	"strings"
)

// PackagingPom is the packaging (and artifact type) of aggregator modules
// and of the generated manifest itself.
const PackagingPom = "pom"

// DefaultType is the artifact type assumed when none is given.
const DefaultType = "jar"

// ScopeTest marks coordinates that only exist on the test classpath.
const ScopeTest = "test"

// Coordinate identifies a single dependency artifact.
type Coordinate struct {
	GroupID    string `yaml:"groupId" toml:"groupId"`
	ArtifactID string `yaml:"artifactId" toml:"artifactId"`
	Version    string `yaml:"version" toml:"version"`
	Classifier string `yaml:"classifier,omitempty" toml:"classifier,omitempty"`
	Type       string `yaml:"type,omitempty" toml:"type,omitempty"`
	// Scope is informational only and is not part of the identity.
	Scope string `yaml:"scope,omitempty" toml:"scope,omitempty"`
}

// CoordinateKey is the identity of a Coordinate for deduplication.
type CoordinateKey struct {
	GroupID    string
	ArtifactID string
	Version    string
	Classifier string
	Type       string
}

// Key returns the identity tuple of c. An empty type is the same
// artifact as DefaultType.
func (c Coordinate) Key() CoordinateKey {
	return CoordinateKey{
		GroupID:    c.GroupID,
		ArtifactID: c.ArtifactID,
		Version:    c.Version,
		Classifier: c.Classifier,
		Type:       c.TypeOrDefault(),
	}
}

// TypeOrDefault returns the type, DefaultType when unset.
func (c Coordinate) TypeOrDefault() string {
	if c.Type == "" {
		return DefaultType
	}
	return c.Type
}

// GA returns "groupId:artifactId".
func (c Coordinate) GA() string {
	return c.GroupID + ":" + c.ArtifactID
}

// IsPom reports whether the coordinate has packaging/type "pom".
func (c Coordinate) IsPom() bool {
	return c.Type == PackagingPom
}

// String renders the coordinate as g:a[:type[:classifier]]:v
func (c Coordinate) String() string {
	parts := []string{c.GroupID, c.ArtifactID}
	if c.Type != "" || c.Classifier != "" {
		parts = append(parts, c.Type)
	}
	if c.Classifier != "" {
		parts = append(parts, c.Classifier)
	}
	parts = append(parts, c.Version)
	return strings.Join(parts, ":")
}

// Compare orders coordinates lexicographically by
// (groupId, artifactId, version, classifier, type).
func Compare(a, b Coordinate) int {
	fields := [][2]string{
		{a.GroupID, b.GroupID},
		{a.ArtifactID, b.ArtifactID},
		{a.Version, b.Version},
		{a.Classifier, b.Classifier},
		{a.TypeOrDefault(), b.TypeOrDefault()},
	}
	for _, f := range fields {
		if c := strings.Compare(f[0], f[1]); c != 0 {
			return c
		}
	}
	return 0
}

// SortCoordinates sorts in place using Compare.
func SortCoordinates(coords []Coordinate) {
	sort.SliceStable(coords, func(i, j int) bool {
		return Compare(coords[i], coords[j]) < 0
	})
}

// CoordinateSet is a set of coordinates keyed by identity. The first
// coordinate added for a key is the one kept.
type CoordinateSet struct {
	items map[CoordinateKey]Coordinate
}

// NewCoordinateSet creates an empty set.
func NewCoordinateSet() *CoordinateSet {
	return &CoordinateSet{items: make(map[CoordinateKey]Coordinate)}
}

// Add inserts c unless a coordinate with the same identity is present.
// It reports whether c was inserted.
func (s *CoordinateSet) Add(c Coordinate) bool {
	if s.items == nil {
		s.items = make(map[CoordinateKey]Coordinate)
	}
	key := c.Key()
	if _, exists := s.items[key]; exists {
		return false
	}
	s.items[key] = c
	return true
}

// AddAll inserts every coordinate in coords.
func (s *CoordinateSet) AddAll(coords []Coordinate) {
	for _, c := range coords {
		s.Add(c)
	}
}

// Contains reports whether a coordinate with the identity of c is present.
func (s *CoordinateSet) Contains(c Coordinate) bool {
	_, ok := s.items[c.Key()]
	return ok
}

// Len returns the number of distinct coordinates.
func (s *CoordinateSet) Len() int {
	return len(s.items)
}

// Sorted returns the members ordered by Compare.
func (s *CoordinateSet) Sorted() []Coordinate {
	out := make([]Coordinate, 0, len(s.items))
	for _, c := range s.items {
		out = append(out, c)
	}
	SortCoordinates(out)
	return out
}

// ParseCoordinate parses "g:a:v", "g:a:type:v" or "g:a:type:classifier:v".
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return Coordinate{}, fmt.Errorf("invalid coordinate %q: empty segment", s)
		}
	}
	switch len(parts) {
	case 3:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Version: parts[2]}, nil
	case 4:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Type: parts[2], Version: parts[3]}, nil
	case 5:
		return Coordinate{GroupID: parts[0], ArtifactID: parts[1], Type: parts[2], Classifier: parts[3], Version: parts[4]}, nil
	default:
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: expected 3 to 5 segments, got %d", s, len(parts))
	}
}
