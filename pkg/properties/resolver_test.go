package properties

import (
	"bytes"
	"testing"

	"github.com/arthur-debert/bombuilder/pkg/logging"
	"github.com/arthur-debert/bombuilder/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestAssignPropertyName_FirstGroupKeepsShortName(t *testing.T) {
	props := types.NewProperties()

	assert.Equal(t, "version.a", AssignPropertyName("a", "x", "1.0", props))
	assert.Equal(t, "version.a.y", AssignPropertyName("a", "y", "2.0", props))

	assert.Equal(t, []string{"version.a", "version.a.y"}, props.Keys())
	v, _ := props.Get("version.a")
	assert.Equal(t, "1.0", v)
	v, _ = props.Get("version.a.y")
	assert.Equal(t, "2.0", v)
}

func TestAssignPropertyName_SameVersionReused(t *testing.T) {
	props := types.NewProperties()

	assert.Equal(t, "version.a", AssignPropertyName("a", "x", "1.0", props))
	assert.Equal(t, "version.a", AssignPropertyName("a", "y", "1.0", props))

	assert.Equal(t, []string{"version.a"}, props.Keys())
}

func TestAssignPropertyName_Groups(t *testing.T) {
	props := types.NewProperties()

	AssignPropertyName("org.b", "x", "1", props)
	AssignPropertyName("org.a", "x", "2", props)

	assert.Equal(t, []string{"version.org.b", "version.org.a"}, props.Keys(), "insertion order, not sorted")
}

func TestAssignPropertyName_FallbackCollisionLastWriteWins(t *testing.T) {
	var buf bytes.Buffer
	logging.SetupLoggerWithWriter(0, &buf)
	t.Cleanup(func() { logging.SetupLoggerWithWriter(0, &bytes.Buffer{}) })
	props := types.NewProperties()

	AssignPropertyName("a", "x", "1.0", props)
	assert.Equal(t, "version.a.x", AssignPropertyName("a", "x", "2.0", props))
	assert.Equal(t, "version.a.x", AssignPropertyName("a", "x", "3.0", props))

	assert.Equal(t, []string{"version.a", "version.a.x"}, props.Keys())
	v, _ := props.Get("version.a.x")
	assert.Equal(t, "3.0", v)

	assert.Contains(t, buf.String(), "Version property already set to a different version, overwriting")
	assert.Contains(t, buf.String(), `"previous":"2.0"`)
}

func TestReference(t *testing.T) {
	assert.Equal(t, "${version.org.slf4j}", Reference("version.org.slf4j"))
}
