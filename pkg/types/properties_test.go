package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperties_InsertionOrder(t *testing.T) {
	props := NewProperties()
	props.Set("project.build.sourceEncoding", "utf-8")
	props.Set("version.org.codehaus.plexus", "1.2.3")

	assert.Equal(t, []string{"project.build.sourceEncoding", "version.org.codehaus.plexus"}, props.Keys())
}

func TestProperties_OverwriteKeepsPosition(t *testing.T) {
	props := NewProperties()
	props.Set("a", "1")
	props.Set("b", "2")
	props.Set("a", "3")

	assert.Equal(t, []string{"a", "b"}, props.Keys())
	v, ok := props.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestProperties_Merge(t *testing.T) {
	src := NewProperties()
	src.Set("project.build.sourceEncoding", "utf-8")

	dst := NewProperties()
	dst.Merge(src)

	assert.Equal(t, src.Len(), dst.Len())
}

func TestProperties_NilSafe(t *testing.T) {
	var props *Properties
	assert.Equal(t, 0, props.Len())
	assert.Nil(t, props.Keys())
	_, ok := props.Get("x")
	assert.False(t, ok)
}
