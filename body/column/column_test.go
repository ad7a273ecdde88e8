package column

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind_String(t *testing.T) {
	assert.Equal(t, "generic", KindGeneric.String())
	assert.Equal(t, "selection", KindSelection.String())
	assert.Equal(t, "Kind(9)", Kind(9).String())
}

func TestFixed_String(t *testing.T) {
	assert.Equal(t, "", FixedNone.String())
	assert.Equal(t, "left", FixedLeft.String())
	assert.Equal(t, "right", FixedRight.String())
	assert.Equal(t, "Fixed(5)", Fixed(5).String())
}

func TestDescriptor_IsDisabled(t *testing.T) {
	c := Descriptor{Key: "sel", Kind: KindSelection}
	assert.False(t, c.IsDisabled(nil), "absent predicate means not disabled")

	c.Disabled = func(raw any) bool { return raw == "locked" }
	assert.True(t, c.IsDisabled("locked"))
	assert.False(t, c.IsDisabled("open"))
}

func TestDescriptor_IsFixed(t *testing.T) {
	assert.False(t, (&Descriptor{}).IsFixed())
	assert.True(t, (&Descriptor{Fixed: FixedLeft}).IsFixed())
	assert.True(t, (&Descriptor{Fixed: FixedRight}).IsFixed())
}

func TestSelection(t *testing.T) {
	c := Selection("sel")
	assert.Equal(t, KindSelection, c.Kind)
	assert.Equal(t, Key("sel"), c.Key)
}
