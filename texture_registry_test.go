package guibridge_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/guibridge"
	"github.com/go-theft-auto/guibridge/backend/recording"
)

func TestTextureRegistryBind(t *testing.T) {
	reg := guibridge.NewTextureRegistry()
	a := &recording.Texture{ID: 1, Width: 2, Height: 2}
	b := &recording.Texture{ID: 2, Width: 2, Height: 2}

	ha := reg.Bind(a)
	assert.NotZero(t, ha)
	assert.Equal(t, ha, reg.Bind(a), "binding twice returns the same handle")

	hb := reg.Bind(b)
	assert.NotEqual(t, ha, hb)
	assert.Equal(t, 2, reg.Len())

	tex, err := reg.Resolve(hb)
	require.NoError(t, err)
	assert.Same(t, b, tex)
}

func TestTextureRegistryUnbind(t *testing.T) {
	reg := guibridge.NewTextureRegistry()
	a := &recording.Texture{ID: 1}

	h := reg.Bind(a)
	reg.Unbind(h)
	assert.Zero(t, reg.Len())

	_, err := reg.Resolve(h)
	assert.ErrorIs(t, err, guibridge.ErrTextureNotFound)

	var nf *guibridge.TextureNotFoundError
	require.True(t, errors.As(err, &nf))
	assert.Equal(t, h, nf.Handle)
	assert.Contains(t, err.Error(), "check your bindings")

	again := reg.Bind(a)
	assert.NotEqual(t, h, again, "handles are never reused")

	reg.Unbind(h) // unknown handles are ignored
	assert.Equal(t, 1, reg.Len())
}

func TestTextureRegistryNil(t *testing.T) {
	reg := guibridge.NewTextureRegistry()
	assert.Zero(t, reg.Bind(nil))
	assert.Zero(t, reg.Len())

	_, err := reg.Resolve(0)
	assert.ErrorIs(t, err, guibridge.ErrTextureNotFound)
}
