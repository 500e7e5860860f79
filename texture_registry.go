package guibridge

import "github.com/go-theft-auto/guibridge/imgui"

// TextureHandle is the opaque id GUI content uses to reference a texture.
type TextureHandle = imgui.TextureID

// TextureRegistry maps handles to textures it does not own.
//
// Handles come from a monotonic counter starting at 1 and are never reused.
// A reverse index keyed by texture identity makes Bind O(1) and guarantees
// that binding the same texture twice yields the same handle.
type TextureRegistry struct {
	textures map[TextureHandle]Texture
	handles  map[Texture]TextureHandle
	next     TextureHandle
}

// NewTextureRegistry creates an empty registry.
func NewTextureRegistry() *TextureRegistry {
	return &TextureRegistry{
		textures: make(map[TextureHandle]Texture),
		handles:  make(map[Texture]TextureHandle),
		next:     1,
	}
}

// Bind returns the handle for tex, registering it if needed.
// A nil texture gets handle 0, which never resolves.
func (r *TextureRegistry) Bind(tex Texture) TextureHandle {
	if tex == nil {
		return 0
	}
	if h, ok := r.handles[tex]; ok {
		return h
	}

	h := r.next
	r.next++
	r.textures[h] = tex
	r.handles[tex] = h
	return h
}

// Unbind forgets a handle. Unknown handles are ignored.
func (r *TextureRegistry) Unbind(h TextureHandle) {
	tex, ok := r.textures[h]
	if !ok {
		return
	}
	delete(r.textures, h)
	delete(r.handles, tex)
}

// Resolve returns the texture for h, or a *TextureNotFoundError.
func (r *TextureRegistry) Resolve(h TextureHandle) (Texture, error) {
	tex, ok := r.textures[h]
	if !ok {
		return nil, &TextureNotFoundError{Handle: h}
	}
	return tex, nil
}

// Len returns the number of bound textures.
func (r *TextureRegistry) Len() int {
	return len(r.textures)
}
