package guibridge

import (
	"errors"
	"fmt"
)

var (
	// ErrNilHost is returned by New when no host is given.
	ErrNilHost = errors.New("guibridge: host is nil")
	// ErrNilDevice is returned by New when no device is given.
	ErrNilDevice = errors.New("guibridge: device is nil")
	// ErrFrameInProgress is returned by Begin when the previous frame was
	// never ended.
	ErrFrameInProgress = errors.New("guibridge: Begin called while a frame is in progress")
	// ErrNoFrame is returned by End when no frame was begun.
	ErrNoFrame = errors.New("guibridge: End called without Begin")
	// ErrTextureNotFound matches every *TextureNotFoundError.
	ErrTextureNotFound = errors.New("guibridge: texture not found")
)

// TextureNotFoundError reports a draw command or lookup that referenced a
// handle missing from the registry. It means GUI content was built with a
// texture that was never bound, or was unbound too early.
type TextureNotFoundError struct {
	Handle TextureHandle
}

func (e *TextureNotFoundError) Error() string {
	return fmt.Sprintf("guibridge: could not find a texture with handle %d, check your bindings", e.Handle)
}

// Is makes errors.Is(err, ErrTextureNotFound) true.
func (e *TextureNotFoundError) Is(target error) bool {
	return target == ErrTextureNotFound
}
