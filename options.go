package guibridge

import (
	"log/slog"

	"github.com/go-theft-auto/guibridge/imgui"
	"golang.org/x/image/font/gofont/goregular"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithGUI drives g instead of a renderer-owned imgui.Context.
func WithGUI(g GUI) Option {
	return func(r *Renderer) { r.gui = g }
}

// WithBufferGrowth sets the factor GPU buffers grow by when too small.
// It must be at least 1; the default is DefaultBufferGrowth.
func WithBufferGrowth(f float64) Option {
	return func(r *Renderer) { r.growth = f }
}

// WithFont selects the font rasterised by RebuildFontAtlas.
func WithFont(cfg imgui.FontConfig) Option {
	return func(r *Renderer) { r.fontConfig = &cfg }
}

// WithFontSize keeps the built-in font at a different pixel size.
func WithFontSize(size float64) Option {
	return WithFont(imgui.FontConfig{Name: "Go Regular", Data: goregular.TTF, SizePixels: size})
}
