package guibridge

import (
	"log/slog"
	"os"

	"github.com/go-theft-auto/guibridge/imgui"
)

// logLevel controls the log level for renderer debug logging.
// Default is LevelInfo, which suppresses Debug messages.
// SetVerbose(true) sets it to LevelDebug.
var logLevel = new(slog.LevelVar)

// defaultLogger is used by renderers created without WithLogger.
var defaultLogger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

// SetVerbose enables or disables debug logging for the renderer and the
// imgui package. Call this from main() after parsing flags.
func SetVerbose(v bool) {
	if v {
		logLevel.Set(slog.LevelDebug)
	} else {
		logLevel.Set(slog.LevelInfo)
	}
	imgui.SetVerbose(v)
}
