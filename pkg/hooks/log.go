package hooks

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugLogName is the append-only debug log in the system temp directory.
const DebugLogName = "claude-session-end.log"

// DebugEnabled reports whether the debug flag is set in the environment.
// Recognized values are "1" and "true", case-insensitive.
func DebugEnabled(getenv Getenv) bool {
	v := strings.ToLower(getenv("CLAUDE_HOOK_DEBUG"))
	return v == "1" || v == "true"
}

// SetupLogger configures the global zerolog logger for a hook binary:
// human-readable diagnostics on stderr, and when debug is enabled an
// additional JSON stream appended to the temp-directory debug log.
// Returns a cleanup func that closes the debug log file, if any.
func SetupLogger(hookName string, debug bool) func() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	console := zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}
	var writer zerolog.LevelWriter = zerolog.MultiLevelWriter(console)
	cleanup := func() {}

	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		path := filepath.Join(os.TempDir(), DebugLogName)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
		if err == nil {
			writer = zerolog.MultiLevelWriter(console, f)
			cleanup = func() { _ = f.Close() }
		}
		// A failed debug-log open never fails the hook.
	}

	log.Logger = zerolog.New(writer).With().Timestamp().Str("hook", hookName).Logger()
	return cleanup
}
