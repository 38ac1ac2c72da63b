// Package main provides the session-end hook entry point.
//
// Reads the session payload from stdin, extracts facts from the transcript,
// and inserts a learning entry into the project's CLAUDE-learned.md. The
// hook always exits 0 so it can never block a session from ending.
package main

import (
	"io"
	"os"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"

	"github.com/lukaszraczylo/claude-learned/internal/config"
	"github.com/lukaszraczylo/claude-learned/internal/learned"
	"github.com/lukaszraczylo/claude-learned/internal/transcript"
	"github.com/lukaszraczylo/claude-learned/pkg/hooks"
)

const hookName = "SessionEnd"

func main() {
	cleanup := hooks.SetupLogger(hookName, hooks.DebugEnabled(hooks.OSGetenv))
	defer cleanup()

	run(os.Stdin, hooks.OSGetenv, time.Now)
	hooks.WriteResponse(hookName, true)
}

// run executes the hook once. Every failure path returns normally: the
// process contract is exit code 0 no matter what.
func run(stdin io.Reader, getenv hooks.Getenv, now func() time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Msg("Unexpected error")
		}
	}()

	log.Debug().Msg("Hook invoked")

	inputData, err := io.ReadAll(stdin)
	if err != nil {
		log.Warn().Err(err).Msg("Could not read stdin")
		return
	}
	if strings.TrimSpace(string(inputData)) == "" {
		log.Warn().Msg("No session data received")
		return
	}

	var input hooks.Input
	if err := json.Unmarshal(inputData, &input); err != nil {
		log.Warn().Err(err).Msg("Failed to parse session data")
		return
	}

	sessionID := input.SessionID
	if sessionID == "" {
		sessionID = "unknown"
	}
	cwd := input.CWD
	if cwd == "" {
		cwd, _ = os.Getwd()
	}

	projectDir := getenv("CLAUDE_PROJECT_DIR")
	if projectDir == "" {
		projectDir = cwd
	}
	log.Debug().
		Str("project", hooks.ProjectIDWithName(projectDir)).
		Str("session", hooks.ShortSessionID(sessionID)).
		Msg("Resolved project")

	if input.TranscriptPath == "" {
		log.Warn().Msg("No transcript path in session data")
		return
	}
	if _, err := os.Stat(input.TranscriptPath); err != nil {
		log.Warn().Str("path", input.TranscriptPath).Msg("No transcript found")
		return
	}

	cfg := config.Load(projectDir)

	facts := transcript.Extract(input.TranscriptPath, cfg.Keywords)
	entry := learned.FormatEntry(sessionID, input.TranscriptPath, facts, now())

	store := learned.NewStore(projectDir)
	store.FileName = cfg.NoteFile
	if !store.Insert(entry) {
		log.Debug().Msg("Could not write entry")
		return
	}

	log.Info().Msgf("Added learning entry for session %s", hooks.ShortSessionID(sessionID))

	if cfg.AutoCommit {
		if learned.AutoCommit(projectDir, cfg.NoteFile) {
			log.Info().Msg("Auto-committed changes")
		}
	}
}
