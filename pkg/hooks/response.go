// Package hooks provides shared plumbing for Claude Code hook binaries.
package hooks

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// Input is the session-end payload Claude Code writes to stdin.
type Input struct {
	SessionID      string `json:"session_id"`
	TranscriptPath string `json:"transcript_path"`
	CWD            string `json:"cwd"`
	HookEventName  string `json:"hook_event_name"`
}

// HookResponse is the response sent back to Claude Code.
type HookResponse struct {
	Continue bool `json:"continue"`
}

// WriteResponse writes a hook response to stdout.
func WriteResponse(hookName string, success bool) {
	response := HookResponse{Continue: success}
	data, _ := json.Marshal(response)
	fmt.Println(string(data))
}

// ProjectIDWithName returns a human-readable project identity for a working
// directory. Format: "dirname_abc123" (name + truncated hash).
func ProjectIDWithName(cwd string) string {
	absPath, err := filepath.Abs(cwd)
	if err != nil {
		absPath = cwd
	}

	dirName := filepath.Base(absPath)
	hash := sha256.Sum256([]byte(absPath))
	shortHash := hex.EncodeToString(hash[:3]) // 6 chars

	return fmt.Sprintf("%s_%s", dirName, shortHash)
}

// ShortSessionID returns the first 8 characters of a session ID for display.
// IDs shorter than 8 characters are returned whole.
func ShortSessionID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

// Getenv is the environment lookup used by hook binaries. Declared as a
// type so the entry point can be driven by tests.
type Getenv func(string) string

// OSGetenv is the production environment lookup.
func OSGetenv(key string) string { return os.Getenv(key) }
