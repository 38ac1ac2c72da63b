package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lukaszraczylo/claude-learned/internal/learned"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)
}

// envFor returns a getenv that routes the hook at projectDir.
func envFor(projectDir string) func(string) string {
	return func(key string) string {
		if key == "CLAUDE_PROJECT_DIR" {
			return projectDir
		}
		return ""
	}
}

func seedNoteStore(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, learned.DefaultNoteFile)
	require.NoError(t, os.WriteFile(path, []byte("# Learned\n\n"+learned.Marker+"\n"), 0o644))
	return path
}

func readNoteStore(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestRun_EmptyStdin(t *testing.T) {
	dir := t.TempDir()
	path := seedNoteStore(t, dir)
	before := readNoteStore(t, path)

	run(strings.NewReader("   \n"), envFor(dir), fixedNow)

	assert.Equal(t, before, readNoteStore(t, path))
}

func TestRun_MalformedPayload(t *testing.T) {
	dir := t.TempDir()
	path := seedNoteStore(t, dir)
	before := readNoteStore(t, path)

	run(strings.NewReader("{not json"), envFor(dir), fixedNow)

	assert.Equal(t, before, readNoteStore(t, path))
}

func TestRun_MissingTranscript(t *testing.T) {
	dir := t.TempDir()
	path := seedNoteStore(t, dir)
	before := readNoteStore(t, path)

	payload := `{"session_id":"` + uuid.NewString() + `","transcript_path":"` +
		filepath.Join(dir, "gone.jsonl") + `","cwd":"` + dir + `"}`
	run(strings.NewReader(payload), envFor(dir), fixedNow)

	assert.Equal(t, before, readNoteStore(t, path))
}

func TestRun_WritesEntry(t *testing.T) {
	dir := t.TempDir()
	notePath := seedNoteStore(t, dir)

	transcriptPath := filepath.Join(dir, "transcript.jsonl")
	lines := []string{
		`{"type":"summary","summary":"Fixed the login flow"}`,
		`{"type":"assistant","message":{"content":[{"type":"text","text":"let me fix and test this"}]}}`,
		`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Edit","input":{"file_path":"/src/a.py"}}]}}`,
		`{"type":"assistant","message":{"content":[{"type":"tool_use","name":"Bash","input":{"command":"git commit -m \"init\""}}]}}`,
	}
	require.NoError(t, os.WriteFile(transcriptPath, []byte(strings.Join(lines, "\n")+"\n"), 0o644))

	sessionID := uuid.NewString()
	payload := `{"session_id":"` + sessionID + `","transcript_path":"` + transcriptPath + `","cwd":"` + dir + `"}`
	run(strings.NewReader(payload), envFor(dir), fixedNow)

	got := readNoteStore(t, notePath)
	assert.Contains(t, got, "### 2026-08-29 14:30 - Session `"+sessionID[:8]+"...`")
	assert.Contains(t, got, "**Topics**: fix, test")
	assert.Contains(t, got, "**Files**: `a.py`")
	assert.Contains(t, got, "**Commits**: \"init\"")
	assert.Contains(t, got, "**Tools**: Edit(1), Bash(1)")
	assert.Contains(t, got, "**Summary**: Fixed the login flow")
	assert.Contains(t, got, "**Transcript**: `"+transcriptPath+"`")

	// Entry sits immediately after the marker.
	markerIdx := strings.Index(got, learned.Marker)
	require.GreaterOrEqual(t, markerIdx, 0)
	after := got[markerIdx+len(learned.Marker):]
	assert.True(t, strings.HasPrefix(after, "\n### 2026-08-29"))
}

func TestRun_MissingNoteStoreIsNotFatal(t *testing.T) {
	dir := t.TempDir()

	transcriptPath := filepath.Join(dir, "transcript.jsonl")
	require.NoError(t, os.WriteFile(transcriptPath, []byte(`{"type":"summary","summary":"x"}`+"\n"), 0o644))

	payload := `{"session_id":"` + uuid.NewString() + `","transcript_path":"` + transcriptPath + `","cwd":"` + dir + `"}`
	// No CLAUDE-learned.md in dir; run must return normally.
	run(strings.NewReader(payload), envFor(dir), fixedNow)
}

func TestRun_ConfigAppliesNoteFileOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".claude-learned.yaml"), []byte("note_file: NOTES.md\n"), 0o644))

	notePath := filepath.Join(dir, "NOTES.md")
	require.NoError(t, os.WriteFile(notePath, []byte(learned.Marker+"\n"), 0o644))

	transcriptPath := filepath.Join(dir, "transcript.jsonl")
	require.NoError(t, os.WriteFile(transcriptPath, []byte(`{"type":"summary","summary":"custom store"}`+"\n"), 0o644))

	payload := `{"session_id":"` + uuid.NewString() + `","transcript_path":"` + transcriptPath + `","cwd":"` + dir + `"}`
	run(strings.NewReader(payload), envFor(dir), fixedNow)

	assert.Contains(t, readNoteStore(t, notePath), "**Summary**: custom store")
}
