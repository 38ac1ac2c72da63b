// Package learned renders session facts into markdown entries and maintains
// the CLAUDE-learned.md note store.
package learned

import (
	"fmt"
	"strings"
	"time"

	"github.com/lukaszraczylo/claude-learned/internal/transcript"
	"github.com/lukaszraczylo/claude-learned/pkg/hooks"
)

// mcpPrefix marks tools routed through MCP servers; they are aggregated
// into a single count in the tools summary.
const mcpPrefix = "mcp__"

// priorityTools are the core tools listed by name, in display order.
var priorityTools = []string{"Edit", "Write", "Read", "Bash", "Glob", "Grep", "Task"}

// Display caps for the files and commits lines.
const (
	maxEditedShown  = 5
	maxCreatedShown = 3
	maxCommitsShown = 3
)

// ToolsSummary formats a tool tally into a compact string like
// "Edit(2), Write(1), MCP(3)". An empty tally yields "none"; a tally where
// no priority tool or MCP tool appears yields "minimal".
func ToolsSummary(tools map[string]int) string {
	if len(tools) == 0 {
		return "none"
	}

	mcpCount := 0
	for name, count := range tools {
		if strings.HasPrefix(name, mcpPrefix) {
			mcpCount += count
		}
	}

	var parts []string
	for _, name := range priorityTools {
		if count, ok := tools[name]; ok {
			parts = append(parts, fmt.Sprintf("%s(%d)", name, count))
		}
	}
	if mcpCount > 0 {
		parts = append(parts, fmt.Sprintf("MCP(%d)", mcpCount))
	}

	if len(parts) == 0 {
		return "minimal"
	}
	return strings.Join(parts, ", ")
}

// FormatEntry renders the markdown block appended to the note store.
// Optional lines (files, commits, tools) are omitted entirely when empty.
func FormatEntry(sessionID, transcriptPath string, facts transcript.Facts, now time.Time) string {
	timestamp := now.Format("2006-01-02 15:04")

	topics := "general work"
	if len(facts.Topics) > 0 {
		topics = strings.Join(facts.Topics, ", ")
	}

	lines := []string{
		"",
		fmt.Sprintf("### %s - Session `%s...`", timestamp, hooks.ShortSessionID(sessionID)),
		"",
		fmt.Sprintf("**Topics**: %s", topics),
	}

	var files []string
	for _, f := range capSlice(facts.FilesEdited, maxEditedShown) {
		files = append(files, fmt.Sprintf("`%s`", f))
	}
	for _, f := range capSlice(facts.FilesCreated, maxCreatedShown) {
		files = append(files, fmt.Sprintf("`%s` (new)", f))
	}
	if len(files) > 0 {
		lines = append(lines, fmt.Sprintf("**Files**: %s", strings.Join(files, ", ")))
	}

	if len(facts.Commits) > 0 {
		var quoted []string
		for _, c := range capSlice(facts.Commits, maxCommitsShown) {
			quoted = append(quoted, `"`+c+`"`)
		}
		lines = append(lines, fmt.Sprintf("**Commits**: %s", strings.Join(quoted, "; ")))
	}

	if summary := ToolsSummary(facts.Tools); summary != "none" {
		lines = append(lines, fmt.Sprintf("**Tools**: %s", summary))
	}

	lines = append(lines,
		"",
		fmt.Sprintf("**Summary**: %s", facts.Summary),
		"",
		fmt.Sprintf("**Transcript**: `%s`", transcriptPath),
		"",
		"---",
		"",
	)

	return strings.Join(lines, "\n")
}

func capSlice(s []string, max int) []string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
