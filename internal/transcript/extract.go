package transcript

import (
	"path/filepath"
	"sort"
	"strings"
)

// PlaceholderSummary is surfaced when a transcript contains no summary entry.
const PlaceholderSummary = "Session completed (no summary available)"

// DefaultKeywords is the topic vocabulary, in output order.
var DefaultKeywords = []string{
	"implement",
	"fix",
	"create",
	"update",
	"refactor",
	"add",
	"remove",
	"debug",
	"test",
	"deploy",
	"configure",
	"optimize",
	"migrate",
}

// maxTopics caps the number of topics surfaced per session.
const maxTopics = 5

// LatestSummary scans the transcript for summary entries and returns the
// text of the last one in file order, or PlaceholderSummary when none exist.
func LatestSummary(path string) string {
	summary := PlaceholderSummary
	scanEntries(path, func(e Entry) {
		if e.Type == TypeSummary && e.Summary != "" {
			summary = e.Summary
		}
	})
	return summary
}

// Topics scans assistant text blocks for keyword mentions. Results are
// deduplicated, capped at 5, and emitted in vocabulary order so the output
// is deterministic across runs.
func Topics(path string, keywords []string) []string {
	if len(keywords) == 0 {
		keywords = DefaultKeywords
	}

	seen := make(map[string]bool, len(keywords))
	scanEntries(path, func(e Entry) {
		if e.Type != TypeAssistant {
			return
		}
		for _, block := range e.Message.Content {
			if block.Type != blockText {
				continue
			}
			text := strings.ToLower(block.Text)
			for _, kw := range keywords {
				if strings.Contains(text, kw) {
					seen[kw] = true
				}
			}
		}
	})

	var topics []string
	for _, kw := range keywords {
		if seen[kw] {
			topics = append(topics, kw)
			if len(topics) == maxTopics {
				break
			}
		}
	}
	return topics
}

// ToolUsage scans assistant tool_use blocks and tallies tool invocations,
// file operations, and git commit messages.
func ToolUsage(path string) (tools map[string]int, edited, created, commits []string) {
	tools = make(map[string]int)
	editedSet := make(map[string]bool)
	createdSet := make(map[string]bool)
	seenCommit := make(map[string]bool)

	scanEntries(path, func(e Entry) {
		if e.Type != TypeAssistant {
			return
		}
		for _, block := range e.Message.Content {
			if block.Type != blockToolUse {
				continue
			}
			tools[block.Name]++

			switch block.Name {
			case "Write":
				if fp := block.Input.FilePath; fp != "" {
					createdSet[filepath.Base(fp)] = true
				}
			case "Edit":
				if fp := block.Input.FilePath; fp != "" {
					editedSet[filepath.Base(fp)] = true
				}
			case "Bash":
				cmd := block.Input.Command
				if strings.Contains(cmd, "git commit") && strings.Contains(cmd, "-m") {
					msg := CommitMessage(cmd)
					if msg != "" && !seenCommit[msg] {
						seenCommit[msg] = true
						commits = append(commits, msg)
					}
				}
			}
		}
	})

	// A file that was written wins over edits to the same basename.
	for name := range createdSet {
		delete(editedSet, name)
	}

	edited = sortedKeys(editedSet)
	created = sortedKeys(createdSet)
	return tools, edited, created, commits
}

// Extract runs all three passes over the transcript and assembles the facts.
func Extract(path string, keywords []string) Facts {
	tools, edited, created, commits := ToolUsage(path)
	return Facts{
		Summary:      LatestSummary(path),
		Topics:       Topics(path, keywords),
		Tools:        tools,
		FilesEdited:  edited,
		FilesCreated: created,
		Commits:      commits,
	}
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
