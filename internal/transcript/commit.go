package transcript

import (
	"regexp"
	"strings"
)

// CommitMessageSentinel is returned when neither heuristic matches.
const CommitMessageSentinel = "(commit message not parsed)"

// commitMessageMax caps extracted commit messages at 60 characters.
const commitMessageMax = 60

// Heredoc form must be tried before the quoted form: a heredoc commit
// usually also contains -m "$(cat ...)" which the quoted pattern would
// misparse. The capture ends at a Co-Authored trailer or the closing EOF,
// whichever comes first.
var (
	heredocRe = regexp.MustCompile(`(?s)<<'?EOF'?\n(.+?)(?:\n\s*Co-Authored|\nEOF)`)
	quotedRe  = regexp.MustCompile(`-m\s+["']([^"']+)["']`)
)

// CommitMessage extracts a commit message from a git commit command string.
// This is a heuristic, not a shell parser; escaped quotes and nested
// commands may misparse. Unmatched input returns CommitMessageSentinel.
func CommitMessage(cmd string) string {
	if m := heredocRe.FindStringSubmatch(cmd); m != nil {
		body := strings.TrimSpace(m[1])
		first, _, _ := strings.Cut(body, "\n")
		return truncateRunes(first, commitMessageMax)
	}

	if m := quotedRe.FindStringSubmatch(cmd); m != nil {
		return truncateRunes(m[1], commitMessageMax)
	}

	return CommitMessageSentinel
}

func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
