// Package transcript reads Claude Code session transcripts (JSONL) and
// extracts session facts: summaries, topic keywords, tool usage, edited
// files, and git commit messages.
package transcript

import (
	json "github.com/goccy/go-json"
)

// Entry types recognized by the extractors. Lines with any other type
// decode fine but are ignored.
const (
	TypeSummary   = "summary"
	TypeAssistant = "assistant"

	blockText    = "text"
	blockToolUse = "tool_use"
)

// Entry is one transcript line, decoded as a tagged variant on Type.
type Entry struct {
	Type    string  `json:"type"`
	Summary string  `json:"summary"`
	Message Message `json:"message"`
}

// Message carries the content blocks of an assistant entry.
type Message struct {
	Content BlockList `json:"content"`
}

// ContentBlock is one element of an assistant message's content list.
type ContentBlock struct {
	Type  string    `json:"type"`
	Text  string    `json:"text"`
	Name  string    `json:"name"`
	Input ToolInput `json:"input"`
}

// ToolInput holds the tool-call fields the extractors care about.
type ToolInput struct {
	FilePath string `json:"file_path"`
	Command  string `json:"command"`
}

// BlockList decodes a content field that is usually a JSON array of blocks
// but can be a bare string in older transcripts. Non-array content decodes
// to an empty list instead of failing the whole line.
type BlockList []ContentBlock

// UnmarshalJSON implements json.Unmarshaler.
func (b *BlockList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || data[0] != '[' {
		*b = nil
		return nil
	}
	var blocks []ContentBlock
	if err := json.Unmarshal(data, &blocks); err != nil {
		*b = nil
		return nil
	}
	*b = blocks
	return nil
}

// Facts is the aggregate extracted from one transcript.
type Facts struct {
	// Summary is the latest summary entry's text, or a fixed placeholder
	// when the transcript contains none.
	Summary string
	// Topics holds up to 5 matched keywords, in vocabulary order.
	Topics []string
	// Tools maps tool name to invocation count.
	Tools map[string]int
	// FilesEdited and FilesCreated hold sorted unique basenames. A basename
	// that was both written and edited appears only in FilesCreated.
	FilesEdited  []string
	FilesCreated []string
	// Commits holds distinct commit messages in first-seen order.
	Commits []string
}
