// Package config provides configuration for the session-end hook.
package config

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/lukaszraczylo/claude-learned/internal/learned"
	"github.com/lukaszraczylo/claude-learned/internal/transcript"
)

// FileName is the optional per-project config file looked up in the target
// directory.
const FileName = ".claude-learned.yaml"

// Config controls the hook's behavior for one project.
type Config struct {
	// NoteFile is the note-store filename inside the project directory.
	NoteFile string `yaml:"note_file"`
	// Keywords overrides the topic vocabulary when non-empty.
	Keywords []string `yaml:"keywords"`
	// AutoCommit opts in to committing the note file after each entry.
	AutoCommit bool `yaml:"auto_commit"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		NoteFile: learned.DefaultNoteFile,
		Keywords: transcript.DefaultKeywords,
	}
}

// Load reads the config file from dir. A missing file yields the defaults;
// a malformed file logs a warning and also yields the defaults, since a bad
// config must never break the hook.
func Load(dir string) *Config {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path) // #nosec G304 -- path is the project's config file
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Str("path", path).Msg("Could not read config")
		}
		return cfg
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Malformed config, using defaults")
		return cfg
	}

	if loaded.NoteFile != "" {
		cfg.NoteFile = loaded.NoteFile
	}
	if len(loaded.Keywords) > 0 {
		cfg.Keywords = loaded.Keywords
	}
	cfg.AutoCommit = loaded.AutoCommit
	return cfg
}
