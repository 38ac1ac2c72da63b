package learned

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// Marker is the literal line in the note store after which new entries are
// inserted, keeping the file most-recent-first.
const Marker = "<!-- New entries are prepended below this line -->"

// DefaultNoteFile is the note-store filename looked up in the project dir.
const DefaultNoteFile = "CLAUDE-learned.md"

// Store locates the note file inside Dir and inserts entries at the marker.
type Store struct {
	Dir      string
	FileName string
	Marker   string
}

// NewStore returns a Store for dir with the default filename and marker.
func NewStore(dir string) *Store {
	return &Store{Dir: dir, FileName: DefaultNoteFile, Marker: Marker}
}

// Insert places entry immediately after the marker line and rewrites the
// file. Returns false (never an error) when the file is missing, unreadable,
// or contains no marker; the file is left untouched in every failure case.
func (s *Store) Insert(entry string) bool {
	path := filepath.Join(s.Dir, s.FileName)

	content, err := os.ReadFile(path) // #nosec G304 -- path is the project's note file
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Note store not readable")
		return false
	}

	text := string(content)
	if !strings.Contains(text, s.Marker) {
		log.Warn().Str("path", path).Msg("Marker not found in note store")
		return false
	}

	updated := strings.Replace(text, s.Marker, s.Marker+entry, 1)
	if err := s.writeAtomic(path, []byte(updated)); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not write note store")
		return false
	}
	return true
}

// writeAtomic rewrites path via a temp file in the same directory so a
// crash mid-write cannot leave a truncated note store behind.
func (s *Store) writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".learned-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Chmod(tmpPath, mode); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
