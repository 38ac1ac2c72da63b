package learned

import (
	"os/exec"

	"github.com/rs/zerolog/log"
)

// autoCommitMessage is the fixed message for auto-captured learnings.
const autoCommitMessage = "chore: auto-capture session learnings"

// AutoCommit stages and commits the note file when it has uncommitted
// changes. Only called when the project config opts in. Returns true when a
// commit was made; any git failure is logged and reported as false — it
// must never affect the hook's exit code.
func AutoCommit(dir, file string) bool {
	diff := exec.Command("git", "diff", "--quiet", file)
	diff.Dir = dir
	if err := diff.Run(); err == nil {
		// Exit 0 means no changes to commit.
		return false
	}

	add := exec.Command("git", "add", file)
	add.Dir = dir
	if err := add.Run(); err != nil {
		log.Warn().Err(err).Msg("Auto-commit failed: git add")
		return false
	}

	commit := exec.Command("git", "commit", "-m", autoCommitMessage)
	commit.Dir = dir
	if err := commit.Run(); err != nil {
		log.Warn().Err(err).Msg("Auto-commit failed: git commit")
		return false
	}

	return true
}
