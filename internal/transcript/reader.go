package transcript

import (
	"bufio"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// scanEntries opens the transcript at path and calls fn for each line that
// decodes as an Entry. Blank and undecodable lines are skipped. Open or
// read failures are reported as warnings and terminate the scan early; the
// caller keeps whatever it accumulated. Each call is an independent pass.
func scanEntries(path string, fn func(Entry)) {
	file, err := os.Open(path) // #nosec G304 -- path comes from the hook payload
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Could not read transcript")
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	// Assistant messages can be large. Match the 1 MB line cap used for
	// conversation files elsewhere.
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var entry Entry
		if err := json.Unmarshal([]byte(line), &entry); err != nil {
			log.Debug().Err(err).Msg("Skipping malformed transcript line")
			continue
		}
		fn(entry)
	}

	if err := scanner.Err(); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("Transcript read interrupted")
	}
}
