package corpus_generator

import (
	"github.com/meysamhadeli/snapseed/corpus_generator/models"
	"gopkg.in/yaml.v3"
	"strings"
)

const metaDelimiter = "---"

// ParseSnapshotMeta reads the YAML header block of an insta-style snapshot
// file (the region between the two leading "---" lines). The header is used
// for provenance display only; a missing or malformed header degrades to an
// empty result instead of an error.
func ParseSnapshotMeta(data string) (models.SnapshotMeta, bool) {
	var meta models.SnapshotMeta

	lines := strings.Split(data, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != metaDelimiter {
		return meta, false
	}

	var header []string
	closed := false
	for _, line := range lines[1:] {
		if strings.TrimRight(line, "\r") == metaDelimiter {
			closed = true
			break
		}
		header = append(header, line)
	}
	if !closed {
		return meta, false
	}

	if err := yaml.Unmarshal([]byte(strings.Join(header, "\n")), &meta); err != nil {
		return models.SnapshotMeta{}, false
	}

	return meta, true
}
