package corpus_generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test parsing the YAML header of an insta-style snapshot file
func TestParseSnapshotMeta_Header(t *testing.T) {
	data := `---
created: "2020-02-06T13:03:02.241022Z"
creator: insta@0.13.0
source: crates/mun_syntax/src/tests/parser.rs
expression: "fn main() {}"
---
SOURCE_FILE@[0; 12)
`

	meta, ok := ParseSnapshotMeta(data)
	assert.True(t, ok)
	assert.Equal(t, "2020-02-06T13:03:02.241022Z", meta.Created)
	assert.Equal(t, "insta@0.13.0", meta.Creator)
	assert.Equal(t, "crates/mun_syntax/src/tests/parser.rs", meta.Source)
	assert.Equal(t, "fn main() {}", meta.Expression)
}

// Test that a file without a leading delimiter has no header
func TestParseSnapshotMeta_MissingHeader(t *testing.T) {
	meta, ok := ParseSnapshotMeta("SOURCE_FILE@[0; 12)\n")
	assert.False(t, ok)
	assert.Equal(t, "", meta.Creator)
}

// Test that an unterminated header block is rejected
func TestParseSnapshotMeta_UnterminatedHeader(t *testing.T) {
	data := `---
creator: insta@0.13.0
source: parser.rs
`

	_, ok := ParseSnapshotMeta(data)
	assert.False(t, ok)
}

// Test that malformed YAML degrades to an empty result
func TestParseSnapshotMeta_MalformedYaml(t *testing.T) {
	data := `---
creator: [unterminated
---
`

	meta, ok := ParseSnapshotMeta(data)
	assert.False(t, ok)
	assert.Equal(t, "", meta.Creator)
}

// Test that carriage returns around the delimiters are tolerated
func TestParseSnapshotMeta_CarriageReturns(t *testing.T) {
	data := "---\r\ncreator: insta@0.13.0\r\n---\r\nbody\r\n"

	meta, ok := ParseSnapshotMeta(data)
	assert.True(t, ok)
	assert.Equal(t, "insta@0.13.0", meta.Creator)
}
