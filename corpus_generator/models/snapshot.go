package models

// Snippet holds one extracted code fragment and the snapshot file it came from
type Snippet struct {
	SourcePath string
	Text       string
}

// ScanResult is the ordered outcome of walking a snapshot tree
type ScanResult struct {
	Snippets     []Snippet
	FilesScanned int
	FilesMatched int
	CacheHits    int
	CacheMisses  int
}

// EmitResult summarizes what the seed emitter wrote to disk
type EmitResult struct {
	FilesWritten int
	BytesWritten int64
}

// SnapshotMeta mirrors the YAML header block of an insta-style snapshot file.
// It is provenance only; extraction never consults it.
type SnapshotMeta struct {
	Created    string `yaml:"created"`
	Creator    string `yaml:"creator"`
	Source     string `yaml:"source"`
	Expression string `yaml:"expression"`
}

// SnapshotReport is the single-file view produced for the inspect command
type SnapshotReport struct {
	Path      string
	Meta      SnapshotMeta
	HasMeta   bool
	Snippet   string
	Matched   bool
	Structure string
}
