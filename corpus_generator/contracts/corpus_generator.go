package contracts

import (
	"context"
	"github.com/meysamhadeli/snapseed/corpus_generator/models"
)

// EmitObserver is invoked once per seed file right after it has been written,
// in emission order. Used to echo snippets to the diagnostic stream.
type EmitObserver func(index int, snippet models.Snippet)

type ICorpusGenerator interface {
	ScanSnapshots(ctx context.Context, rootDir string) (*models.ScanResult, error)
	ExtractSnippet(data string) (string, bool)
	SummarizeStructure(snippet string) string
	EmitSeeds(snippets []models.Snippet, outDir string, observe EmitObserver) (*models.EmitResult, error)
	InspectSnapshot(path string) (*models.SnapshotReport, error)
	GetCacheStats() (map[string]interface{}, error)
	ClearCache() error
}
