package corpus_generator

import (
	"context"
	"fmt"
	"github.com/meysamhadeli/snapseed/corpus_generator/contracts"
	"github.com/meysamhadeli/snapseed/corpus_generator/models"
	"github.com/meysamhadeli/snapseed/utils"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SnapshotExt is the fixed extension that identifies snapshot test files
const SnapshotExt = ".snap"

// CorpusGenerator turns a tree of snapshot test files into a numbered seed corpus.
type CorpusGenerator struct {
	Cwd          string
	cacheManager *CacheManager
}

// NewCorpusGenerator initializes a new CorpusGenerator.
// With caching enabled, extraction outcomes for unchanged snapshot files are
// reused across runs; emitted seeds are identical either way.
func NewCorpusGenerator(cwd string, enableCache bool) contracts.ICorpusGenerator {
	var cacheManager *CacheManager
	if enableCache {
		var err error
		cacheManager, err = NewCacheManager("")
		if err != nil {
			// Fall back to uncached scanning if cache initialization fails
			log.Printf("Warning: Failed to initialize cache manager: %v", err)
			cacheManager = nil
		}
	}

	return &CorpusGenerator{
		Cwd:          cwd,
		cacheManager: cacheManager,
	}
}

// ScanSnapshots walks rootDir and collects one snippet per snapshot file that
// contains a match, in traversal order. Files without a match contribute
// nothing. A failed read aborts the whole scan.
func (generator *CorpusGenerator) ScanSnapshots(ctx context.Context, rootDir string) (*models.ScanResult, error) {
	var result models.ScanResult

	err := filepath.WalkDir(rootDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		relativePath, relErr := filepath.Rel(rootDir, path)
		if relErr != nil {
			relativePath = path
		}
		relativePath = strings.ReplaceAll(relativePath, "\\", "/")

		// Check if the current directory or file should be skipped based on default ignore patterns
		if utils.IsDefaultIgnored(relativePath) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			return nil
		}

		if filepath.Ext(path) != SnapshotExt {
			return nil
		}

		result.FilesScanned++

		// Reuse the previous outcome when the file is unchanged
		if generator.cacheManager != nil {
			if snippet, matched, found := generator.cacheManager.GetExtraction(path); found {
				result.CacheHits++
				if matched {
					result.Snippets = append(result.Snippets, models.Snippet{SourcePath: relativePath, Text: snippet})
					result.FilesMatched++
				}
				return nil
			}
			result.CacheMisses++
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read snapshot file: %s, error: %w", relativePath, err)
		}

		snippet, matched := generator.ExtractSnippet(string(content))

		if generator.cacheManager != nil {
			generator.cacheManager.SetExtraction(path, snippet, matched)
		}

		if matched {
			result.Snippets = append(result.Snippets, models.Snippet{SourcePath: relativePath, Text: snippet})
			result.FilesMatched++
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &result, nil
}

// EmitSeeds writes each snippet verbatim to a file named by its zero-based
// position inside outDir, overwriting silently. The output directory must
// already exist; the emitter does not create it.
func (generator *CorpusGenerator) EmitSeeds(snippets []models.Snippet, outDir string, observe contracts.EmitObserver) (*models.EmitResult, error) {
	var result models.EmitResult

	for index, snippet := range snippets {
		seedPath := filepath.Join(outDir, strconv.Itoa(index))
		if err := os.WriteFile(seedPath, []byte(snippet.Text), 0644); err != nil {
			return &result, fmt.Errorf("failed to write seed file: %s, error: %w", seedPath, err)
		}

		result.FilesWritten++
		result.BytesWritten += int64(len(snippet.Text))

		if observe != nil {
			observe(index, snippet)
		}
	}

	return &result, nil
}

// InspectSnapshot reads a single snapshot file and reports its header
// metadata, the extraction verdict and a structure outline of the snippet.
func (generator *CorpusGenerator) InspectSnapshot(path string) (*models.SnapshotReport, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot file: %s, error: %w", path, err)
	}

	report := &models.SnapshotReport{Path: path}
	report.Meta, report.HasMeta = ParseSnapshotMeta(string(content))
	report.Snippet, report.Matched = generator.ExtractSnippet(string(content))
	if report.Matched {
		report.Structure = generator.SummarizeStructure(report.Snippet)
	}

	return report, nil
}

// GetCacheStats reports cache statistics; cache_enabled is false when caching is off
func (generator *CorpusGenerator) GetCacheStats() (map[string]interface{}, error) {
	if generator.cacheManager == nil {
		return map[string]interface{}{"cache_enabled": false}, nil
	}

	stats, err := generator.cacheManager.GetCacheStats()
	if err != nil {
		return nil, err
	}
	stats["cache_enabled"] = true

	return stats, nil
}

// ClearCache removes all cached extraction outcomes
func (generator *CorpusGenerator) ClearCache() error {
	if generator.cacheManager == nil {
		return nil
	}
	return generator.cacheManager.ClearCache()
}
