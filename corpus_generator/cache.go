package corpus_generator

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/zeebo/xxh3"
)

// CacheEntry is the persisted extraction outcome for one snapshot file
type CacheEntry struct {
	Snippet   string
	Matched   bool
	Timestamp time.Time
	FileSize  int64
	ModTime   time.Time
}

// ExtractionCache stores per-file extraction outcomes on disk with
// modification-time based invalidation
type ExtractionCache struct {
	cacheDir string
	mutex    sync.RWMutex
}

// CacheStats tracks cache performance counters for the current process
type CacheStats struct {
	TotalRequests int64
	CacheHits     int64
	CacheMisses   int64
	LastResetTime time.Time
	mutex         sync.RWMutex
}

// CacheManager provides high-level access to the extraction cache
type CacheManager struct {
	fileCache *ExtractionCache
	stats     *CacheStats
}

// NewCacheManager creates a cache manager rooted at cacheDir.
// If cacheDir is empty, it defaults to ".snapseed-cache" in the current working directory.
func NewCacheManager(cacheDir string) (*CacheManager, error) {
	if cacheDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current working directory: %w", err)
		}
		cacheDir = filepath.Join(cwd, ".snapseed-cache")
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	cacheManager := &CacheManager{
		fileCache: &ExtractionCache{cacheDir: cacheDir},
		stats:     &CacheStats{LastResetTime: time.Now()},
	}

	// Sweep expired entries in the background on startup
	go cacheManager.performAutoCleanup()

	return cacheManager, nil
}

// generateCacheKey derives the cache file name for a snapshot path
func (ec *ExtractionCache) generateCacheKey(sourcePath string) string {
	return fmt.Sprintf("%016x.seedcache", xxh3.HashString(sourcePath))
}

// getCachePath returns the full path to a cache file
func (ec *ExtractionCache) getCachePath(cacheKey string) string {
	return filepath.Join(ec.cacheDir, cacheKey)
}

// isFileChanged checks if a snapshot file has been modified since it was cached
func (ec *ExtractionCache) isFileChanged(sourcePath string, entry *CacheEntry) (bool, error) {
	fileInfo, err := os.Stat(sourcePath)
	if err != nil {
		return true, err
	}

	if !fileInfo.ModTime().Equal(entry.ModTime) || fileInfo.Size() != entry.FileSize {
		return true, nil
	}

	return false, nil
}

// Get retrieves the cached extraction outcome if it is still valid
func (ec *ExtractionCache) Get(sourcePath string) (*CacheEntry, bool) {
	ec.mutex.RLock()
	defer ec.mutex.RUnlock()

	cachePath := ec.getCachePath(ec.generateCacheKey(sourcePath))

	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
		return nil, false
	}

	// Invalidate when the snapshot file changed underneath the cache
	changed, err := ec.isFileChanged(sourcePath, &entry)
	if err != nil || changed {
		os.Remove(cachePath)
		return nil, false
	}

	return &entry, true
}

// Set stores the extraction outcome for a snapshot file
func (ec *ExtractionCache) Set(sourcePath string, snippet string, matched bool) error {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()

	fileInfo, err := os.Stat(sourcePath)
	if err != nil {
		return fmt.Errorf("failed to get file info: %w", err)
	}

	entry := CacheEntry{
		Snippet:   snippet,
		Matched:   matched,
		Timestamp: time.Now(),
		FileSize:  fileInfo.Size(),
		ModTime:   fileInfo.ModTime(),
	}

	var buffer bytes.Buffer
	if err := gob.NewEncoder(&buffer).Encode(entry); err != nil {
		return fmt.Errorf("failed to encode cache entry: %w", err)
	}

	cachePath := ec.getCachePath(ec.generateCacheKey(sourcePath))
	if err := os.WriteFile(cachePath, buffer.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write cache file: %w", err)
	}

	return nil
}

// Delete removes the cache entry for one snapshot file
func (ec *ExtractionCache) Delete(sourcePath string) error {
	ec.mutex.Lock()
	defer ec.mutex.Unlock()

	cachePath := ec.getCachePath(ec.generateCacheKey(sourcePath))
	if err := os.Remove(cachePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete cache file: %w", err)
	}

	return nil
}

// GetExtraction retrieves a cached extraction outcome.
// The third return value reports whether a valid entry was found.
func (cm *CacheManager) GetExtraction(sourcePath string) (string, bool, bool) {
	entry, found := cm.fileCache.Get(sourcePath)
	if !found {
		cm.recordCacheMiss()
		return "", false, false
	}

	cm.recordCacheHit()
	return entry.Snippet, entry.Matched, true
}

// SetExtraction stores the outcome of extracting one snapshot file
func (cm *CacheManager) SetExtraction(sourcePath string, snippet string, matched bool) error {
	return cm.fileCache.Set(sourcePath, snippet, matched)
}

// GetCacheStats returns storage statistics for the cache directory
func (cm *CacheManager) GetCacheStats() (map[string]interface{}, error) {
	stats := make(map[string]interface{})

	files, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read cache directory: %w", err)
	}

	var totalSize int64
	var count int
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		info, err := file.Info()
		if err != nil {
			continue
		}
		totalSize += info.Size()
		count++
	}

	stats["cache_files"] = count
	stats["total_size"] = totalSize
	stats["cache_dir"] = cm.fileCache.cacheDir
	stats["hit_rate"] = cm.GetPerformanceStats()["hit_rate_percent"]

	return stats, nil
}

// CleanExpiredCache removes cache entries older than maxAge.
// Entries that no longer decode are removed as well.
func (cm *CacheManager) CleanExpiredCache(maxAge time.Duration) error {
	cm.fileCache.mutex.Lock()
	defer cm.fileCache.mutex.Unlock()

	files, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	cutoff := time.Now().Add(-maxAge)

	for _, file := range files {
		if file.IsDir() {
			continue
		}

		cachePath := filepath.Join(cm.fileCache.cacheDir, file.Name())

		data, err := os.ReadFile(cachePath)
		if err != nil {
			continue
		}

		var entry CacheEntry
		if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&entry); err != nil {
			os.Remove(cachePath)
			continue
		}

		if entry.Timestamp.Before(cutoff) {
			os.Remove(cachePath)
		}
	}

	return nil
}

// ClearCache removes every entry in the cache directory
func (cm *CacheManager) ClearCache() error {
	cm.fileCache.mutex.Lock()
	defer cm.fileCache.mutex.Unlock()

	files, err := os.ReadDir(cm.fileCache.cacheDir)
	if err != nil {
		return fmt.Errorf("failed to read cache directory: %w", err)
	}

	for _, file := range files {
		if file.IsDir() {
			continue
		}
		os.Remove(filepath.Join(cm.fileCache.cacheDir, file.Name()))
	}

	return nil
}

// performAutoCleanup drops entries that have not been refreshed for a week
func (cm *CacheManager) performAutoCleanup() {
	cm.CleanExpiredCache(7 * 24 * time.Hour)
}
