package corpus_generator

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test cache manager setup and basic operations
func TestCacheManager_BasicOperations(t *testing.T) {
	// Create temporary cache directory
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Create cache manager
	cacheManager, err := NewCacheManager(filepath.Join(tempDir, "cache"))
	require.NoError(t, err)
	require.NotNil(t, cacheManager)

	// Create a test snapshot file
	testFile := filepath.Join(tempDir, "test.snap")
	err = ioutil.WriteFile(testFile, []byte(`expression: "fn a() {}"`), 0644)
	require.NoError(t, err)

	// Should not be cached initially
	snippet, matched, found := cacheManager.GetExtraction(testFile)
	assert.False(t, found)
	assert.False(t, matched)
	assert.Equal(t, "", snippet)

	// Set cache
	err = cacheManager.SetExtraction(testFile, "fn a() {}", true)
	require.NoError(t, err)

	// Get from cache
	snippet, matched, found = cacheManager.GetExtraction(testFile)
	assert.True(t, found)
	assert.True(t, matched)
	assert.Equal(t, "fn a() {}", snippet)

	// A negative outcome is cached as well
	missFile := filepath.Join(tempDir, "miss.snap")
	err = ioutil.WriteFile(missFile, []byte("SOURCE_FILE@[0; 4)"), 0644)
	require.NoError(t, err)

	err = cacheManager.SetExtraction(missFile, "", false)
	require.NoError(t, err)

	snippet, matched, found = cacheManager.GetExtraction(missFile)
	assert.True(t, found)
	assert.False(t, matched)
	assert.Equal(t, "", snippet)
}

// Test cache invalidation when the snapshot file is modified
func TestCacheManager_FileInvalidation(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(filepath.Join(tempDir, "cache"))
	require.NoError(t, err)

	// Create test snapshot file
	testFile := filepath.Join(tempDir, "test.snap")
	err = ioutil.WriteFile(testFile, []byte(`expression: "fn before() {}"`), 0644)
	require.NoError(t, err)

	// Cache the outcome
	err = cacheManager.SetExtraction(testFile, "fn before() {}", true)
	require.NoError(t, err)

	// Verify cache hit
	snippet, _, found := cacheManager.GetExtraction(testFile)
	assert.True(t, found)
	assert.Equal(t, "fn before() {}", snippet)

	// Wait a moment to ensure different modification time
	time.Sleep(time.Millisecond * 10)

	// Modify the file
	err = ioutil.WriteFile(testFile, []byte(`expression: "fn after() { 42 }"`), 0644)
	require.NoError(t, err)

	// Cache should be invalidated
	snippet, _, found = cacheManager.GetExtraction(testFile)
	assert.False(t, found)
	assert.Equal(t, "", snippet)
}

// Test cache statistics functionality
func TestCacheManager_Statistics(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_stats_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Use a subdirectory to ensure clean cache
	cacheDir := filepath.Join(tempDir, "cache")
	cacheManager, err := NewCacheManager(cacheDir)
	require.NoError(t, err)

	// Initially empty
	stats, err := cacheManager.GetCacheStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats["cache_files"])
	assert.Equal(t, int64(0), stats["total_size"])
	assert.Equal(t, cacheDir, stats["cache_dir"])

	// Add some cache entries
	for _, name := range []string{"one.snap", "two.snap"} {
		testFile := filepath.Join(tempDir, name)
		err = ioutil.WriteFile(testFile, []byte(`expression: "fn x() {}"`), 0644)
		require.NoError(t, err)
		err = cacheManager.SetExtraction(testFile, "fn x() {}", true)
		require.NoError(t, err)
	}

	// Check statistics
	stats, err = cacheManager.GetCacheStats()
	require.NoError(t, err)
	assert.Equal(t, 2, stats["cache_files"])
	assert.Greater(t, stats["total_size"], int64(0))
}

// Test hit and miss counters for the current process
func TestCacheManager_PerformanceStats(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_perf_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(filepath.Join(tempDir, "cache"))
	require.NoError(t, err)

	testFile := filepath.Join(tempDir, "test.snap")
	err = ioutil.WriteFile(testFile, []byte(`expression: "fn a() {}"`), 0644)
	require.NoError(t, err)

	// One miss, then two hits
	_, _, found := cacheManager.GetExtraction(testFile)
	assert.False(t, found)

	err = cacheManager.SetExtraction(testFile, "fn a() {}", true)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, _, found = cacheManager.GetExtraction(testFile)
		assert.True(t, found)
	}

	perfStats := cacheManager.GetPerformanceStats()
	assert.Equal(t, int64(3), perfStats["total_requests"])
	assert.Equal(t, int64(2), perfStats["cache_hits"])
	assert.Equal(t, int64(1), perfStats["cache_misses"])
	assert.InDelta(t, 66.6, perfStats["hit_rate_percent"], 1.0)

	// Reset brings everything back to zero
	cacheManager.ResetPerformanceStats()
	perfStats = cacheManager.GetPerformanceStats()
	assert.Equal(t, int64(0), perfStats["total_requests"])
	assert.Equal(t, 0.0, perfStats["hit_rate_percent"])
}

// Test cache cleanup functionality
func TestCacheManager_CleanupExpired(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_cleanup_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	// Use a subdirectory to ensure clean cache
	cacheDir := filepath.Join(tempDir, "cache")
	cacheManager, err := NewCacheManager(cacheDir)
	require.NoError(t, err)

	// Create test snapshot file and cache it
	testFile := filepath.Join(tempDir, "test.snap")
	err = ioutil.WriteFile(testFile, []byte(`expression: "fn a() {}"`), 0644)
	require.NoError(t, err)
	err = cacheManager.SetExtraction(testFile, "fn a() {}", true)
	require.NoError(t, err)

	// Verify cache exists
	_, _, found := cacheManager.GetExtraction(testFile)
	assert.True(t, found)

	// Make sure the entry is older than the cutoff
	time.Sleep(time.Millisecond * 10)

	// Clean with very short max age (everything should be cleaned)
	err = cacheManager.CleanExpiredCache(time.Millisecond)
	require.NoError(t, err)

	// Verify cache is cleaned up
	_, _, found = cacheManager.GetExtraction(testFile)
	assert.False(t, found, "Cache should be cleaned up and return false")

	stats, err := cacheManager.GetCacheStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats["cache_files"], "All cache files should be removed")
}

// Test that undecodable cache files are removed during cleanup
func TestCacheManager_CleanupCorruptEntries(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_corrupt_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheDir := filepath.Join(tempDir, "cache")
	cacheManager, err := NewCacheManager(cacheDir)
	require.NoError(t, err)

	// Plant a cache file that does not decode
	corrupt := filepath.Join(cacheDir, "deadbeefdeadbeef.seedcache")
	err = ioutil.WriteFile(corrupt, []byte("not a gob stream"), 0644)
	require.NoError(t, err)

	err = cacheManager.CleanExpiredCache(time.Hour)
	require.NoError(t, err)

	_, statErr := os.Stat(corrupt)
	assert.True(t, os.IsNotExist(statErr))
}

// Test clearing the whole cache directory
func TestCacheManager_ClearCache(t *testing.T) {
	tempDir, err := ioutil.TempDir("", "cache_clear_test")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	cacheManager, err := NewCacheManager(filepath.Join(tempDir, "cache"))
	require.NoError(t, err)

	testFile := filepath.Join(tempDir, "test.snap")
	err = ioutil.WriteFile(testFile, []byte(`expression: "fn a() {}"`), 0644)
	require.NoError(t, err)
	err = cacheManager.SetExtraction(testFile, "fn a() {}", true)
	require.NoError(t, err)

	require.NoError(t, cacheManager.ClearCache())

	stats, err := cacheManager.GetCacheStats()
	require.NoError(t, err)
	assert.Equal(t, 0, stats["cache_files"])
}
