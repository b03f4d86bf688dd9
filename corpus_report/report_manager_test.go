package corpus_report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Test that run counters accumulate across recordings
func TestReportManager_AccumulatesCounters(t *testing.T) {
	reportManager := NewReportManager()

	reportManager.RecordScan(10, 4)
	reportManager.RecordScan(5, 1)
	reportManager.RecordEmission(5, 120)
	reportManager.RecordCacheActivity(3, 2)

	scanned, matched, written := reportManager.GetCurrentCounts()
	assert.Equal(t, 15, scanned)
	assert.Equal(t, 5, matched)
	assert.Equal(t, 5, written)
}

// Test that clearing the report resets every counter
func TestReportManager_ClearReport(t *testing.T) {
	reportManager := NewReportManager()

	reportManager.RecordScan(7, 7)
	reportManager.RecordEmission(7, 99)
	reportManager.ClearReport()

	scanned, matched, written := reportManager.GetCurrentCounts()
	assert.Equal(t, 0, scanned)
	assert.Equal(t, 0, matched)
	assert.Equal(t, 0, written)
}
