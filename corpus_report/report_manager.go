package corpus_report

import (
	"fmt"
	"github.com/meysamhadeli/snapseed/constants/lipgloss"
	"github.com/meysamhadeli/snapseed/corpus_report/contracts"
	"github.com/pterm/pterm"
	"time"
)

// ReportManager implementation
type reportManager struct {
	scannedFiles int
	matchedFiles int
	emittedFiles int
	writtenBytes int64
	cacheHits    int
	cacheMisses  int
	startedAt    time.Time
}

// NewReportManager creates a new report manager
func NewReportManager() contracts.IReportManager {
	return &reportManager{
		scannedFiles: 0,
		matchedFiles: 0,
		emittedFiles: 0,
		writtenBytes: 0,
		startedAt:    time.Now(),
	}
}

// RecordScan accumulates scan counters for the run.
func (rm *reportManager) RecordScan(filesScanned int, filesMatched int) {
	rm.scannedFiles += filesScanned
	rm.matchedFiles += filesMatched
}

// RecordEmission accumulates emission counters for the run.
func (rm *reportManager) RecordEmission(filesWritten int, bytesWritten int64) {
	rm.emittedFiles += filesWritten
	rm.writtenBytes += bytesWritten
}

// RecordCacheActivity accumulates cache hit and miss counters for the run.
func (rm *reportManager) RecordCacheActivity(hits int, misses int) {
	rm.cacheHits += hits
	rm.cacheMisses += misses
}

func (rm *reportManager) GetCurrentCounts() (scanned int, matched int, written int) {
	return rm.scannedFiles, rm.matchedFiles, rm.emittedFiles
}

func (rm *reportManager) DisplayReport() {
	elapsed := time.Since(rm.startedAt).Round(time.Millisecond)

	reportInfo := fmt.Sprintf("Snapshots Scanned: %d - Matched: %d - Seeds Written: %d (%d bytes) - Elapsed: %s",
		rm.scannedFiles, rm.matchedFiles, rm.emittedFiles, rm.writtenBytes, elapsed)

	if rm.cacheHits+rm.cacheMisses > 0 {
		reportInfo = fmt.Sprintf("%s - Cache: %d hits / %d misses", reportInfo, rm.cacheHits, rm.cacheMisses)
	}

	reportBox := lipgloss.BoxStyle.Render(reportInfo)
	fmt.Println(reportBox)
}

// DisplaySeedTable renders one row per emitted seed file.
func (rm *reportManager) DisplaySeedTable(rows [][]string) {
	if len(rows) == 0 {
		return
	}

	tableData := pterm.TableData{{"Seed", "Source Snapshot", "Bytes"}}
	for _, row := range rows {
		tableData = append(tableData, row)
	}

	_ = pterm.DefaultTable.WithHasHeader().WithBoxed().WithData(tableData).Render()
}

func (rm *reportManager) ClearReport() {
	rm.scannedFiles = 0
	rm.matchedFiles = 0
	rm.emittedFiles = 0
	rm.writtenBytes = 0
	rm.cacheHits = 0
	rm.cacheMisses = 0
	rm.startedAt = time.Now()
}
