package contracts

type IReportManager interface {
	RecordScan(filesScanned int, filesMatched int)
	RecordEmission(filesWritten int, bytesWritten int64)
	RecordCacheActivity(hits int, misses int)
	GetCurrentCounts() (scanned int, matched int, written int)
	DisplayReport()
	DisplaySeedTable(rows [][]string)
	ClearReport()
}
