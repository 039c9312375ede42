package monitor

// ProgressMetrics represents how far an aggregation run has come
type ProgressMetrics struct {
	// RowsRead is the number of measurement rows consumed, header excluded
	RowsRead int64
	// InstancesFolded is the number of instances committed to the aggregates
	InstancesFolded int64
	// ReportsWritten is the number of output files completed
	ReportsWritten int64
}

// ProgressMonitor tracks the progress of a single aggregation run.
// Implementations are driven by one goroutine.
type ProgressMonitor interface {
	// GetMetrics returns the current counters
	GetMetrics() ProgressMetrics

	// RowRead records one consumed measurement row
	RowRead()

	// InstanceFolded records one instance committed to the aggregates
	InstanceFolded()

	// ReportWritten records one completed output file
	ReportWritten()
}
