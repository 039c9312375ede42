package monitor

// CounterProgressMonitor implements ProgressMonitor with plain counters.
type CounterProgressMonitor struct {
	rows      int64
	instances int64
	reports   int64
}

func NewCounterProgressMonitor() *CounterProgressMonitor {
	return &CounterProgressMonitor{}
}

// GetMetrics returns current progress counters
func (m *CounterProgressMonitor) GetMetrics() ProgressMetrics {
	return ProgressMetrics{
		RowsRead:        m.rows,
		InstancesFolded: m.instances,
		ReportsWritten:  m.reports,
	}
}

func (m *CounterProgressMonitor) RowRead() { m.rows++ }

func (m *CounterProgressMonitor) InstanceFolded() { m.instances++ }

func (m *CounterProgressMonitor) ReportWritten() { m.reports++ }

var _ ProgressMonitor = (*CounterProgressMonitor)(nil)
