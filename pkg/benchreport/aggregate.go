package benchreport

// SizeSpineKey identifies one cell of the summary table.
type SizeSpineKey struct {
	Size   int
	Spines int
}

// SizeSpineAggregate accumulates all instances of one (size, spines) pair.
// Yes/no always refers to the dynamic program outcome.
type SizeSpineAggregate struct {
	YesCount    int
	NoCount     int
	DFSYesCount int
	BFSYesCount int
	// Cumulative run times, split by dynamic program outcome
	DPYesTime  int64
	DFSYesTime int64
	BFSYesTime int64
	DPNoTime   int64
	DFSNoTime  int64
	BFSNoTime  int64
}

// Total returns the number of instances folded into a.
func (a SizeSpineAggregate) Total() int {
	return a.YesCount + a.NoCount
}

// SpineAggregate counts successes per spine count across all sizes.
type SpineAggregate struct {
	YesCount    int
	DFSYesCount int
	BFSYesCount int
}

// RuntimePoint is one line of a runtime plot file.
type RuntimePoint struct {
	Size  int
	Mean  float64
	Label string
}

// AccuracyPoint is one line of the accuracy plot file.
type AccuracyPoint struct {
	Spines   int
	Ratio    float64
	Order    string
	YesCount int
}
