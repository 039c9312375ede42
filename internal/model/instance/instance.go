package instance

import (
	"errors"
	"fmt"
	"strings"
)

var ErrIncomplete = errors.New("incomplete instance")

// Measurement is the outcome of one algorithm run.
type Measurement struct {
	Success  bool
	Duration int64
}

// Instance collects the three measurements of one problem instance
// while its rows are being read.
type Instance struct {
	ID     string
	Size   int
	Spines int
	DP     Measurement
	DFS    Measurement
	BFS    Measurement
}

// Validate reports which measurements never arrived. A missing row
// leaves its duration at zero.
func (i Instance) Validate() error {
	var missing []string
	if i.DP.Duration <= 0 {
		missing = append(missing, "dynamic-program/depth-first")
	}
	if i.DFS.Duration <= 0 {
		missing = append(missing, "heuristic/depth-first")
	}
	if i.BFS.Duration <= 0 {
		missing = append(missing, "heuristic/breadth-first")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w %q: no positive duration for %s", ErrIncomplete, i.ID, strings.Join(missing, ", "))
	}
	return nil
}

func NewInstance(
	id string,
	size int,
	spines int,
) *Instance {
	return &Instance{
		ID:     id,
		Size:   size,
		Spines: spines,
	}
}
