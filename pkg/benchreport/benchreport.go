package benchreport

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrUnknownOrder     = errors.New("unknown order")
)

// HeaderAlgorithm is the algorithm column value of the stats header row.
const HeaderAlgorithm = "Algorithm"

// DefaultHeuristicName is the algorithm name the embedding benchmark writes for the heuristic.
const DefaultHeuristicName = "cleve"

type Algorithm int

const (
	AlgorithmDynamicProgram Algorithm = iota
	AlgorithmHeuristic
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmDynamicProgram:
		return "dynamic-program"
	case AlgorithmHeuristic:
		return "heuristic"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps an algorithm column value to an Algorithm.
// heuristicName is the only value accepted for the heuristic branch.
func ParseAlgorithm(s, heuristicName string) (Algorithm, error) {
	switch s {
	case "dynamic-program":
		return AlgorithmDynamicProgram, nil
	case heuristicName:
		return AlgorithmHeuristic, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

type Order int

const (
	OrderDepthFirst Order = iota
	OrderBreadthFirst
)

func (o Order) String() string {
	switch o {
	case OrderDepthFirst:
		return "depth-first"
	case OrderBreadthFirst:
		return "breadth-first"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

func ParseOrder(s string) (Order, error) {
	switch s {
	case "depth-first":
		return OrderDepthFirst, nil
	case "breadth-first":
		return OrderBreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOrder, s)
	}
}

// MeasurementRow is one algorithm run on one instance.
type MeasurementRow struct {
	InstanceID string
	Algorithm  Algorithm
	Order      Order
	Size       int
	Spines     int
	Success    bool
	// Duration in microseconds
	Duration int64
}
