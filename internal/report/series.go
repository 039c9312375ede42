package report

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/ciricc/countstats/pkg/benchreport"
	"github.com/samber/lo"
)

// SummaryRow is one line of the summary table.
type SummaryRow struct {
	Key       benchreport.SizeSpineKey
	Aggregate benchreport.SizeSpineAggregate
}

// Reports holds every derived output of one run.
type Reports struct {
	Summary   []SummaryRow
	DPTime    []benchreport.RuntimePoint
	DPYesTime []benchreport.RuntimePoint
	DFSTime   []benchreport.RuntimePoint
	BFSTime   []benchreport.RuntimePoint
	Accuracy  []benchreport.AccuracyPoint
}

// Build derives all reports from the aggregates. Rows are ordered by size,
// then spine count, both ascending.
func Build(
	sizeSpine map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate,
	spines map[int]benchreport.SpineAggregate,
) Reports {
	dp := DPRuntime(sizeSpine)
	return Reports{
		Summary:   Summary(sizeSpine),
		DPTime:    dp,
		DPYesTime: YesOnly(dp),
		DFSTime:   HeuristicRuntime(sizeSpine, benchreport.OrderDepthFirst),
		BFSTime:   HeuristicRuntime(sizeSpine, benchreport.OrderBreadthFirst),
		Accuracy:  Accuracy(spines),
	}
}

func sortedKeys(m map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate) []benchreport.SizeSpineKey {
	keys := lo.Keys(m)
	slices.SortFunc(keys, func(a, b benchreport.SizeSpineKey) int {
		if c := cmp.Compare(a.Size, b.Size); c != 0 {
			return c
		}
		return cmp.Compare(a.Spines, b.Spines)
	})
	return keys
}

func Summary(m map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate) []SummaryRow {
	return lo.Map(sortedKeys(m), func(k benchreport.SizeSpineKey, _ int) SummaryRow {
		return SummaryRow{Key: k, Aggregate: m[k]}
	})
}

func yesLabel(spines int) string { return fmt.Sprintf("yes%d", spines) }

func noLabel(spines int) string { return fmt.Sprintf("no%d", spines) }

func mean(total int64, count int) float64 {
	return float64(total) / float64(count)
}

// DPRuntime returns the mean dynamic program run time per key, split into
// yes- and no-instances.
func DPRuntime(m map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate) []benchreport.RuntimePoint {
	var out []benchreport.RuntimePoint
	for _, k := range sortedKeys(m) {
		rec := m[k]
		if rec.YesCount > 0 {
			out = append(out, benchreport.RuntimePoint{Size: k.Size, Mean: mean(rec.DPYesTime, rec.YesCount), Label: yesLabel(k.Spines)})
		}
		if rec.NoCount > 0 {
			out = append(out, benchreport.RuntimePoint{Size: k.Size, Mean: mean(rec.DPNoTime, rec.NoCount), Label: noLabel(k.Spines)})
		}
	}
	return out
}

// YesOnly keeps the points of yes-instances.
func YesOnly(points []benchreport.RuntimePoint) []benchreport.RuntimePoint {
	return lo.Filter(points, func(p benchreport.RuntimePoint, _ int) bool {
		return strings.HasPrefix(p.Label, "yes")
	})
}

// HeuristicRuntime returns the mean heuristic run time per key for one
// traversal order. The no-side count is every instance the heuristic did
// not solve, whatever the dynamic program decided.
func HeuristicRuntime(m map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate, order benchreport.Order) []benchreport.RuntimePoint {
	var out []benchreport.RuntimePoint
	for _, k := range sortedKeys(m) {
		rec := m[k]
		yesCount, yesTime, noTime := rec.DFSYesCount, rec.DFSYesTime, rec.DFSNoTime
		if order == benchreport.OrderBreadthFirst {
			yesCount, yesTime, noTime = rec.BFSYesCount, rec.BFSYesTime, rec.BFSNoTime
		}

		if yesCount > 0 {
			out = append(out, benchreport.RuntimePoint{Size: k.Size, Mean: mean(yesTime, yesCount), Label: yesLabel(k.Spines)})
		}
		if noCount := rec.Total() - yesCount; noCount > 0 {
			out = append(out, benchreport.RuntimePoint{Size: k.Size, Mean: mean(noTime, noCount), Label: noLabel(k.Spines)})
		}
	}
	return out
}

// Accuracy returns, per spine count, the share of yes-instances each
// heuristic order solved. With no yes-instance the denominator is 1.
func Accuracy(m map[int]benchreport.SpineAggregate) []benchreport.AccuracyPoint {
	keys := lo.Keys(m)
	slices.Sort(keys)

	out := make([]benchreport.AccuracyPoint, 0, 2*len(keys))
	for _, spines := range keys {
		rec := m[spines]
		denominator := 1
		if rec.YesCount > 0 {
			denominator = rec.YesCount
		}
		out = append(out,
			benchreport.AccuracyPoint{Spines: spines, Ratio: float64(rec.DFSYesCount) / float64(denominator), Order: "dfs", YesCount: rec.YesCount},
			benchreport.AccuracyPoint{Spines: spines, Ratio: float64(rec.BFSYesCount) / float64(denominator), Order: "bfs", YesCount: rec.YesCount},
		)
	}
	return out
}
