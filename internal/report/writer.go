package report

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/ciricc/countstats/pkg/benchreport"
)

var SummaryHeader = []string{
	"size", "spines", "yescnt", "nocnt", "dfsyes", "bfsyes",
	"dpyestime", "dfsyestime", "bfsyestime", "dpnotime", "dfsnotime", "bfsnotime",
}

const (
	DPTimeHeader   = "size dptime clsspines"
	DFSTimeHeader  = "size dfstime clsspines"
	BFSTimeHeader  = "size bfstime clsspines"
	AccuracyHeader = "spines p_solved order yescnt"
)

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// WriteSummary writes the comma-separated summary table.
func WriteSummary(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(SummaryHeader); err != nil {
		return err
	}
	for _, r := range rows {
		a := r.Aggregate
		fields := []string{
			strconv.Itoa(r.Key.Size),
			strconv.Itoa(r.Key.Spines),
			strconv.Itoa(a.YesCount),
			strconv.Itoa(a.NoCount),
			strconv.Itoa(a.DFSYesCount),
			strconv.Itoa(a.BFSYesCount),
			strconv.FormatInt(a.DPYesTime, 10),
			strconv.FormatInt(a.DFSYesTime, 10),
			strconv.FormatInt(a.BFSYesTime, 10),
			strconv.FormatInt(a.DPNoTime, 10),
			strconv.FormatInt(a.DFSNoTime, 10),
			strconv.FormatInt(a.BFSNoTime, 10),
		}
		if err := cw.Write(fields); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRuntime writes a space-separated runtime series under header.
func WriteRuntime(w io.Writer, header string, points []benchreport.RuntimePoint) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%d %s %s\n", p.Size, formatFloat(p.Mean), p.Label); err != nil {
			return err
		}
	}
	return nil
}

func WriteAccuracy(w io.Writer, points []benchreport.AccuracyPoint) error {
	if _, err := fmt.Fprintln(w, AccuracyHeader); err != nil {
		return err
	}
	for _, p := range points {
		if _, err := fmt.Fprintf(w, "%d %s %s %d\n", p.Spines, formatFloat(p.Ratio), p.Order, p.YesCount); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile creates path, hands a buffered writer to write and closes
// the file, reporting the first failure with the path attached.
func WriteFile(path string, write func(w io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := write(bw); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
