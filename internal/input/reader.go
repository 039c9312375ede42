package input

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ciricc/countstats/pkg/benchreport"
	"github.com/samber/lo"
)

var (
	ErrMalformedRow = errors.New("malformed row")
)

// Column layout of the stats file.
const (
	colInstance = iota
	colAlgorithm
	colOrder
	colSize
	colSpines
	colSuccess
	colDuration
	numColumns
)

// Reader streams measurement rows out of a stats CSV file.
type Reader struct {
	src  io.Reader
	opts ReaderOpts
}

func NewReader(src io.Reader, opts ...ReaderOpt) *Reader {
	return &Reader{
		src: src,
		opts: buildOpts(ReaderOpts{
			HeuristicName: lo.ToPtr(benchreport.DefaultHeuristicName),
			Comma:         lo.ToPtr(','),
		}, opts...),
	}
}

// Each calls fn for every measurement row in file order, skipping header
// rows. It stops at the first read, parse or callback error.
func (r *Reader) Each(fn func(row benchreport.MeasurementRow) error) error {
	cr := csv.NewReader(r.src)
	cr.Comma = *r.opts.Comma
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read stats: %w", err)
		}
		line, _ := cr.FieldPos(0)

		if len(record) > colAlgorithm && record[colAlgorithm] == benchreport.HeaderAlgorithm {
			continue
		}

		row, err := r.parse(record)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := fn(row); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
}

func (r *Reader) parse(record []string) (benchreport.MeasurementRow, error) {
	if len(record) != numColumns {
		return benchreport.MeasurementRow{}, fmt.Errorf("%w: %d fields, need %d", ErrMalformedRow, len(record), numColumns)
	}

	algorithm, err := benchreport.ParseAlgorithm(record[colAlgorithm], *r.opts.HeuristicName)
	if err != nil {
		return benchreport.MeasurementRow{}, err
	}
	order, err := benchreport.ParseOrder(record[colOrder])
	if err != nil {
		return benchreport.MeasurementRow{}, err
	}

	size, err := parseCount("size", record[colSize])
	if err != nil {
		return benchreport.MeasurementRow{}, err
	}
	spines, err := parseCount("spines", record[colSpines])
	if err != nil {
		return benchreport.MeasurementRow{}, err
	}

	var success bool
	switch record[colSuccess] {
	case "0":
	case "1":
		success = true
	default:
		return benchreport.MeasurementRow{}, fmt.Errorf("%w: success %q, need 0 or 1", ErrMalformedRow, record[colSuccess])
	}

	duration, err := strconv.ParseInt(record[colDuration], 10, 64)
	if err != nil {
		return benchreport.MeasurementRow{}, fmt.Errorf("%w: duration %q", ErrMalformedRow, record[colDuration])
	}

	return benchreport.MeasurementRow{
		InstanceID: record[colInstance],
		Algorithm:  algorithm,
		Order:      order,
		Size:       size,
		Spines:     spines,
		Success:    success,
		Duration:   duration,
	}, nil
}

func parseCount(name, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q", ErrMalformedRow, name, s)
	}
	return v, nil
}
