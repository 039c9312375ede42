package aggregate_svc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"maps"

	"github.com/ciricc/countstats/internal/model/instance"
	"github.com/ciricc/countstats/internal/monitor"
	"github.com/ciricc/countstats/pkg/benchreport"
)

var (
	ErrInconsistentInstance = errors.New("inconsistent instance")
)

type AggregateService interface {
	// Ingest consumes the next measurement row. Rows of one instance must be contiguous.
	Ingest(ctx context.Context, row benchreport.MeasurementRow) error

	// Finalize folds the instance still in progress at end of input.
	Finalize(ctx context.Context) error

	SizeSpineAggregates() map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate
	SpineAggregates() map[int]benchreport.SpineAggregate
}

type AggregateServiceImpl struct {
	logger  *slog.Logger
	monitor monitor.ProgressMonitor

	current   *instance.Instance
	sizeSpine map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate
	spines    map[int]benchreport.SpineAggregate
}

func NewAggregateService(
	logger *slog.Logger,
	progress monitor.ProgressMonitor,
) *AggregateServiceImpl {
	return &AggregateServiceImpl{
		logger:    logger,
		monitor:   progress,
		sizeSpine: make(map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate),
		spines:    make(map[int]benchreport.SpineAggregate),
	}
}

func (s *AggregateServiceImpl) Ingest(ctx context.Context, row benchreport.MeasurementRow) error {
	if s.current != nil && s.current.ID != row.InstanceID {
		if err := s.fold(ctx, s.current); err != nil {
			return err
		}
		s.current = nil
	}

	if s.current == nil {
		s.current = instance.NewInstance(row.InstanceID, row.Size, row.Spines)
	} else if s.current.Size != row.Size || s.current.Spines != row.Spines {
		return fmt.Errorf("%w %q: size %d spines %d, earlier rows had size %d spines %d",
			ErrInconsistentInstance, row.InstanceID, row.Size, row.Spines, s.current.Size, s.current.Spines)
	}

	m := instance.Measurement{Success: row.Success, Duration: row.Duration}

	switch row.Algorithm {
	case benchreport.AlgorithmDynamicProgram:
		if row.Order != benchreport.OrderDepthFirst {
			return fmt.Errorf("%w: instance %q: dynamic program only runs depth-first, got %s",
				benchreport.ErrUnknownOrder, row.InstanceID, row.Order)
		}
		s.current.DP = m
	case benchreport.AlgorithmHeuristic:
		switch row.Order {
		case benchreport.OrderDepthFirst:
			s.current.DFS = m
		case benchreport.OrderBreadthFirst:
			s.current.BFS = m
		default:
			return fmt.Errorf("%w: instance %q: %s", benchreport.ErrUnknownOrder, row.InstanceID, row.Order)
		}
	default:
		return fmt.Errorf("%w: instance %q: %s", benchreport.ErrUnknownAlgorithm, row.InstanceID, row.Algorithm)
	}

	s.monitor.RowRead()
	return nil
}

func (s *AggregateServiceImpl) Finalize(ctx context.Context) error {
	if s.current == nil {
		return nil
	}
	if err := s.fold(ctx, s.current); err != nil {
		return err
	}
	s.current = nil
	return nil
}

// fold commits a completed instance. It is the only place aggregates change.
func (s *AggregateServiceImpl) fold(ctx context.Context, inst *instance.Instance) error {
	if err := inst.Validate(); err != nil {
		return err
	}

	key := benchreport.SizeSpineKey{Size: inst.Size, Spines: inst.Spines}
	rec := s.sizeSpine[key]
	spine := s.spines[inst.Spines]

	if inst.DP.Success {
		rec.YesCount++
		rec.DPYesTime += inst.DP.Duration
		spine.YesCount++
	} else {
		rec.NoCount++
		rec.DPNoTime += inst.DP.Duration
	}

	if inst.DFS.Success {
		rec.DFSYesCount++
		rec.DFSYesTime += inst.DFS.Duration
		spine.DFSYesCount++
	} else {
		rec.DFSNoTime += inst.DFS.Duration
	}

	if inst.BFS.Success {
		rec.BFSYesCount++
		rec.BFSYesTime += inst.BFS.Duration
		spine.BFSYesCount++
	} else {
		rec.BFSNoTime += inst.BFS.Duration
	}

	s.sizeSpine[key] = rec
	s.spines[inst.Spines] = spine
	s.monitor.InstanceFolded()

	s.logger.DebugContext(ctx, "Folded instance",
		"instance", inst.ID,
		"size", inst.Size,
		"spines", inst.Spines,
		"dpyes", inst.DP.Success)
	return nil
}

// SizeSpineAggregates returns a copy of the per (size, spines) aggregates.
func (s *AggregateServiceImpl) SizeSpineAggregates() map[benchreport.SizeSpineKey]benchreport.SizeSpineAggregate {
	return maps.Clone(s.sizeSpine)
}

// SpineAggregates returns a copy of the per spine count aggregates.
func (s *AggregateServiceImpl) SpineAggregates() map[int]benchreport.SpineAggregate {
	return maps.Clone(s.spines)
}

var _ AggregateService = (*AggregateServiceImpl)(nil)
