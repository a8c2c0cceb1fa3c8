// Package mine_serv runs mining jobs and manages stored runs.
package mine_serv

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rskv-p/fpgrowth/config"
	"github.com/rskv-p/fpgrowth/pkg/x_db"
	"github.com/rskv-p/fpgrowth/pkg/x_fp"
	"github.com/rskv-p/fpgrowth/pkg/x_log"
	"github.com/rskv-p/fpgrowth/pkg/x_txn"
	recoverpkg "github.com/rskv-p/fpgrowth/recover"
)

var (
	ErrStoreDisabled = errors.New("result store is disabled")
	ErrStreamSave    = errors.New("streamed runs cannot be saved")
)

// Store is the persistence the service needs.
type Store interface {
	SaveRun(ctx context.Context, run *x_db.Run, rows []x_db.ItemsetRow) error
	ListRuns(ctx context.Context, limit int) ([]x_db.Run, error)
	GetRun(ctx context.Context, id string) (*x_db.Run, error)
	DeleteRun(ctx context.Context, id string) error
}

type Service struct {
	cfg   *config.Config
	store Store
	log   x_log.Logger

	mu      sync.RWMutex
	metrics map[string]int64
}

// New creates a service. store may be nil when results are not kept.
func New(cfg *config.Config, store Store) *Service {
	return &Service{
		cfg:     cfg,
		store:   store,
		log:     x_log.New("mine"),
		metrics: make(map[string]int64),
	}
}

func (s *Service) Config() *config.Config { return s.cfg }

// HasStore reports whether runs can be saved.
func (s *Service) HasStore() bool { return s.store != nil }

// Mine prepares the transactions, mines them and optionally saves the run.
// Itemsets in the report are sorted for display.
func (s *Service) Mine(ctx context.Context, job Job) (rep *Report, err error) {
	m := s.WithMetricPrefix("mine")
	m.Inc("jobs")
	defer m.Outcome(&err)
	defer recoverpkg.Guard("mine", "Mine", &err)

	if job.Save && s.store == nil {
		return nil, ErrStoreDisabled
	}

	var sets []x_fp.Itemset[string]
	out, err := s.run(ctx, m, job, func(set x_fp.Itemset[string]) error {
		sets = append(sets, set)
		return nil
	})
	if err != nil {
		return nil, err
	}
	x_fp.SortItemsets(sets)
	out.Itemsets = sets

	if job.Save {
		run := &x_db.Run{
			Source:       job.Source,
			Transactions: out.Transactions,
			MinSupport:   out.MinSupport,
			Elapsed:      out.Elapsed,
		}
		if serr := s.store.SaveRun(ctx, run, rowsFromItemsets(sets)); serr != nil {
			return nil, serr
		}
		out.RunID = run.ID
		out.CreatedAt = run.CreatedAt
		s.IncMetric("runs.saved")
		s.log.Info().Str("run", run.ID).Msg("run saved")
	}
	return out, nil
}

// Stream mines job and hands every itemset to emit as soon as it is found,
// in mining order. An emit error stops mining and is returned. Streamed runs
// are never saved; the report carries the totals but no itemsets.
func (s *Service) Stream(ctx context.Context, job Job, emit func(x_fp.Itemset[string]) error) (rep *Report, err error) {
	m := s.WithMetricPrefix("stream")
	m.Inc("jobs")
	defer m.Outcome(&err)
	defer recoverpkg.Guard("mine", "Stream", &err)

	if job.Save {
		return nil, ErrStreamSave
	}
	return s.run(ctx, m, job, emit)
}

// run builds the tree for job and walks the miner, checking ctx between
// itemsets.
func (s *Service) run(ctx context.Context, m *jobRecorder, job Job, emit func(x_fp.Itemset[string]) error) (*Report, error) {
	minSupport := job.MinSupport
	ratio := job.MinSupportRatio
	if minSupport <= 0 && ratio <= 0 {
		minSupport, ratio = s.cfg.MinSupport, s.cfg.MinSupportRatio
	}
	minSupport = x_fp.ResolveSupport(minSupport, ratio, len(job.Transactions))

	start := time.Now()
	stopBuild := m.Phase("build")
	tree := x_fp.Build(job.Transactions, minSupport)
	s.log.Debug().
		Str("file", job.Source).
		Int("transactions", len(job.Transactions)).
		Int("nodes", tree.Len()).
		Dur("elapsed", stopBuild()).
		Msg("tree built")

	stopSearch := m.Phase("search")
	var count int
	for set, merr := range x_fp.Mine(tree, nil, minSupport) {
		if merr != nil {
			return nil, merr
		}
		if cerr := ctx.Err(); cerr != nil {
			return nil, cerr
		}
		if eerr := emit(set); eerr != nil {
			return nil, eerr
		}
		count++
	}
	stopSearch()
	elapsed := time.Since(start)

	m.Add("transactions", int64(len(job.Transactions)))
	m.Add("itemsets", int64(count))

	s.log.Info().
		Str("file", job.Source).
		Int("support", minSupport).
		Int("itemsets", count).
		Dur("elapsed", elapsed).
		Msg("mined")

	return &Report{
		Source:       job.Source,
		Transactions: len(job.Transactions),
		MinSupport:   minSupport,
		Count:        count,
		Elapsed:      elapsed,
	}, nil
}

// MineFile reads path with the configured input settings and mines it.
func (s *Service) MineFile(ctx context.Context, path string, minSupport int, ratio float64, save bool) (*Report, error) {
	txns, err := x_txn.ReadFile(path, s.cfg.TxnOptions())
	if err != nil {
		return nil, err
	}
	return s.Mine(ctx, Job{
		Source:          path,
		Transactions:    txns,
		MinSupport:      minSupport,
		MinSupportRatio: ratio,
		Save:            save,
	})
}

// Runs lists stored runs, newest first.
func (s *Service) Runs(ctx context.Context, limit int) ([]*Report, error) {
	if s.store == nil {
		return nil, ErrStoreDisabled
	}
	runs, err := s.store.ListRuns(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*Report, len(runs))
	for i := range runs {
		out[i] = reportFromRun(&runs[i])
	}
	return out, nil
}

// Run loads one stored run with its itemsets.
func (s *Service) Run(ctx context.Context, id string) (*Report, error) {
	if s.store == nil {
		return nil, ErrStoreDisabled
	}
	run, err := s.store.GetRun(ctx, id)
	if err != nil {
		return nil, err
	}
	return reportFromRun(run), nil
}

// DeleteRun removes a stored run.
func (s *Service) DeleteRun(ctx context.Context, id string) error {
	if s.store == nil {
		return ErrStoreDisabled
	}
	if err := s.store.DeleteRun(ctx, id); err != nil {
		return err
	}
	s.IncMetric("runs.deleted")
	s.log.Info().Str("run", id).Msg("run deleted")
	return nil
}
