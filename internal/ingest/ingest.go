// Package ingest drives the fetch, normalize and store steps across id ranges.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/metrics"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/apex/log"
	"github.com/google/uuid"
)

type Fetcher interface {
	Fetch(ctx context.Context, kind models.Kind, id int) (*pokeapi.RawRecord, error)
}

type Normalizer interface {
	Normalize(ctx context.Context, kind models.Kind, raw *pokeapi.RawRecord) (models.Entity, error)
}

type Store interface {
	Exists(ctx context.Context, kind models.Kind, key any) (bool, error)
	Insert(ctx context.Context, e models.Entity) error
}

type Outcome string

const (
	OutcomeInserted Outcome = "success"
	OutcomeSkipped  Outcome = "skipped"
	OutcomeFailed   Outcome = "failed"
)

// Result is the terminal state of a single id.
type Result struct {
	Kind    models.Kind
	ID      int
	Outcome Outcome
	Entity  models.Entity
	Err     error
}

type Summary struct {
	RunID    string
	Kind     models.Kind
	Range    models.IDRange
	Success  int
	Skipped  int
	Failed   int
	Duration time.Duration
}

// Total is the number of ids that reached a terminal state.
func (s Summary) Total() int {
	return s.Success + s.Skipped + s.Failed
}

func (s *Summary) add(o Outcome) {
	switch o {
	case OutcomeInserted:
		s.Success++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
}

type Orchestrator struct {
	fetcher    Fetcher
	normalizer Normalizer
	store      Store
	onResult   func(Result)
}

type Option func(*Orchestrator)

// WithOnResult registers fn to be called after every id, in order.
func WithOnResult(fn func(Result)) Option {
	return func(o *Orchestrator) { o.onResult = fn }
}

func New(fetcher Fetcher, normalizer Normalizer, store Store, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		fetcher:    fetcher,
		normalizer: normalizer,
		store:      store,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Ingest processes ids start..end (inclusive) of kind one at a time. A failing
// id never stops the run; only an invalid request or a cancelled context
// returns an error, the latter together with the partial summary.
func (o *Orchestrator) Ingest(ctx context.Context, kind models.Kind, start, end int) (Summary, error) {
	r := models.IDRange{Start: start, End: end}
	summary := Summary{Kind: kind, Range: r}

	if !kind.Valid() {
		return summary, fmt.Errorf("unknown kind %q", kind)
	}
	if err := r.Validate(); err != nil {
		return summary, err
	}

	summary.RunID = uuid.NewString()
	logger := log.FromContext(ctx).WithFields(log.Fields{
		"run_id": summary.RunID,
		"kind":   kind,
	})
	ctx = log.NewContext(ctx, logger)

	logger.WithField("start", start).WithField("end", end).Info("starting ingestion")
	began := time.Now()

	for id := start; id <= end; id++ {
		if err := ctx.Err(); err != nil {
			summary.Duration = time.Since(began)
			logger.WithError(err).Warn("ingestion cancelled")
			return summary, err
		}

		res := o.ingestOne(ctx, kind, id)
		summary.add(res.Outcome)
		metrics.IngestOutcomes.WithLabelValues(string(kind), string(res.Outcome)).Inc()

		entry := logger.WithField("id", id).WithField("outcome", res.Outcome)
		if res.Err != nil {
			entry = entry.WithError(res.Err)
		}
		if res.Outcome == OutcomeFailed {
			entry.Warn("id failed")
		} else {
			entry.Debug("id done")
		}

		if o.onResult != nil {
			o.onResult(res)
		}
	}

	summary.Duration = time.Since(began)
	metrics.IngestDuration.WithLabelValues(string(kind)).Observe(summary.Duration.Seconds())

	logger.WithFields(log.Fields{
		"success":  summary.Success,
		"skipped":  summary.Skipped,
		"failed":   summary.Failed,
		"duration": summary.Duration.Round(time.Millisecond),
	}).Info("ingestion complete")
	return summary, nil
}

func (o *Orchestrator) ingestOne(ctx context.Context, kind models.Kind, id int) Result {
	res := Result{Kind: kind, ID: id, Outcome: OutcomeFailed}

	raw, err := o.fetcher.Fetch(ctx, kind, id)
	if err != nil {
		res.Err = err
		return res
	}

	entity, err := o.normalizer.Normalize(ctx, kind, raw)
	if err != nil {
		res.Err = fmt.Errorf("normalizing: %w", err)
		return res
	}
	res.Entity = entity

	exists, err := o.store.Exists(ctx, kind, entity.NaturalKey())
	if err != nil {
		res.Err = fmt.Errorf("checking existing record: %w", err)
		return res
	}
	if exists {
		res.Outcome = OutcomeSkipped
		return res
	}

	if err = o.store.Insert(ctx, entity); err != nil {
		if errors.Is(err, database.ErrConflict) {
			res.Outcome = OutcomeSkipped
			return res
		}
		res.Err = fmt.Errorf("storing: %w", err)
		return res
	}

	res.Outcome = OutcomeInserted
	return res
}

// IngestAll runs every kind over its default range, in a fixed order.
func (o *Orchestrator) IngestAll(ctx context.Context) ([]Summary, error) {
	summaries := make([]Summary, 0, len(models.Kinds))
	for _, kind := range models.Kinds {
		r := kind.DefaultRange()
		s, err := o.Ingest(ctx, kind, r.Start, r.End)
		summaries = append(summaries, s)
		if err != nil {
			return summaries, err
		}
	}
	return summaries, nil
}
