// Command dexingest pulls reference data from PokeAPI into the local-dex
// database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/gui"
	"github.com/FlagBrew/local-dex/internal/ingest"
	"github.com/FlagBrew/local-dex/internal/metrics"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/normalize"
	"github.com/FlagBrew/local-dex/internal/pokeapi"
	"github.com/FlagBrew/local-dex/internal/utils"
	"github.com/apex/log"
	"github.com/lrstanley/clix"
	"golang.org/x/sync/errgroup"
)

var (
	cli    = &clix.CLI[models.IngestFlags]{}
	logger log.Interface
	db     *database.Client
	cfg    *models.Config
)

func main() {
	ctx, plan := setup()
	defer db.Close()

	client := pokeapi.New(&cfg.Ingest)
	progress := utils.NewLogger(log.InfoLevel, cli.Debug, os.Stdout, cli.Flags.Format)
	orchestrator := ingest.New(client, normalize.New(client), db, ingest.WithOnResult(func(res ingest.Result) {
		report(progress, res)
	}))

	var summaries []ingest.Summary

	g, gctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	if cli.Flags.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cli.Flags.MetricsAddr,
			Handler:           metrics.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		g.Go(func() error {
			logger.WithField("addr", srv.Addr).Info("serving metrics")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			select {
			case <-done:
			case <-gctx.Done():
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer close(done)

		var err error
		summaries, err = run(gctx, orchestrator, plan)
		return err
	})

	err := g.Wait()
	for _, s := range summaries {
		printSummary(s)
	}

	if err != nil {
		logger.WithError(err).Error("ingestion did not complete")
		db.Close()
		os.Exit(1)
	}
}

func run(ctx context.Context, o *ingest.Orchestrator, plan gui.Plan) ([]ingest.Summary, error) {
	if plan.All {
		return o.IngestAll(ctx)
	}

	s, err := o.Ingest(ctx, plan.Kinds[0], plan.Range.Start, plan.Range.End)
	return []ingest.Summary{s}, err
}

func report(progress log.Interface, res ingest.Result) {
	entry := progress.WithFields(log.Fields{
		"kind":    res.Kind,
		"id":      res.ID,
		"outcome": res.Outcome,
	})

	switch res.Outcome {
	case ingest.OutcomeFailed:
		entry.WithError(res.Err).Warn("record failed")
	case ingest.OutcomeSkipped:
		entry.Info("record already stored")
	default:
		entry.Info("record stored")
	}
}

func printSummary(s ingest.Summary) {
	entry := logger.WithFields(log.Fields{
		"run_id":   s.RunID,
		"kind":     s.Kind,
		"start":    s.Range.Start,
		"end":      s.Range.End,
		"success":  s.Success,
		"skipped":  s.Skipped,
		"failed":   s.Failed,
		"total":    s.Total(),
		"duration": s.Duration.Round(time.Millisecond).String(),
	})

	if s.Failed > 0 {
		entry.Warn("ingestion finished with failures")
		return
	}
	entry.Info("ingestion finished")
}
