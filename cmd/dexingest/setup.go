package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/gui"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/FlagBrew/local-dex/internal/utils"
	"github.com/apex/log"
)

func setup() (context.Context, gui.Plan) {
	cli.Parse()
	logger = cli.Logger

	ctx, _ := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ctx = log.NewContext(ctx, logger)
	cfg = utils.Setup(ctx, cli.Flags.Config)

	var plan gui.Plan
	if cli.Flags.Kind == "" {
		var err error
		plan, err = gui.New(cfg).Start()
		if errors.Is(err, gui.ErrCancelled) {
			os.Exit(0)
		}
		if err != nil {
			logger.WithError(err).Fatal("failed to run the wizard")
		}
	} else {
		var err error
		plan, err = planFromFlags(cli.Flags)
		if err != nil {
			logger.WithError(err).Fatal("invalid arguments")
		}
	}

	var err error
	db, err = database.New(ctx, &cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}

	if err = db.Migrate(ctx); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	return database.NewContext(ctx, db), plan
}

// planFromFlags turns --kind, --start and --end into a plan. A zero start or
// end takes the kind's default.
func planFromFlags(flags *models.IngestFlags) (gui.Plan, error) {
	if strings.EqualFold(strings.TrimSpace(flags.Kind), "all") {
		if flags.Start != 0 || flags.End != 0 {
			return gui.Plan{}, errors.New("--start and --end cannot be combined with --kind all")
		}
		return gui.Plan{All: true, Kinds: models.Kinds}, nil
	}

	kind, err := models.ParseKind(flags.Kind)
	if err != nil {
		return gui.Plan{}, err
	}

	r := kind.DefaultRange()
	if flags.Start != 0 {
		r.Start = flags.Start
	}
	if flags.End != 0 {
		r.End = flags.End
	}
	if err = r.Validate(); err != nil {
		return gui.Plan{}, fmt.Errorf("%s range: %w", kind, err)
	}

	return gui.Plan{Kinds: []models.Kind{kind}, Range: r}, nil
}
