package main

import (
	"context"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/utils"
	"github.com/apex/log"
)

func setup() context.Context {
	cli.Parse()
	logger = cli.Logger

	ctx := log.NewContext(context.Background(), logger)
	cfg = utils.Setup(ctx, cli.Flags.Config)

	var err error
	db, err = database.New(ctx, &cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("failed to open database")
	}

	if err = db.Migrate(ctx); err != nil {
		logger.WithError(err).Fatal("failed to migrate database")
	}

	if cfg.Misc.SeedDatabase {
		n, err := utils.SeedDatabase(ctx, db)
		if err != nil {
			logger.WithError(err).Fatal("failed to seed database")
		}
		logger.WithField("records", n).Info("seeded database")

		cfg.Misc.SeedDatabase = false
		if err = utils.SetConfig(cli.Flags.Config, cfg); err != nil {
			logger.WithError(err).Warn("failed to save configuration, seeding will be retried next start")
		}
	}

	if cfg.Admin.Password == "" {
		logger.Warn("no admin password configured, write endpoints will reject every request")
	}

	return database.NewContext(ctx, db)
}
