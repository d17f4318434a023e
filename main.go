package main

import (
	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
	"github.com/lrstanley/chix"
	"github.com/lrstanley/clix"
)

var (
	cli    = &clix.CLI[models.Flags]{}
	logger log.Interface
	db     *database.Client
	cfg    *models.Config
)

func main() {
	ctx := setup()
	defer db.Close()

	logger.Infof("Starting HTTP server on %s:%d", cfg.HTTP.ListeningAddr, cfg.HTTP.Port)
	if err := chix.RunContext(ctx, httpServer(ctx)); err != nil {
		logger.WithError(err).Error("http server stopped")
	}
}
