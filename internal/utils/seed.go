package utils

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/FlagBrew/local-dex/internal/database"
	"github.com/FlagBrew/local-dex/internal/models"
	"github.com/apex/log"
)

//go:embed seed.json
var seedData []byte

type seedSet struct {
	Pokemon   []*models.Pokemon `json:"pokemon"`
	Moves     []*models.Move    `json:"moves"`
	Abilities []*models.Ability `json:"abilities"`
	Items     []*models.Item    `json:"items"`
}

func (s *seedSet) entities(kind models.Kind) []models.Entity {
	var out []models.Entity
	switch kind {
	case models.KindPokemon:
		for _, v := range s.Pokemon {
			out = append(out, v)
		}
	case models.KindMove:
		for _, v := range s.Moves {
			out = append(out, v)
		}
	case models.KindAbility:
		for _, v := range s.Abilities {
			out = append(out, v)
		}
	case models.KindItem:
		for _, v := range s.Items {
			out = append(out, v)
		}
	}
	return out
}

// SeedDatabase inserts the baseline dataset into every table that is still
// empty. Tables that already hold rows are left alone. All inserts share one
// transaction. It returns the number of rows inserted.
func SeedDatabase(ctx context.Context, db *database.Client) (int, error) {
	logger := log.FromContext(ctx)

	var set seedSet
	if err := json.Unmarshal(seedData, &set); err != nil {
		return 0, fmt.Errorf("decoding seed data: %w", err)
	}

	inserted := 0
	err := db.WithTx(ctx, func(tx *database.Client) error {
		for _, kind := range models.Kinds {
			n, err := tx.Count(ctx, kind)
			if err != nil {
				return err
			}
			if n > 0 {
				logger.WithField("kind", kind).WithField("rows", n).Info("table already populated, not seeding")
				continue
			}

			rows := set.entities(kind)
			for _, e := range rows {
				if err = tx.Insert(ctx, e); err != nil {
					return fmt.Errorf("seeding %s: %w", kind, err)
				}
			}
			inserted += len(rows)
			logger.WithField("kind", kind).WithField("rows", len(rows)).Info("seeded table")
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return inserted, nil
}
