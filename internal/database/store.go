package database

import (
	"context"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/FlagBrew/local-dex/internal/models"
)

type naturalKey struct {
	table  string
	column string
}

var naturalKeys = map[models.Kind]naturalKey{
	models.KindPokemon: {PokemonTableName, "national_dex"},
	models.KindMove:    {MovesTableName, "move_id"},
	models.KindAbility: {AbilitiesTableName, "ability_id"},
	models.KindItem:    {ItemsTableName, "name"},
}

// Exists reports whether a record of kind with the given natural key is
// already stored.
func (c *Client) Exists(ctx context.Context, kind models.Kind, key any) (bool, error) {
	nk, ok := naturalKeys[kind]
	if !ok {
		return false, fmt.Errorf("unknown kind %q", kind)
	}

	n, err := c.count(ctx, nk.table, entsql.EQ(nk.column, key))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Count returns the number of stored records of kind.
func (c *Client) Count(ctx context.Context, kind models.Kind) (int, error) {
	nk, ok := naturalKeys[kind]
	if !ok {
		return 0, fmt.Errorf("unknown kind %q", kind)
	}
	return c.count(ctx, nk.table, nil)
}

// Insert stores a new entity in a single statement and sets its ID. When the
// insert fails because the natural key is taken, ErrConflict is returned.
func (c *Client) Insert(ctx context.Context, e models.Entity) error {
	var err error
	switch v := e.(type) {
	case *models.Pokemon:
		err = c.InsertPokemon(ctx, v)
	case *models.Move:
		err = c.InsertMove(ctx, v)
	case *models.Ability:
		err = c.InsertAbility(ctx, v)
	case *models.Item:
		err = c.InsertItem(ctx, v)
	default:
		return fmt.Errorf("unsupported entity %T", e)
	}

	if err == nil || errors.Is(err, ErrConflict) {
		return err
	}

	// The insert error itself is driver specific; a row holding the key means
	// a unique violation.
	if exists, xerr := c.Exists(ctx, e.Kind(), e.NaturalKey()); xerr == nil && exists {
		return ErrConflict
	}
	return err
}
