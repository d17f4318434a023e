package database

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/FlagBrew/local-dex/internal/models"
)

type PokemonFilter struct {
	Type   string
	Search string
}

func (f PokemonFilter) predicate() *entsql.Predicate {
	var preds []*entsql.Predicate
	if f.Type != "" {
		preds = append(preds, entsql.Or(
			entsql.EQ("type1", f.Type),
			entsql.EQ("type2", f.Type),
		))
	}
	if f.Search != "" {
		preds = append(preds, entsql.Or(
			entsql.ContainsFold("name", f.Search),
			entsql.ContainsFold("english_name", f.Search),
			entsql.ContainsFold("japanese_name", f.Search),
		))
	}
	return and(preds)
}

func and(preds []*entsql.Predicate) *entsql.Predicate {
	switch len(preds) {
	case 0:
		return nil
	case 1:
		return preds[0]
	default:
		return entsql.And(preds...)
	}
}

func (c *Client) ListPokemon(ctx context.Context, f PokemonFilter, page Page) ([]*models.Pokemon, int, error) {
	total, err := c.count(ctx, PokemonTableName, f.predicate())
	if err != nil {
		return nil, 0, err
	}

	list, err := selectRows(ctx, c, selectQuery{
		table:   PokemonTableName,
		columns: columnNames(PokemonColumns),
		where:   f.predicate(),
		orderBy: "national_dex",
		page:    &page,
	}, scanPokemon)
	return list, total, err
}

func (c *Client) getPokemon(ctx context.Context, where *entsql.Predicate) (*models.Pokemon, error) {
	return selectOne(ctx, c, selectQuery{
		table:   PokemonTableName,
		columns: columnNames(PokemonColumns),
		where:   where,
		orderBy: "national_dex",
	}, scanPokemon)
}

func (c *Client) GetPokemon(ctx context.Context, id int) (*models.Pokemon, error) {
	return c.getPokemon(ctx, entsql.EQ("id", id))
}

func (c *Client) GetPokemonByDex(ctx context.Context, dex int) (*models.Pokemon, error) {
	return c.getPokemon(ctx, entsql.EQ("national_dex", dex))
}

// GetPokemonByName matches the display or English name, ignoring case.
func (c *Client) GetPokemonByName(ctx context.Context, name string) (*models.Pokemon, error) {
	return c.getPokemon(ctx, entsql.Or(
		entsql.EQ("name", name),
		entsql.EqualFold("english_name", name),
	))
}

func pokemonValues(p *models.Pokemon) ([]string, []any, error) {
	eggGroups, err := encodeList(p.EggGroups)
	if err != nil {
		return nil, nil, err
	}
	abilities, err := encodeList(p.Abilities)
	if err != nil {
		return nil, nil, err
	}

	columns := []string{
		"name", "japanese_name", "english_name", "type1", "type2", "classification",
		"height", "weight", "hp", "attack", "defense", "sp_attack", "sp_defense", "speed",
		"total_stats", "catch_rate", "experience_type", "gender_ratio", "egg_groups", "abilities",
		"updated_at",
	}
	values := []any{
		p.Name, p.JapaneseName, p.EnglishName, p.Type1, nullable(p.Type2), p.Classification,
		p.Height, p.Weight, p.HP, p.Attack, p.Defense, p.SpAttack, p.SpDefense, p.Speed,
		p.TotalStats, p.CatchRate, p.ExperienceType, p.GenderRatio, eggGroups, abilities,
		p.UpdatedAt,
	}
	return columns, values, nil
}

// InsertPokemon stores p, recomputing its stat total.
func (c *Client) InsertPokemon(ctx context.Context, p *models.Pokemon) error {
	p.TotalStats = p.StatTotal()
	p.CreatedAt = now()
	p.UpdatedAt = p.CreatedAt

	columns, values, err := pokemonValues(p)
	if err != nil {
		return err
	}
	columns = append(columns, "national_dex", "created_at")
	values = append(values, p.NationalDex, p.CreatedAt)

	id, err := c.insert(ctx, PokemonTableName, columns, values)
	if err != nil {
		return fmt.Errorf("inserting pokemon %d: %w", p.NationalDex, err)
	}
	p.ID = id
	return nil
}

// UpdatePokemon writes every mutable field of p. The national dex number is
// never changed.
func (c *Client) UpdatePokemon(ctx context.Context, p *models.Pokemon) error {
	p.TotalStats = p.StatTotal()
	p.UpdatedAt = now()

	columns, values, err := pokemonValues(p)
	if err != nil {
		return err
	}
	return c.update(ctx, PokemonTableName, p.ID, columns, values)
}

func (c *Client) DeletePokemon(ctx context.Context, id int) error {
	return c.delete(ctx, PokemonTableName, entsql.EQ("id", id))
}

func scanPokemon(row rowScanner) (*models.Pokemon, error) {
	var (
		p                    models.Pokemon
		type2                sql.NullString
		eggGroups, abilities []byte
	)

	err := row.Scan(
		&p.ID, &p.NationalDex, &p.Name, &p.JapaneseName, &p.EnglishName, &p.Type1, &type2,
		&p.Classification, &p.Height, &p.Weight, &p.HP, &p.Attack, &p.Defense, &p.SpAttack,
		&p.SpDefense, &p.Speed, &p.TotalStats, &p.CatchRate, &p.ExperienceType, &p.GenderRatio,
		&eggGroups, &abilities, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if type2.Valid {
		p.Type2 = &type2.String
	}
	if p.EggGroups, err = decodeList(eggGroups); err != nil {
		return nil, err
	}
	if p.Abilities, err = decodeList(abilities); err != nil {
		return nil, err
	}
	return &p, nil
}
