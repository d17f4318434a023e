package database

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/FlagBrew/local-dex/internal/models"
)

type AbilityFilter struct {
	Generation string
}

func (f AbilityFilter) predicate() *entsql.Predicate {
	if f.Generation == "" {
		return nil
	}
	return entsql.EQ("generation", f.Generation)
}

func (c *Client) ListAbilities(ctx context.Context, f AbilityFilter, page Page) ([]*models.Ability, int, error) {
	total, err := c.count(ctx, AbilitiesTableName, f.predicate())
	if err != nil {
		return nil, 0, err
	}

	list, err := selectRows(ctx, c, selectQuery{
		table:   AbilitiesTableName,
		columns: columnNames(AbilitiesColumns),
		where:   f.predicate(),
		orderBy: "ability_id",
		page:    &page,
	}, scanAbility)
	return list, total, err
}

func (c *Client) getAbility(ctx context.Context, where *entsql.Predicate) (*models.Ability, error) {
	return selectOne(ctx, c, selectQuery{
		table:   AbilitiesTableName,
		columns: columnNames(AbilitiesColumns),
		where:   where,
		orderBy: "ability_id",
	}, scanAbility)
}

func (c *Client) GetAbility(ctx context.Context, id int) (*models.Ability, error) {
	return c.getAbility(ctx, entsql.EQ("id", id))
}

func (c *Client) GetAbilityByAbilityID(ctx context.Context, abilityID int) (*models.Ability, error) {
	return c.getAbility(ctx, entsql.EQ("ability_id", abilityID))
}

func (c *Client) GetAbilityByName(ctx context.Context, name string) (*models.Ability, error) {
	return c.getAbility(ctx, entsql.Or(
		entsql.EQ("name", name),
		entsql.EqualFold("english_name", name),
	))
}

func abilityValues(a *models.Ability) ([]string, []any) {
	return []string{
			"name", "japanese_name", "english_name", "description",
			"common_count", "hidden_count", "generation", "updated_at",
		}, []any{
			a.Name, a.JapaneseName, a.EnglishName, a.Description,
			a.CommonCount, a.HiddenCount, a.Generation, a.UpdatedAt,
		}
}

func (c *Client) InsertAbility(ctx context.Context, a *models.Ability) error {
	a.CreatedAt = now()
	a.UpdatedAt = a.CreatedAt

	columns, values := abilityValues(a)
	columns = append(columns, "ability_id", "created_at")
	values = append(values, a.AbilityID, a.CreatedAt)

	id, err := c.insert(ctx, AbilitiesTableName, columns, values)
	if err != nil {
		return fmt.Errorf("inserting ability %d: %w", a.AbilityID, err)
	}
	a.ID = id
	return nil
}

func (c *Client) UpdateAbility(ctx context.Context, a *models.Ability) error {
	a.UpdatedAt = now()

	columns, values := abilityValues(a)
	return c.update(ctx, AbilitiesTableName, a.ID, columns, values)
}

func (c *Client) DeleteAbility(ctx context.Context, id int) error {
	return c.delete(ctx, AbilitiesTableName, entsql.EQ("id", id))
}

func scanAbility(row rowScanner) (*models.Ability, error) {
	var a models.Ability
	err := row.Scan(
		&a.ID, &a.AbilityID, &a.Name, &a.JapaneseName, &a.EnglishName, &a.Description,
		&a.CommonCount, &a.HiddenCount, &a.Generation, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
