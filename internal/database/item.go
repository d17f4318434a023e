package database

import (
	"context"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/FlagBrew/local-dex/internal/models"
)

type ItemFilter struct {
	Category   string
	Generation string
}

func (f ItemFilter) predicate() *entsql.Predicate {
	var preds []*entsql.Predicate
	if f.Category != "" {
		preds = append(preds, entsql.EQ("category", f.Category))
	}
	if f.Generation != "" {
		preds = append(preds, entsql.EQ("generation", f.Generation))
	}
	return and(preds)
}

func (c *Client) ListItems(ctx context.Context, f ItemFilter, page Page) ([]*models.Item, int, error) {
	total, err := c.count(ctx, ItemsTableName, f.predicate())
	if err != nil {
		return nil, 0, err
	}

	list, err := selectRows(ctx, c, selectQuery{
		table:   ItemsTableName,
		columns: columnNames(ItemsColumns),
		where:   f.predicate(),
		orderBy: "id",
		page:    &page,
	}, scanItem)
	return list, total, err
}

// GetItem looks an item up by its display name, or by English name ignoring
// case.
func (c *Client) GetItem(ctx context.Context, name string) (*models.Item, error) {
	return selectOne(ctx, c, selectQuery{
		table:   ItemsTableName,
		columns: columnNames(ItemsColumns),
		where: entsql.Or(
			entsql.EQ("name", name),
			entsql.EqualFold("english_name", name),
		),
		orderBy: "id",
	}, scanItem)
}

func itemValues(it *models.Item) ([]string, []any) {
	return []string{
			"japanese_name", "english_name", "category", "description", "generation", "updated_at",
		}, []any{
			it.JapaneseName, it.EnglishName, it.Category, it.Description, it.Generation, it.UpdatedAt,
		}
}

func (c *Client) InsertItem(ctx context.Context, it *models.Item) error {
	it.CreatedAt = now()
	it.UpdatedAt = it.CreatedAt

	columns, values := itemValues(it)
	columns = append(columns, "name", "created_at")
	values = append(values, it.Name, it.CreatedAt)

	id, err := c.insert(ctx, ItemsTableName, columns, values)
	if err != nil {
		return fmt.Errorf("inserting item %q: %w", it.Name, err)
	}
	it.ID = id
	return nil
}

// UpdateItem writes every mutable field of it, matched by its synthetic id.
// The name is the natural key and is never changed.
func (c *Client) UpdateItem(ctx context.Context, it *models.Item) error {
	it.UpdatedAt = now()

	columns, values := itemValues(it)
	return c.update(ctx, ItemsTableName, it.ID, columns, values)
}

func (c *Client) DeleteItem(ctx context.Context, name string) error {
	return c.delete(ctx, ItemsTableName, entsql.EQ("name", name))
}

func scanItem(row rowScanner) (*models.Item, error) {
	var it models.Item
	err := row.Scan(
		&it.ID, &it.Name, &it.JapaneseName, &it.EnglishName, &it.Category,
		&it.Description, &it.Generation, &it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &it, nil
}
