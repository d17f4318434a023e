package database

import (
	"context"
	"database/sql"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/FlagBrew/local-dex/internal/models"
)

type MoveFilter struct {
	Type     string
	Category string
}

func (f MoveFilter) predicate() *entsql.Predicate {
	var preds []*entsql.Predicate
	if f.Type != "" {
		preds = append(preds, entsql.EQ("type", f.Type))
	}
	if f.Category != "" {
		preds = append(preds, entsql.EQ("category", f.Category))
	}
	return and(preds)
}

func (c *Client) ListMoves(ctx context.Context, f MoveFilter, page Page) ([]*models.Move, int, error) {
	total, err := c.count(ctx, MovesTableName, f.predicate())
	if err != nil {
		return nil, 0, err
	}

	list, err := selectRows(ctx, c, selectQuery{
		table:   MovesTableName,
		columns: columnNames(MovesColumns),
		where:   f.predicate(),
		orderBy: "move_id",
		page:    &page,
	}, scanMove)
	return list, total, err
}

func (c *Client) getMove(ctx context.Context, where *entsql.Predicate) (*models.Move, error) {
	return selectOne(ctx, c, selectQuery{
		table:   MovesTableName,
		columns: columnNames(MovesColumns),
		where:   where,
		orderBy: "move_id",
	}, scanMove)
}

func (c *Client) GetMove(ctx context.Context, id int) (*models.Move, error) {
	return c.getMove(ctx, entsql.EQ("id", id))
}

func (c *Client) GetMoveByMoveID(ctx context.Context, moveID int) (*models.Move, error) {
	return c.getMove(ctx, entsql.EQ("move_id", moveID))
}

func (c *Client) GetMoveByName(ctx context.Context, name string) (*models.Move, error) {
	return c.getMove(ctx, entsql.Or(
		entsql.EQ("name", name),
		entsql.EqualFold("english_name", name),
	))
}

func moveValues(m *models.Move) ([]string, []any) {
	return []string{
			"name", "japanese_name", "english_name", "type", "category",
			"power", "accuracy", "pp", "description", "generation", "updated_at",
		}, []any{
			m.Name, m.JapaneseName, m.EnglishName, m.Type, m.Category,
			nullable(m.Power), nullable(m.Accuracy), nullable(m.PP), m.Description, m.Generation, m.UpdatedAt,
		}
}

func (c *Client) InsertMove(ctx context.Context, m *models.Move) error {
	m.CreatedAt = now()
	m.UpdatedAt = m.CreatedAt

	columns, values := moveValues(m)
	columns = append(columns, "move_id", "created_at")
	values = append(values, m.MoveID, m.CreatedAt)

	id, err := c.insert(ctx, MovesTableName, columns, values)
	if err != nil {
		return fmt.Errorf("inserting move %d: %w", m.MoveID, err)
	}
	m.ID = id
	return nil
}

func (c *Client) UpdateMove(ctx context.Context, m *models.Move) error {
	m.UpdatedAt = now()

	columns, values := moveValues(m)
	return c.update(ctx, MovesTableName, m.ID, columns, values)
}

func (c *Client) DeleteMove(ctx context.Context, id int) error {
	return c.delete(ctx, MovesTableName, entsql.EQ("id", id))
}

func scanMove(row rowScanner) (*models.Move, error) {
	var (
		m                   models.Move
		power, accuracy, pp sql.NullInt64
	)

	err := row.Scan(
		&m.ID, &m.MoveID, &m.Name, &m.JapaneseName, &m.EnglishName, &m.Type, &m.Category,
		&power, &accuracy, &pp, &m.Description, &m.Generation, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	m.Power = nullInt(power)
	m.Accuracy = nullInt(accuracy)
	m.PP = nullInt(pp)
	return &m, nil
}

func nullInt(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	i := int(v.Int64)
	return &i
}
