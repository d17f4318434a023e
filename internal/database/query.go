package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// Page selects a 1-based page of Size rows.
type Page struct {
	Number int
	Size   int
}

func (p Page) offset() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Size
}

type rowScanner interface {
	Scan(dest ...any) error
}

type selectQuery struct {
	table   string
	columns []string
	where   *entsql.Predicate
	orderBy string
	page    *Page
}

func (c *Client) count(ctx context.Context, table string, where *entsql.Predicate) (int, error) {
	b := c.builder()
	sel := b.Select().From(b.Table(table))
	if where != nil {
		sel.Where(where)
	}
	sel.Count()

	query, args := sel.Query()

	var n int
	if err := c.q.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting %s: %w", table, err)
	}
	return n, nil
}

func selectRows[T any](ctx context.Context, c *Client, sq selectQuery, scan func(rowScanner) (T, error)) ([]T, error) {
	b := c.builder()
	sel := b.Select(sq.columns...).From(b.Table(sq.table))
	if sq.where != nil {
		sel.Where(sq.where)
	}
	if sq.orderBy != "" {
		sel.OrderBy(sq.orderBy)
	}
	if sq.page != nil {
		sel.Limit(sq.page.Size).Offset(sq.page.offset())
	}

	query, args := sel.Query()
	rows, err := c.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying %s: %w", sq.table, err)
	}
	defer rows.Close()

	var out []T
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", sq.table, err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func selectOne[T any](ctx context.Context, c *Client, sq selectQuery, scan func(rowScanner) (T, error)) (T, error) {
	sq.page = &Page{Number: 1, Size: 1}

	var zero T
	rows, err := selectRows(ctx, c, sq, scan)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, ErrNotFound
	}
	return rows[0], nil
}

func (c *Client) insert(ctx context.Context, table string, columns []string, values []any) (int, error) {
	ins := c.builder().Insert(table).Columns(columns...).Values(values...)

	if c.dialect == dialect.Postgres {
		ins.Returning("id")
		query, args := ins.Query()

		var id int
		if err := c.q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, err
		}
		return id, nil
	}

	query, args := ins.Query()
	res, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return int(id), nil
}

func (c *Client) update(ctx context.Context, table string, id int, columns []string, values []any) error {
	upd := c.builder().Update(table)
	for i, col := range columns {
		upd.Set(col, values[i])
	}
	upd.Where(entsql.EQ("id", id))

	query, args := upd.Query()
	res, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("updating %s %d: %w", table, id, err)
	}
	return expectRow(res)
}

func (c *Client) delete(ctx context.Context, table string, where *entsql.Predicate) error {
	query, args := c.builder().Delete(table).Where(where).Query()

	res, err := c.q.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("deleting from %s: %w", table, err)
	}
	return expectRow(res)
}

func expectRow(res interface{ RowsAffected() (int64, error) }) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}

func encodeList(v []string) (string, error) {
	if v == nil {
		v = []string{}
	}
	b, err := json.Marshal(v)
	return string(b), err
}

func decodeList(b []byte) ([]string, error) {
	out := []string{}
	if len(b) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}
