package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/cyberquest/cyberquest/internal/apperr"
)

// withTx runs fn inside a transaction. It commits when fn succeeds and
// rolls back on error or panic; failures come back as StorageError.
func (s *Store) withTx(ctx context.Context, op string, fn func(tx dialect.Tx) error) error {
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return apperr.Storage(op, fmt.Errorf("begin: %w", err))
	}
	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()
	if err := fn(tx); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			err = fmt.Errorf("%w: rolling back: %v", err, rerr)
		}
		return apperr.Storage(op, err)
	}
	if err := tx.Commit(); err != nil {
		return apperr.Storage(op, fmt.Errorf("commit: %w", err))
	}
	return nil
}

// insert executes an INSERT and returns the new row id.
func insert(ctx context.Context, ex dialect.ExecQuerier, b *entsql.InsertBuilder) (int64, error) {
	q, args := b.Query()
	var res entsql.Result
	if err := ex.Exec(ctx, q, args, &res); err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// query runs a SELECT and calls scan for every row.
func query(ctx context.Context, ex dialect.ExecQuerier, sel *entsql.Selector, scan func(rows *entsql.Rows) error) error {
	q, args := sel.Query()
	rows := &entsql.Rows{}
	if err := ex.Query(ctx, q, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	for rows.Next() {
		if err := scan(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}

func sqlite() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}
