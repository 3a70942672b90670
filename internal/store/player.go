package store

import (
	"context"
	"strings"
	"unicode/utf8"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"

	"github.com/cyberquest/cyberquest/internal/apperr"
)

// NormalizeUsername trims whitespace and truncates to MaxUsernameLength
// characters. Returns a ValidationError if nothing is left.
func NormalizeUsername(username string) (string, error) {
	name := strings.TrimSpace(username)
	if name == "" {
		return "", apperr.Validation("username", "cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxUsernameLength {
		name = string([]rune(name)[:MaxUsernameLength])
	}
	return name, nil
}

// EnsurePlayer inserts the player if missing and returns its id. Concurrent
// calls for the same name resolve to the same row through the unique index.
func (s *Store) EnsurePlayer(ctx context.Context, username string) (int64, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return 0, err
	}

	var id int64
	err = s.withTx(ctx, "ensure player", func(tx dialect.Tx) error {
		q, args := sqlite().
			Insert(tablePlayers).
			Columns("username", "created_at").
			Values(name, s.now().UnixNano()).
			OnConflict(entsql.ConflictColumns("username"), entsql.DoNothing()).
			Query()
		if err := tx.Exec(ctx, q, args, nil); err != nil {
			return err
		}
		found, err := playerID(ctx, tx, name)
		if err != nil {
			return err
		}
		id = found
		return nil
	})
	return id, err
}

// FindPlayer returns the id of an existing player or a NotFoundError.
func (s *Store) FindPlayer(ctx context.Context, username string) (int64, error) {
	name, err := NormalizeUsername(username)
	if err != nil {
		return 0, err
	}
	id, err := playerID(ctx, s.drv, name)
	if err != nil {
		return 0, apperr.Storage("find player", err)
	}
	if id == 0 {
		return 0, apperr.NotFound("player", name)
	}
	return id, nil
}

// playerID returns 0 when no player has the name.
func playerID(ctx context.Context, ex dialect.ExecQuerier, name string) (int64, error) {
	sel := sqlite().
		Select("id").
		From(entsql.Table(tablePlayers)).
		Where(entsql.EQ("username", name))
	var id int64
	err := query(ctx, ex, sel, func(rows *entsql.Rows) error {
		return rows.Scan(&id)
	})
	return id, err
}
