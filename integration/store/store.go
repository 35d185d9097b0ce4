package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ottolink.app/integration/model"
	"ottolink.app/integration/store/options"
)

// Store is the Credential Store: durable options read and written by the
// connect flow and the heartbeat.
type Store struct {
	Options options.Querier
}

// NewStore creates a new Store over a pgx-compatible connection.
func NewStore(db options.DBTX) *Store {
	return &Store{
		Options: options.New(db),
	}
}

func (s *Store) get(ctx context.Context, name string) (string, error) {
	opt, err := s.Options.GetOption(ctx, name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("get option %s: %w", name, err)
	}
	return opt.Value, nil
}

func (s *Store) set(ctx context.Context, name, value string) error {
	if _, err := s.Options.UpsertOption(ctx, options.UpsertOptionParams{Name: name, Value: value}); err != nil {
		return fmt.Errorf("upsert option %s: %w", name, err)
	}
	return nil
}

// insertIfAbsent writes value only if name is unset and returns whichever
// value ends up stored.
func (s *Store) insertIfAbsent(ctx context.Context, name, value string) (string, error) {
	opt, err := s.Options.InsertOption(ctx, options.InsertOptionParams{Name: name, Value: value})
	if err == nil {
		return opt.Value, nil
	}

	var e *pgconn.PgError
	if errors.As(err, &e) && e.Code == pgerrcode.UniqueViolation {
		return s.get(ctx, name)
	}
	return "", fmt.Errorf("insert option %s: %w", name, err)
}
