package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/claranceliberi/uni-resource-hub/internal/client/migrations"
	"github.com/claranceliberi/uni-resource-hub/internal/client/models"
	"github.com/claranceliberi/uni-resource-hub/internal/client/repositories/metadata"
	"github.com/claranceliberi/uni-resource-hub/internal/dbx"
)

// Fixed storage keys for the two durable session entries.
const (
	keyAccessToken = "access_token"
	keyIdentity    = "identity"
)

// InitDatabase opens the client's local SQLite database and applies the
// embedded migrations.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return db, nil
}

func runMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, db, ".")
}

// Store persists the session credential and the cached identity. It
// implements api.TokenSource, so the HTTP layer reads the credential from
// durable storage on every outbound request.
type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// AccessToken returns the persisted credential, or "" when no session
// exists.
func (s *Store) AccessToken(ctx context.Context) (string, error) {
	repo := metadata.NewSQLiteRepository(s.db)
	value, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", err
	}
	return string(value), nil
}

// SaveToken persists the credential alone. Used mid-login, after the token
// endpoint succeeded but before the identity has been fetched.
func (s *Store) SaveToken(ctx context.Context, token string) error {
	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Set(ctx, keyAccessToken, []byte(token))
}

// Save persists the credential and identity together in one transaction.
func (s *Store) Save(ctx context.Context, token string, identity *models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyAccessToken, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, keyIdentity, raw)
	})
}

// SaveIdentity replaces the cached identity, leaving the credential as is.
func (s *Store) SaveIdentity(ctx context.Context, identity *models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	repo := metadata.NewSQLiteRepository(s.db)
	return repo.Set(ctx, keyIdentity, raw)
}

// Load restores the persisted pair. A session counts as present only when
// both entries exist; a lone credential (from an interrupted login) is
// reported as no session.
func (s *Store) Load(ctx context.Context) (string, *models.Identity, error) {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, keyAccessToken)
	if err != nil {
		return "", nil, err
	}
	raw, err := repo.Get(ctx, keyIdentity)
	if err != nil {
		return "", nil, err
	}
	if len(token) == 0 || len(raw) == 0 {
		return "", nil, nil
	}

	var identity models.Identity
	if err := json.Unmarshal(raw, &identity); err != nil {
		return "", nil, fmt.Errorf("unmarshal stored identity: %w", err)
	}
	return string(token), &identity, nil
}

// Clear removes both entries in one transaction. Clearing an already empty
// store is a no-op.
func (s *Store) Clear(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, keyAccessToken); err != nil {
			return err
		}
		return repo.Delete(ctx, keyIdentity)
	})
}
