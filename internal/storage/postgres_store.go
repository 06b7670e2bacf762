package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	_ "github.com/lib/pq"

	"github.com/jmdelaney/dayglow/internal/models"
)

// PostgresStore is the remote tier: one row per user holding the full
// document as JSONB, replaced wholesale on every save.
type PostgresStore struct {
	connStr string
	db      *sql.DB
}

func NewPostgresStore(connStr string) *PostgresStore {
	return &PostgresStore{connStr: connStr}
}

// IsPostgresConnString reports whether the given config value is a PostgreSQL
// connection string rather than a local file path.
func IsPostgresConnString(s string) bool {
	return strings.HasPrefix(s, "postgres://") || strings.HasPrefix(s, "postgresql://")
}

// HasEmbeddedCredentials reports whether a connection string carries a
// password. Credentials must come from the environment, .pgpass, or the OS
// keyring instead.
func HasEmbeddedCredentials(connStr string) bool {
	if IsPostgresConnString(connStr) {
		u, err := url.Parse(connStr)
		if err != nil {
			return false
		}
		if u.User != nil {
			if _, has := u.User.Password(); has {
				return true
			}
		}
		return false
	}

	// DSN format: space-separated key=value pairs.
	for _, part := range strings.Fields(connStr) {
		kv := strings.SplitN(part, "=", 2)
		if len(kv) == 2 && strings.EqualFold(kv[0], "password") {
			return true
		}
	}
	return false
}

func (s *PostgresStore) ensureOpen(ctx context.Context) error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	const ddl = `
	CREATE TABLE IF NOT EXISTS documents (
		user_id     TEXT PRIMARY KEY,
		data        JSONB NOT NULL,
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`
	if _, err := db.ExecContext(ctx, ddl); err != nil {
		db.Close()
		return fmt.Errorf("failed to create documents table: %w", err)
	}

	s.db = db
	return nil
}

func (s *PostgresStore) Load(ctx context.Context, userID string) (models.Document, error) {
	if err := s.ensureOpen(ctx); err != nil {
		return models.Document{}, err
	}

	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM documents WHERE user_id = $1", userID).Scan(&data)
	if err == sql.ErrNoRows {
		return models.Document{}, ErrNoDocument
	}
	if err != nil {
		return models.Document{}, fmt.Errorf("failed to fetch document: %w", err)
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Document{}, fmt.Errorf("failed to parse document: %w", err)
	}
	if doc.DailyData == nil {
		doc.DailyData = make(map[string]models.DailyRecord)
	}

	return doc, nil
}

func (s *PostgresStore) Save(ctx context.Context, userID string, doc models.Document) error {
	if err := s.ensureOpen(ctx); err != nil {
		return err
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to serialize document: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO documents (user_id, data, updated_at) VALUES ($1, $2, now())
		ON CONFLICT (user_id) DO UPDATE SET data = EXCLUDED.data, updated_at = now()`,
		userID, data)
	if err != nil {
		return fmt.Errorf("failed to upsert document: %w", err)
	}

	return nil
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.ensureOpen(ctx)
}

func (s *PostgresStore) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}
