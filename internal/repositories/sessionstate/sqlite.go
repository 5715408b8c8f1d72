package sessionstate

import (
	"context"
	"database/sql"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-sheet/internal/entities"
	"github.com/KirkDiggler/rpg-sheet/internal/errors"
	"github.com/KirkDiggler/rpg-sheet/internal/pkg/clock"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS session_states (
	entity_type TEXT NOT NULL,
	entity_id   TEXT NOT NULL,
	state       TEXT NOT NULL,
	updated_at  INTEGER NOT NULL,
	PRIMARY KEY (entity_type, entity_id)
);
CREATE TABLE IF NOT EXISTS active_infusions (
	position INTEGER PRIMARY KEY,
	name     TEXT NOT NULL,
	item     TEXT NOT NULL,
	owner    TEXT NOT NULL,
	bonus    INTEGER NOT NULL DEFAULT 0
);`

// SQLiteConfig holds the settings for the SQLite store
type SQLiteConfig struct {
	Path  string
	Clock clock.Clock
}

// Validate checks the database path
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(c.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// SQLiteRepository stores session state in a local SQLite file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLite opens (creating if needed) the database and applies the schema
func NewSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}
	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to apply sqlite schema")
	}

	return &SQLiteRepository{db: db, clock: c}, nil
}

// Close closes the database handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Get loads the state for an entity
func (r *SQLiteRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}

	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT state FROM session_states WHERE entity_type = ? AND entity_id = ?`,
		input.Entity.GetType(), input.Entity.GetID(),
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.NotFoundf("session state for %s not found", input.Entity.GetID())
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get session state for %s", input.Entity.GetID())
	}

	var state entities.SessionState
	if err := json.Unmarshal([]byte(data), &state); err != nil {
		return nil, errors.Wrapf(err, "failed to decode session state for %s", input.Entity.GetID())
	}
	return &GetOutput{State: &state}, nil
}

// Save upserts the state
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateEntity(input.Entity); err != nil {
		return nil, err
	}
	if input.State == nil {
		return nil, errors.InvalidArgument("state is required")
	}

	state := input.State.Clone()
	state.CharacterID = input.Entity.GetID()
	state.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(state)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode session state")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO session_states (entity_type, entity_id, state, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (entity_type, entity_id)
		 DO UPDATE SET state = excluded.state, updated_at = excluded.updated_at`,
		input.Entity.GetType(), input.Entity.GetID(), string(data), toMillis(state.UpdatedAt),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to save session state for %s", input.Entity.GetID())
	}

	slog.DebugContext(ctx, "Session state saved", "entity_type", input.Entity.GetType(), "entity_id", input.Entity.GetID())
	return &SaveOutput{State: state}, nil
}

// Delete removes the state
func (r *SQLiteRepository) Delete(ctx context.Context, input DeleteInput) error {
	if err := validateEntity(input.Entity); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM session_states WHERE entity_type = ? AND entity_id = ?`,
		input.Entity.GetType(), input.Entity.GetID(),
	)
	if err != nil {
		return errors.Wrapf(err, "failed to delete session state for %s", input.Entity.GetID())
	}
	return nil
}

// ListActiveInfusions returns the shared list in saved order
func (r *SQLiteRepository) ListActiveInfusions(ctx context.Context) (*ListActiveInfusionsOutput, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT name, item, owner, bonus FROM active_infusions ORDER BY position`)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active infusions")
	}
	defer func() { _ = rows.Close() }()

	list := []entities.ActiveInfusion{}
	for rows.Next() {
		var inf entities.ActiveInfusion
		if err := rows.Scan(&inf.Name, &inf.Item, &inf.Owner, &inf.Bonus); err != nil {
			return nil, errors.Wrap(err, "failed to scan active infusion")
		}
		list = append(list, inf)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to list active infusions")
	}
	return &ListActiveInfusionsOutput{Infusions: list}, nil
}

// SaveActiveInfusions replaces the shared list in one transaction
func (r *SQLiteRepository) SaveActiveInfusions(ctx context.Context, input SaveActiveInfusionsInput) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `DELETE FROM active_infusions`); err != nil {
		return errors.Wrap(err, "failed to clear active infusions")
	}
	for i, inf := range input.Infusions {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO active_infusions (position, name, item, owner, bonus) VALUES (?, ?, ?, ?, ?)`,
			i, inf.Name, inf.Item, inf.Owner, inf.Bonus,
		)
		if err != nil {
			return errors.Wrapf(err, "failed to insert active infusion %s", inf.Name)
		}
	}
	if err = tx.Commit(); err != nil {
		return errors.Wrap(err, "failed to commit active infusions")
	}
	return nil
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

var _ Repository = (*SQLiteRepository)(nil)
