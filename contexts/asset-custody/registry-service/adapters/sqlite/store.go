// Package sqlite provides a single-file registry store for local use by the
// registryctl command.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"cartulary/contexts/asset-custody/registry-service/domain/entities"
	domainerrors "cartulary/contexts/asset-custody/registry-service/domain/errors"
	"cartulary/contexts/asset-custody/registry-service/domain/valueobjects"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS asset_records (
	asset_id         INTEGER PRIMARY KEY,
	name             TEXT NOT NULL,
	owner            TEXT NOT NULL,
	payload_size     INTEGER NOT NULL,
	registered_at    INTEGER NOT NULL,
	attribute_schema TEXT NOT NULL,
	tags             TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS permission_entries (
	asset_id   INTEGER NOT NULL,
	grantee    TEXT NOT NULL,
	authorized INTEGER NOT NULL,
	PRIMARY KEY (asset_id, grantee)
);
CREATE TABLE IF NOT EXISTS registry_counter (
	id    INTEGER PRIMARY KEY CHECK (id = 1),
	value INTEGER NOT NULL
);
INSERT OR IGNORE INTO registry_counter (id, value) VALUES (1, 0);
`

// Store persists registry state in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens (or creates) a SQLite registry store at path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func (s *Store) CreateAsset(ctx context.Context, record entities.AssetRecord) (uint64, error) {
	tags, err := json.Marshal(record.Tags)
	if err != nil {
		return 0, err
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var assetID uint64
	err = tx.QueryRowContext(ctx,
		`UPDATE registry_counter SET value = value + 1 WHERE id = 1 RETURNING value`,
	).Scan(&assetID)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO asset_records (asset_id, name, owner, payload_size, registered_at, attribute_schema, tags)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		assetID, record.Name, record.Owner.String(), record.PayloadSize,
		record.RegisteredAt, record.AttributeSchema, string(tags),
	)
	if err != nil {
		return 0, err
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO permission_entries (asset_id, grantee, authorized) VALUES (?, ?, 1)`,
		assetID, record.Owner.String(),
	)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return assetID, nil
}

func (s *Store) GetAsset(ctx context.Context, assetID uint64) (entities.AssetRecord, error) {
	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT asset_id, name, owner, payload_size, registered_at, attribute_schema, tags
		 FROM asset_records WHERE asset_id = ?`, assetID)

	var record entities.AssetRecord
	var owner string
	var tagsRaw string
	err := row.Scan(&record.AssetID, &record.Name, &owner, &record.PayloadSize,
		&record.RegisteredAt, &record.AttributeSchema, &tagsRaw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.AssetRecord{}, domainerrors.ErrAssetNotFound
		}
		return entities.AssetRecord{}, err
	}
	record.Owner = valueobjects.Principal(owner)
	if err := json.Unmarshal([]byte(tagsRaw), &record.Tags); err != nil {
		return entities.AssetRecord{}, fmt.Errorf("decode tags: %w", err)
	}
	return record, nil
}

func (s *Store) UpdateAsset(ctx context.Context, record entities.AssetRecord) error {
	tags, err := json.Marshal(record.Tags)
	if err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE asset_records SET name = ?, payload_size = ?, attribute_schema = ?, tags = ?
		 WHERE asset_id = ?`,
		record.Name, record.PayloadSize, record.AttributeSchema, string(tags), record.AssetID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (s *Store) UpdateOwner(ctx context.Context, assetID uint64, owner valueobjects.Principal) error {
	result, err := s.sqlDB.ExecContext(ctx,
		`UPDATE asset_records SET owner = ? WHERE asset_id = ?`,
		owner.String(), assetID,
	)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

// DeleteAsset removes the record row; permission rows for the id stay behind.
func (s *Store) DeleteAsset(ctx context.Context, assetID uint64) error {
	result, err := s.sqlDB.ExecContext(ctx,
		`DELETE FROM asset_records WHERE asset_id = ?`, assetID)
	if err != nil {
		return err
	}
	return requireRowAffected(result)
}

func (s *Store) CounterValue(ctx context.Context) (uint64, error) {
	var value uint64
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT value FROM registry_counter WHERE id = 1`).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, nil
		}
		return 0, err
	}
	return value, nil
}

func (s *Store) ExplicitGrant(ctx context.Context, assetID uint64, grantee valueobjects.Principal) (bool, error) {
	var authorized bool
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT authorized FROM permission_entries WHERE asset_id = ? AND grantee = ?`,
		assetID, grantee.String(),
	).Scan(&authorized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return authorized, nil
}

func requireRowAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domainerrors.ErrAssetNotFound
	}
	return nil
}
