// Package storage persists fetched interaction networks in a local SQLite
// database so they can be re-analyzed offline. Computed centrality tables
// and hub sets are never stored; they are recomputed on every analysis.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/tcxian/ppinet/internal/interaction"
)

// ErrNetworkNotFound is returned when a named network is not in the store.
var ErrNetworkNotFound = errors.New("network not found")

// NetworkMeta describes a stored network.
type NetworkMeta struct {
	Name         string    `json:"name"`
	Provider     string    `json:"provider"`
	Query        string    `json:"query"`
	Taxon        int       `json:"taxon"`
	FetchedAt    time.Time `json:"fetched_at"`
	Interactions int       `json:"interactions"`
}

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the network store at the given path, creating
// parent directories as needed.
func OpenDB(path string) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite doesn't support concurrent writes

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS networks (
			name TEXT PRIMARY KEY,
			provider TEXT NOT NULL,
			query TEXT NOT NULL,
			taxon INTEGER NOT NULL,
			fetched_at TEXT NOT NULL,
			interaction_count INTEGER NOT NULL
		);

		CREATE TABLE IF NOT EXISTS interactions (
			network TEXT NOT NULL,
			source_id TEXT NOT NULL,
			target_id TEXT NOT NULL,
			source_label TEXT NOT NULL,
			target_label TEXT NOT NULL,
			score REAL NOT NULL DEFAULT 0
		);

		CREATE INDEX IF NOT EXISTS idx_interactions_network ON interactions(network);
	`
	_, err := db.Exec(schema)
	return err
}

// SaveNetwork stores a fetched network under meta.Name, replacing any
// previous network with the same name.
func (d *DB) SaveNetwork(meta NetworkMeta, records []interaction.Record) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM interactions WHERE network = ?", meta.Name); err != nil {
		return fmt.Errorf("clearing interactions: %w", err)
	}

	_, err = tx.Exec(`
		INSERT OR REPLACE INTO networks (name, provider, query, taxon, fetched_at, interaction_count)
		VALUES (?, ?, ?, ?, ?, ?)
	`, meta.Name, meta.Provider, meta.Query, meta.Taxon, meta.FetchedAt.UTC().Format(time.RFC3339), len(records))
	if err != nil {
		return fmt.Errorf("inserting network: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO interactions (network, source_id, target_id, source_label, target_label, score)
		VALUES (?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing interactions insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.Exec(meta.Name, r.SourceID, r.TargetID, r.SourceLabel, r.TargetLabel, r.Score); err != nil {
			return fmt.Errorf("inserting interaction: %w", err)
		}
	}

	return tx.Commit()
}

// GetNetwork returns a stored network and its interaction records.
func (d *DB) GetNetwork(name string) (*NetworkMeta, []interaction.Record, error) {
	meta, err := d.getMeta(name)
	if err != nil {
		return nil, nil, err
	}

	rows, err := d.db.Query(`
		SELECT source_id, target_id, source_label, target_label, score
		FROM interactions
		WHERE network = ?
		ORDER BY rowid
	`, name)
	if err != nil {
		return nil, nil, fmt.Errorf("querying interactions: %w", err)
	}
	defer rows.Close()

	var records []interaction.Record
	for rows.Next() {
		var r interaction.Record
		if err := rows.Scan(&r.SourceID, &r.TargetID, &r.SourceLabel, &r.TargetLabel, &r.Score); err != nil {
			return nil, nil, fmt.Errorf("scanning interaction: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("reading interactions: %w", err)
	}

	return meta, records, nil
}

// getMeta returns the metadata row for a named network.
func (d *DB) getMeta(name string) (*NetworkMeta, error) {
	var meta NetworkMeta
	var fetchedAt string
	err := d.db.QueryRow(`
		SELECT name, provider, query, taxon, fetched_at, interaction_count
		FROM networks
		WHERE name = ?
	`, name).Scan(&meta.Name, &meta.Provider, &meta.Query, &meta.Taxon, &fetchedAt, &meta.Interactions)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNetworkNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("querying network: %w", err)
	}

	meta.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing fetched_at: %w", err)
	}

	return &meta, nil
}

// ListNetworks returns metadata for all stored networks ordered by name.
func (d *DB) ListNetworks() ([]NetworkMeta, error) {
	rows, err := d.db.Query(`
		SELECT name, provider, query, taxon, fetched_at, interaction_count
		FROM networks
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying networks: %w", err)
	}
	defer rows.Close()

	var metas []NetworkMeta
	for rows.Next() {
		var meta NetworkMeta
		var fetchedAt string
		if err := rows.Scan(&meta.Name, &meta.Provider, &meta.Query, &meta.Taxon, &fetchedAt, &meta.Interactions); err != nil {
			return nil, fmt.Errorf("scanning network: %w", err)
		}
		if meta.FetchedAt, err = time.Parse(time.RFC3339, fetchedAt); err != nil {
			return nil, fmt.Errorf("parsing fetched_at: %w", err)
		}
		metas = append(metas, meta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading networks: %w", err)
	}

	return metas, nil
}

// DeleteNetwork removes a stored network and its interactions.
func (d *DB) DeleteNetwork(name string) error {
	tx, err := d.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec("DELETE FROM networks WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("deleting network: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %q", ErrNetworkNotFound, name)
	}

	if _, err := tx.Exec("DELETE FROM interactions WHERE network = ?", name); err != nil {
		return fmt.Errorf("deleting interactions: %w", err)
	}

	return tx.Commit()
}
