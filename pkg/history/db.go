// Package history persists committed focal point changes to a sqlite
// database, one row per commit, so edits can be audited and undone across
// sessions. The cgo build uses mattn/go-sqlite3; pure-Go builds fall back to
// modernc.org/sqlite (see the driver_* files).
package history

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"focalpick/pkg/model"
)

// DB handles focal point history persistence
type DB struct {
	db *sql.DB
}

// OpenDB opens or creates the history database at the given path
func OpenDB(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open(driverName, dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	hdb := &DB{db: db}
	if err := hdb.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return hdb, nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

func (d *DB) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS focal_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		media_path TEXT NOT NULL,
		x REAL NOT NULL,
		y REAL NOT NULL,
		source TEXT NOT NULL,
		created_at DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_focal_history_path ON focal_history(media_path);
	`

	_, err := d.db.Exec(schema)
	return err
}

// Append inserts a new focal point change record
func (d *DB) Append(r *model.FocalRecord) error {
	result, err := d.db.Exec(`
		INSERT INTO focal_history (media_path, x, y, source, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, r.MediaPath, r.X, r.Y, string(r.Source), r.CreatedAt)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	r.ID = id
	return nil
}

// ForMedia returns all change records for a media path, newest first
func (d *DB) ForMedia(mediaPath string) ([]model.FocalRecord, error) {
	rows, err := d.db.Query(`
		SELECT id, media_path, x, y, source, created_at
		FROM focal_history
		WHERE media_path = ?
		ORDER BY created_at DESC, id DESC
	`, mediaPath)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []model.FocalRecord
	for rows.Next() {
		var r model.FocalRecord
		var source string
		if err := rows.Scan(&r.ID, &r.MediaPath, &r.X, &r.Y, &source, &r.CreatedAt); err != nil {
			return nil, err
		}
		r.Source = model.Source(source)
		records = append(records, r)
	}
	return records, rows.Err()
}

// Previous returns the change before the most recent one for a media path,
// which is the value an undo should restore. The second return is false when
// there is no earlier record.
func (d *DB) Previous(mediaPath string) (model.FocalRecord, bool, error) {
	records, err := d.ForMedia(mediaPath)
	if err != nil {
		return model.FocalRecord{}, false, err
	}
	if len(records) < 2 {
		return model.FocalRecord{}, false, nil
	}
	return records[1], true, nil
}

// Prune keeps only the newest keep records per media path
func (d *DB) Prune(mediaPath string, keep int) error {
	if keep < 0 {
		keep = 0
	}
	_, err := d.db.Exec(`
		DELETE FROM focal_history
		WHERE media_path = ?
		AND id NOT IN (
			SELECT id FROM focal_history
			WHERE media_path = ?
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)
	`, mediaPath, mediaPath, keep)
	return err
}
