package catalog

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Entry records one file placed into the sorted tree.
type Entry struct {
	SourcePath string
	DestPath   string
	Group      string
	Digest     string
	Size       int64
	SortedAt   time.Time
}

// Catalog persists sorted-file records in a SQLite database so repeated
// runs can be audited and queried.
type Catalog struct {
	db *sql.DB
}

// Open opens (creating if needed) the catalog at path.
func Open(path string) (*Catalog, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog %s: %w", path, err)
	}
	query := `
	CREATE TABLE IF NOT EXISTS sorted_files (
		dest_path   TEXT PRIMARY KEY,
		source_path TEXT NOT NULL,
		group_name  TEXT NOT NULL,
		digest      TEXT,
		size        INTEGER,
		sorted_at   TIMESTAMP
	);
	`
	if _, err := db.Exec(query); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create catalog schema: %w", err)
	}
	return &Catalog{db: db}, nil
}

// Record upserts the entry keyed by destination path.
func (c *Catalog) Record(e Entry) error {
	_, err := c.db.Exec(
		`INSERT OR REPLACE INTO sorted_files (dest_path, source_path, group_name, digest, size, sorted_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.DestPath, e.SourcePath, e.Group, e.Digest, e.Size, e.SortedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to record %s: %w", e.DestPath, err)
	}
	return nil
}

// Count reports the number of cataloged files.
func (c *Catalog) Count() (int, error) {
	var n int
	if err := c.db.QueryRow(`SELECT COUNT(*) FROM sorted_files`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count catalog entries: %w", err)
	}
	return n, nil
}

// GroupCounts reports how many files landed in each group.
func (c *Catalog) GroupCounts() (map[string]int, error) {
	rows, err := c.db.Query(`SELECT group_name, COUNT(*) FROM sorted_files GROUP BY group_name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query group counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var group string
		var n int
		if err := rows.Scan(&group, &n); err != nil {
			return nil, fmt.Errorf("failed to scan group count: %w", err)
		}
		counts[group] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read group counts: %w", err)
	}
	return counts, nil
}

func (c *Catalog) Close() error {
	return c.db.Close()
}
