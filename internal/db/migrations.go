package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Base schema - uses Snowflake IDs (no AUTOINCREMENT)
const baseSchema = `
CREATE TABLE IF NOT EXISTS content_types (
  id INTEGER PRIMARY KEY,
  name TEXT NOT NULL UNIQUE,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  content_type TEXT NOT NULL,
  object_id TEXT NOT NULL,
  field TEXT NOT NULL,
  language TEXT NOT NULL,
  text TEXT NOT NULL,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE UNIQUE INDEX IF NOT EXISTS idx_translations_identity
  ON translations(content_type, object_id, field, language);

CREATE INDEX IF NOT EXISTS idx_translations_pair ON translations(content_type, field);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add obsolete column to translations if not exists.
	// Early deployments had no way to keep obsolete records around; the flag
	// supports the non-destructive sync policy.
	exists, err := hasColumn(db, "translations", "obsolete")
	if err != nil {
		return fmt.Errorf("check obsolete column: %w", err)
	}
	if !exists {
		if _, err := db.Exec(`ALTER TABLE translations ADD COLUMN obsolete INTEGER NOT NULL DEFAULT 0`); err != nil {
			return fmt.Errorf("add obsolete column: %w", err)
		}
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_translations_obsolete ON translations(obsolete)`); err != nil {
		return fmt.Errorf("create idx_translations_obsolete: %w", err)
	}

	// Migration 2: Create sync_runs table for reconciliation audit records
	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS sync_runs (
			id TEXT PRIMARY KEY,
			dry_run INTEGER NOT NULL DEFAULT 0,
			policy TEXT NOT NULL,
			scanned INTEGER NOT NULL DEFAULT 0,
			obsolete INTEGER NOT NULL DEFAULT 0,
			deleted INTEGER NOT NULL DEFAULT 0,
			flagged INTEGER NOT NULL DEFAULT 0,
			started_at TEXT NOT NULL,
			finished_at TEXT NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("create sync_runs table: %w", err)
	}

	if _, err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_sync_runs_started_at ON sync_runs(started_at)`); err != nil {
		return fmt.Errorf("create idx_sync_runs_started_at: %w", err)
	}

	// Migration 3: Normalize content type names and merge case-variant rows.
	if err := migrateContentTypeNormalization(db); err != nil {
		return fmt.Errorf("migrate content type normalization: %w", err)
	}

	return nil
}

func hasColumn(db *sql.DB, table string, column string) (bool, error) {
	var count int
	if err := db.QueryRow(
		fmt.Sprintf(`SELECT COUNT(*) FROM pragma_table_info('%s') WHERE name = ?`, table),
		column,
	).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// migrateContentTypeNormalization lowercases content type names in both
// content_types and translations. Names were originally stored verbatim, so
// historical databases can contain "Article" and "article" rows referring to
// the same model.
func migrateContentTypeNormalization(db *sql.DB) error {
	var pending int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM translations WHERE content_type != lower(trim(content_type))`,
	).Scan(&pending); err != nil {
		return fmt.Errorf("check translation names: %w", err)
	}

	var pendingTypes int
	if err := db.QueryRow(
		`SELECT COUNT(*) FROM content_types WHERE name != lower(trim(name))`,
	).Scan(&pendingTypes); err != nil {
		return fmt.Errorf("check content type names: %w", err)
	}

	if pending == 0 && pendingTypes == 0 {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if pendingTypes > 0 {
		if err := mergeContentTypeRows(tx); err != nil {
			return err
		}
	}

	if pending > 0 {
		// Normalizing can collide with an already-normalized duplicate of the
		// same record; the older row loses.
		if _, err := tx.Exec(`
			DELETE FROM translations WHERE id IN (
				SELECT t.id FROM translations t
				JOIN translations n
				  ON n.content_type = lower(trim(t.content_type))
				 AND n.object_id = t.object_id
				 AND n.field = t.field
				 AND n.language = t.language
				 AND n.id != t.id
				WHERE t.content_type != lower(trim(t.content_type))
			)
		`); err != nil {
			return fmt.Errorf("drop colliding translations: %w", err)
		}
		if _, err := tx.Exec(
			`UPDATE translations SET content_type = lower(trim(content_type)) WHERE content_type != lower(trim(content_type))`,
		); err != nil {
			return fmt.Errorf("normalize translation names: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func mergeContentTypeRows(tx *sql.Tx) error {
	rows, err := tx.Query(`SELECT id, name FROM content_types ORDER BY id`)
	if err != nil {
		return fmt.Errorf("query content types: %w", err)
	}
	defer rows.Close()

	type ctRow struct {
		id   int64
		name string
	}
	keep := make(map[string]int64)
	var duplicates []int64
	var renames []ctRow

	for rows.Next() {
		var row ctRow
		if err := rows.Scan(&row.id, &row.name); err != nil {
			return fmt.Errorf("scan content type: %w", err)
		}
		normalized := strings.ToLower(strings.TrimSpace(row.name))
		if _, ok := keep[normalized]; ok {
			duplicates = append(duplicates, row.id)
			continue
		}
		keep[normalized] = row.id
		if row.name != normalized {
			renames = append(renames, ctRow{id: row.id, name: normalized})
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate content types: %w", err)
	}

	for _, rename := range renames {
		if _, err := tx.Exec(`UPDATE content_types SET name = ? WHERE id = ?`, rename.name, rename.id); err != nil {
			return fmt.Errorf("rename content type: %w", err)
		}
	}
	for _, id := range duplicates {
		if _, err := tx.Exec(`DELETE FROM content_types WHERE id = ?`, id); err != nil {
			return fmt.Errorf("delete duplicate content type: %w", err)
		}
	}
	return nil
}
