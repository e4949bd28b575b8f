// Package testutil provides shared database helpers for repository and
// service tests.
package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"polyglot/internal/db"
	"polyglot/internal/model"
	"polyglot/pkg/snowflake"
)

// snowflakeOnce ensures snowflake is initialized exactly once across parallel
// tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory SQLite database and runs all migrations.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is not usable inside sync.Once; panic instead
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared-cache mode so the in-memory database survives across the pool's
	// connections; a unique name per test avoids cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}

// SeedContentType inserts a content type row and returns its ID.
func SeedContentType(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()

	id := snowflake.NextID()
	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO content_types (id, name, created_at, updated_at) VALUES (?, ?, ?, ?)`,
		id, name, now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed content type: %v", err)
	}

	return id
}

// SeedTranslation inserts a translation record and returns its ID.
func SeedTranslation(t *testing.T, db *sql.DB, tr model.Translation) int64 {
	t.Helper()

	if tr.ID == 0 {
		tr.ID = snowflake.NextID()
	}
	if tr.Language == "" {
		tr.Language = "en"
	}

	now := time.Now().UTC().Format(time.RFC3339Nano)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO translations (id, content_type, object_id, field, language, text, obsolete, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		tr.ID, tr.ContentType, tr.ObjectID, tr.Field, tr.Language, tr.Text, boolToInt(tr.Obsolete), now, now,
	)
	if err != nil {
		t.Fatalf("failed to seed translation: %v", err)
	}

	return tr.ID
}

// SeedSetting inserts a settings row.
func SeedSetting(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)

	_, err := db.ExecContext(
		context.Background(),
		`INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)`,
		key, value, now,
	)
	if err != nil {
		t.Fatalf("failed to seed setting: %v", err)
	}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
