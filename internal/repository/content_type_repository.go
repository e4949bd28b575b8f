//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"time"

	"polyglot/internal/model"
	"polyglot/pkg/snowflake"
)

// ContentTypeRepository defines the interface for content type storage.
type ContentTypeRepository interface {
	Ensure(ctx context.Context, name string) (*model.ContentType, error)
	GetByName(ctx context.Context, name string) (*model.ContentType, error)
	List(ctx context.Context) ([]model.ContentType, error)
	Delete(ctx context.Context, name string) error
}

type contentTypeRepository struct {
	db *sql.DB
}

// NewContentTypeRepository creates a new content type repository.
func NewContentTypeRepository(db *sql.DB) ContentTypeRepository {
	return &contentTypeRepository{db: db}
}

// Ensure returns the content type with the given name, creating it first if
// it does not exist yet.
func (r *contentTypeRepository) Ensure(ctx context.Context, name string) (*model.ContentType, error) {
	existing, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	id := snowflake.NextID()
	now := time.Now().UTC()
	nowStr := formatTime(now)

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO content_types (id, name, created_at, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(name) DO NOTHING
	`, id, name, nowStr, nowStr)
	if err != nil {
		return nil, err
	}

	// Re-read: a concurrent Ensure may have won the insert race.
	return r.GetByName(ctx, name)
}

// GetByName retrieves a content type by name. Returns nil when absent.
func (r *contentTypeRepository) GetByName(ctx context.Context, name string) (*model.ContentType, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, name, created_at, updated_at FROM content_types WHERE name = ?
	`, name)
	return scanContentType(row)
}

// List retrieves all content types ordered by name.
func (r *contentTypeRepository) List(ctx context.Context) ([]model.ContentType, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at FROM content_types ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []model.ContentType
	for rows.Next() {
		var ct model.ContentType
		var createdAt, updatedAt string
		if err := rows.Scan(&ct.ID, &ct.Name, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		ct.CreatedAt, _ = parseTime(createdAt)
		ct.UpdatedAt, _ = parseTime(updatedAt)
		types = append(types, ct)
	}
	return types, rows.Err()
}

// Delete removes a content type row by name.
func (r *contentTypeRepository) Delete(ctx context.Context, name string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM content_types WHERE name = ?`, name)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func scanContentType(row *sql.Row) (*model.ContentType, error) {
	var ct model.ContentType
	var createdAt, updatedAt string
	if err := row.Scan(&ct.ID, &ct.Name, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	ct.CreatedAt, _ = parseTime(createdAt)
	ct.UpdatedAt, _ = parseTime(updatedAt)
	return &ct, nil
}
