//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"polyglot/internal/model"
	"polyglot/pkg/snowflake"
)

// TranslationRepository defines the interface for translation record storage.
type TranslationRepository interface {
	Upsert(ctx context.Context, tr model.Translation) (model.Translation, error)
	GetByID(ctx context.Context, id int64) (*model.Translation, error)
	Delete(ctx context.Context, id int64) error
	ListForObject(ctx context.Context, contentType, objectID, language string) ([]model.Translation, error)
	ListForObjects(ctx context.Context, contentType string, objectIDs []string, language string) ([]model.Translation, error)
	ReplaceForObject(ctx context.Context, contentType, objectID, language string, texts map[string]string) ([]model.Translation, error)
	DistinctFieldPairs(ctx context.Context) ([]model.FieldPair, error)
	CountByPair(ctx context.Context, pair model.FieldPair) (int64, error)
	CountByContentType(ctx context.Context) (map[string]int64, error)
	Count(ctx context.Context) (int64, error)
	DeleteByPairs(ctx context.Context, pairs []model.FieldPair) (int64, error)
	FlagByPairs(ctx context.Context, pairs []model.FieldPair) (int64, error)
}

type translationRepository struct {
	db *sql.DB
}

// NewTranslationRepository creates a new translation repository.
func NewTranslationRepository(db *sql.DB) TranslationRepository {
	return &translationRepository{db: db}
}

const translationColumns = `id, content_type, object_id, field, language, text, obsolete, created_at, updated_at`

// Upsert inserts a record or replaces the text of the existing one with the
// same (content_type, object_id, field, language) identity. Writing a record
// also clears its obsolete flag.
func (r *translationRepository) Upsert(ctx context.Context, tr model.Translation) (model.Translation, error) {
	id := snowflake.NextID()
	now := time.Now().UTC()
	nowStr := formatTime(now)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO translations (id, content_type, object_id, field, language, text, obsolete, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
		ON CONFLICT(content_type, object_id, field, language)
		DO UPDATE SET text = excluded.text, obsolete = 0, updated_at = excluded.updated_at
	`, id, tr.ContentType, tr.ObjectID, tr.Field, tr.Language, tr.Text, nowStr, nowStr)
	if err != nil {
		return model.Translation{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+translationColumns+` FROM translations
		WHERE content_type = ? AND object_id = ? AND field = ? AND language = ?
	`, tr.ContentType, tr.ObjectID, tr.Field, tr.Language)

	stored, err := scanTranslationRow(row)
	if err != nil {
		return model.Translation{}, err
	}
	return *stored, nil
}

// GetByID retrieves a translation by ID. Returns nil when absent.
func (r *translationRepository) GetByID(ctx context.Context, id int64) (*model.Translation, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+translationColumns+` FROM translations WHERE id = ?
	`, id)
	tr, err := scanTranslationRow(row)
	if err != nil {
		return nil, err
	}
	return tr, nil
}

// Delete removes a translation by ID.
func (r *translationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE id = ?`, id)
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

// ListForObject retrieves the non-obsolete records for one object in one
// language, ordered by field.
func (r *translationRepository) ListForObject(ctx context.Context, contentType, objectID, language string) ([]model.Translation, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+translationColumns+` FROM translations
		WHERE content_type = ? AND object_id = ? AND language = ? AND obsolete = 0
		ORDER BY field
	`, contentType, objectID, language)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTranslations(rows)
}

// ListForObjects retrieves the non-obsolete records for a batch of objects in
// one language, ordered by object then field.
func (r *translationRepository) ListForObjects(ctx context.Context, contentType string, objectIDs []string, language string) ([]model.Translation, error) {
	if len(objectIDs) == 0 {
		return nil, nil
	}

	placeholders := make([]string, 0, len(objectIDs))
	args := make([]interface{}, 0, len(objectIDs)+2)
	args = append(args, contentType)
	for _, objectID := range objectIDs {
		placeholders = append(placeholders, "?")
		args = append(args, objectID)
	}
	args = append(args, language)

	query := fmt.Sprintf(`
		SELECT `+translationColumns+` FROM translations
		WHERE content_type = ? AND object_id IN (%s) AND language = ? AND obsolete = 0
		ORDER BY object_id, field
	`, strings.Join(placeholders, ","))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTranslations(rows)
}

// ReplaceForObject atomically replaces every record of one object in one
// language with the supplied field texts.
func (r *translationRepository) ReplaceForObject(ctx context.Context, contentType, objectID, language string, texts map[string]string) ([]model.Translation, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `
		DELETE FROM translations WHERE content_type = ? AND object_id = ? AND language = ?
	`, contentType, objectID, language); err != nil {
		return nil, fmt.Errorf("delete old translations: %w", err)
	}

	now := time.Now().UTC()
	nowStr := formatTime(now)
	created := make([]model.Translation, 0, len(texts))

	for field, text := range texts {
		id := snowflake.NextID()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO translations (id, content_type, object_id, field, language, text, obsolete, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, 0, ?, ?)
		`, id, contentType, objectID, field, language, text, nowStr, nowStr); err != nil {
			return nil, fmt.Errorf("insert translation: %w", err)
		}
		created = append(created, model.Translation{
			ID:          id,
			ContentType: contentType,
			ObjectID:    objectID,
			Field:       field,
			Language:    language,
			Text:        text,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	return created, nil
}

// DistinctFieldPairs returns every stored (content_type, field) combination,
// including obsolete-flagged rows so re-runs can re-evaluate them.
func (r *translationRepository) DistinctFieldPairs(ctx context.Context) ([]model.FieldPair, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT DISTINCT content_type, field FROM translations ORDER BY content_type, field
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pairs []model.FieldPair
	for rows.Next() {
		var pair model.FieldPair
		if err := rows.Scan(&pair.ContentType, &pair.Field); err != nil {
			return nil, err
		}
		pairs = append(pairs, pair)
	}
	return pairs, rows.Err()
}

// CountByPair counts the records stored for one (content_type, field) pair.
// Rows already flagged obsolete are excluded, so a pair flagged on an earlier
// run counts zero.
func (r *translationRepository) CountByPair(ctx context.Context, pair model.FieldPair) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM translations WHERE content_type = ? AND field = ? AND obsolete = 0
	`, pair.ContentType, pair.Field).Scan(&count)
	return count, err
}

// CountByContentType returns record counts grouped by content type.
func (r *translationRepository) CountByContentType(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT content_type, COUNT(*) FROM translations WHERE obsolete = 0 GROUP BY content_type
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var name string
		var count int64
		if err := rows.Scan(&name, &count); err != nil {
			return nil, err
		}
		counts[name] = count
	}
	return counts, rows.Err()
}

// Count returns the total number of stored records.
func (r *translationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM translations`).Scan(&count)
	return count, err
}

// DeleteByPairs hard-deletes every record whose (content_type, field) pair is
// in the given set. All pairs are handled in one transaction so a failed run
// leaves the store untouched.
func (r *translationRepository) DeleteByPairs(ctx context.Context, pairs []model.FieldPair) (int64, error) {
	return r.applyToPairs(ctx, pairs, `DELETE FROM translations WHERE content_type = ? AND field = ?`)
}

// FlagByPairs marks matching records obsolete instead of deleting them.
// Already-flagged rows are left alone so repeated runs report zero changes.
func (r *translationRepository) FlagByPairs(ctx context.Context, pairs []model.FieldPair) (int64, error) {
	return r.applyToPairs(ctx, pairs,
		`UPDATE translations SET obsolete = 1, updated_at = ? WHERE content_type = ? AND field = ? AND obsolete = 0`,
		formatTime(time.Now().UTC()))
}

func (r *translationRepository) applyToPairs(ctx context.Context, pairs []model.FieldPair, query string, prefix ...interface{}) (int64, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var affected int64
	for _, pair := range pairs {
		args := append(append([]interface{}{}, prefix...), pair.ContentType, pair.Field)
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("apply pair (%s, %s): %w", pair.ContentType, pair.Field, err)
		}
		rows, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		affected += rows
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit tx: %w", err)
	}
	return affected, nil
}

func scanTranslationRow(row *sql.Row) (*model.Translation, error) {
	var tr model.Translation
	var obsolete int
	var createdAt, updatedAt string
	if err := row.Scan(&tr.ID, &tr.ContentType, &tr.ObjectID, &tr.Field, &tr.Language, &tr.Text, &obsolete, &createdAt, &updatedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	tr.Obsolete = obsolete != 0
	tr.CreatedAt, _ = parseTime(createdAt)
	tr.UpdatedAt, _ = parseTime(updatedAt)
	return &tr, nil
}

func collectTranslations(rows *sql.Rows) ([]model.Translation, error) {
	var translations []model.Translation
	for rows.Next() {
		var tr model.Translation
		var obsolete int
		var createdAt, updatedAt string
		if err := rows.Scan(&tr.ID, &tr.ContentType, &tr.ObjectID, &tr.Field, &tr.Language, &tr.Text, &obsolete, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		tr.Obsolete = obsolete != 0
		tr.CreatedAt, _ = parseTime(createdAt)
		tr.UpdatedAt, _ = parseTime(updatedAt)
		translations = append(translations, tr)
	}
	return translations, rows.Err()
}
