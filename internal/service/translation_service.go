//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"polyglot/internal/config"
	"polyglot/internal/model"
	"polyglot/internal/repository"
	"polyglot/pkg/sanitizer"
)

// TranslationService reads and writes translation records for application
// objects. All writes are validated against the declared schema.
type TranslationService interface {
	Set(ctx context.Context, contentType, objectID, field, lang, text string) (model.Translation, error)
	Delete(ctx context.Context, id int64) error
	GetForObject(ctx context.Context, contentType, objectID, lang string) (map[string]string, error)
	GetForObjects(ctx context.Context, contentType string, objectIDs []string, lang string) (map[string]map[string]string, error)
	Replace(ctx context.Context, contentType, objectID, lang string, texts map[string]string) ([]model.Translation, error)
	ListContentTypes(ctx context.Context) ([]model.ContentTypeStats, error)
	EnsureDeclared(ctx context.Context) error
}

type translationService struct {
	schema       *config.Schema
	translations repository.TranslationRepository
	contentTypes repository.ContentTypeRepository
	languages    LanguageService
}

// NewTranslationService creates a new translation service.
func NewTranslationService(
	schema *config.Schema,
	translations repository.TranslationRepository,
	contentTypes repository.ContentTypeRepository,
	languages LanguageService,
) TranslationService {
	return &translationService{
		schema:       schema,
		translations: translations,
		contentTypes: contentTypes,
		languages:    languages,
	}
}

// Set validates and upserts one record. The text is sanitized according to
// the field declaration; text that is empty after sanitization is rejected.
func (s *translationService) Set(ctx context.Context, contentType, objectID, field, lang, text string) (model.Translation, error) {
	contentType = normalizeName(contentType)
	field = strings.TrimSpace(field)
	objectID = strings.TrimSpace(objectID)
	if objectID == "" {
		return model.Translation{}, ErrInvalid
	}
	if !s.schema.HasField(contentType, field) {
		return model.Translation{}, &UndeclaredFieldError{ContentType: contentType, Field: field}
	}

	lang, err := s.languages.Validate(lang)
	if err != nil {
		return model.Translation{}, err
	}

	text = s.sanitize(contentType, field, text)
	if text == "" {
		return model.Translation{}, ErrInvalid
	}

	if _, err := s.contentTypes.Ensure(ctx, contentType); err != nil {
		return model.Translation{}, fmt.Errorf("ensure content type: %w", err)
	}

	return s.translations.Upsert(ctx, model.Translation{
		ContentType: contentType,
		ObjectID:    objectID,
		Field:       field,
		Language:    lang,
		Text:        text,
	})
}

// Delete removes one record by ID.
func (s *translationService) Delete(ctx context.Context, id int64) error {
	if err := s.translations.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("delete translation: %w", err)
	}
	return nil
}

// GetForObject returns field→text for one object in one language.
func (s *translationService) GetForObject(ctx context.Context, contentType, objectID, lang string) (map[string]string, error) {
	contentType = normalizeName(contentType)
	lang, err := s.languages.Validate(lang)
	if err != nil {
		return nil, err
	}

	records, err := s.translations.ListForObject(ctx, contentType, objectID, lang)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	fields := make(map[string]string, len(records))
	for _, record := range records {
		// Records can predate schema edits; only declared fields surface.
		if record.Text != "" && s.schema.HasField(contentType, record.Field) {
			fields[record.Field] = record.Text
		}
	}
	return fields, nil
}

// GetForObjects returns objectID→field→text for a batch of objects.
func (s *translationService) GetForObjects(ctx context.Context, contentType string, objectIDs []string, lang string) (map[string]map[string]string, error) {
	contentType = normalizeName(contentType)
	lang, err := s.languages.Validate(lang)
	if err != nil {
		return nil, err
	}

	records, err := s.translations.ListForObjects(ctx, contentType, objectIDs, lang)
	if err != nil {
		return nil, fmt.Errorf("list translations: %w", err)
	}

	objects := make(map[string]map[string]string)
	for _, record := range records {
		if record.Text == "" || !s.schema.HasField(contentType, record.Field) {
			continue
		}
		fields, ok := objects[record.ObjectID]
		if !ok {
			fields = make(map[string]string)
			objects[record.ObjectID] = fields
		}
		fields[record.Field] = record.Text
	}
	return objects, nil
}

// Replace atomically swaps every record of (object, language) for the given
// texts. Undeclared fields are rejected; empty texts are dropped, so replacing
// with an empty map clears the object's translations for that language.
func (s *translationService) Replace(ctx context.Context, contentType, objectID, lang string, texts map[string]string) ([]model.Translation, error) {
	contentType = normalizeName(contentType)
	objectID = strings.TrimSpace(objectID)
	if objectID == "" {
		return nil, ErrInvalid
	}

	lang, err := s.languages.Validate(lang)
	if err != nil {
		return nil, err
	}

	sanitized := make(map[string]string, len(texts))
	for field, text := range texts {
		field = strings.TrimSpace(field)
		if !s.schema.HasField(contentType, field) {
			return nil, &UndeclaredFieldError{ContentType: contentType, Field: field}
		}
		if clean := s.sanitize(contentType, field, text); clean != "" {
			sanitized[field] = clean
		}
	}

	if _, err := s.contentTypes.Ensure(ctx, contentType); err != nil {
		return nil, fmt.Errorf("ensure content type: %w", err)
	}

	created, err := s.translations.ReplaceForObject(ctx, contentType, objectID, lang, sanitized)
	if err != nil {
		return nil, fmt.Errorf("replace translations: %w", err)
	}
	return created, nil
}

// ListContentTypes returns every known content type with its stored record
// count, including persisted types the schema no longer declares.
func (s *translationService) ListContentTypes(ctx context.Context) ([]model.ContentTypeStats, error) {
	types, err := s.contentTypes.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list content types: %w", err)
	}

	counts, err := s.translations.CountByContentType(ctx)
	if err != nil {
		return nil, fmt.Errorf("count translations: %w", err)
	}

	declared := make(map[string]bool)
	for _, name := range s.schema.ContentTypeNames() {
		declared[name] = true
	}

	stats := make([]model.ContentTypeStats, 0, len(types))
	for _, ct := range types {
		stats = append(stats, model.ContentTypeStats{
			ContentType:      ct,
			TranslationCount: counts[ct.Name],
			Declared:         declared[ct.Name],
		})
	}
	return stats, nil
}

// EnsureDeclared creates content type rows for every schema declaration.
// Called at startup so listings show declared types before their first write.
func (s *translationService) EnsureDeclared(ctx context.Context) error {
	for _, name := range s.schema.ContentTypeNames() {
		if _, err := s.contentTypes.Ensure(ctx, normalizeName(name)); err != nil {
			return fmt.Errorf("ensure content type %q: %w", name, err)
		}
	}
	return nil
}

func (s *translationService) sanitize(contentType, field, text string) string {
	if s.schema.IsRichText(contentType, field) {
		return sanitizer.SanitizeRichText(text)
	}
	return sanitizer.StripTags(text)
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
