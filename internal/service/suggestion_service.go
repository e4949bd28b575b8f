//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/semaphore"

	"polyglot/internal/config"
	"polyglot/internal/service/ai"
	"polyglot/pkg/sanitizer"
)

// maxConcurrentSuggestions limits parallel provider calls per request.
const maxConcurrentSuggestions = 4

// SuggestionService produces machine translation suggestions for declared
// fields. Suggestions are returned to the caller, never persisted.
type SuggestionService interface {
	Suggest(ctx context.Context, contentType, sourceLang, targetLang string, source map[string]string) (map[string]string, error)
}

type suggestionService struct {
	schema    *config.Schema
	languages LanguageService
	provider  ai.Provider
	sem       *semaphore.Weighted
}

// NewSuggestionService creates a new suggestion service. A nil provider is
// allowed; Suggest then fails with ErrProvider.
func NewSuggestionService(schema *config.Schema, languages LanguageService, provider ai.Provider) SuggestionService {
	return &suggestionService{
		schema:    schema,
		languages: languages,
		provider:  provider,
		sem:       semaphore.NewWeighted(maxConcurrentSuggestions),
	}
}

// Suggest translates the given source texts field by field. Fields must be
// declared for the content type; source texts are the caller's current values
// since the object data lives in the application, not here.
func (s *suggestionService) Suggest(ctx context.Context, contentType, sourceLang, targetLang string, source map[string]string) (map[string]string, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("%w: no provider configured", ErrProvider)
	}

	contentType = normalizeName(contentType)
	sourceLang, err := s.languages.Validate(sourceLang)
	if err != nil {
		return nil, err
	}
	targetLang, err = s.languages.Validate(targetLang)
	if err != nil {
		return nil, err
	}
	if sourceLang == targetLang {
		return nil, ErrInvalid
	}

	fields := make([]string, 0, len(source))
	for field, text := range source {
		if !s.schema.HasField(contentType, field) {
			return nil, &UndeclaredFieldError{ContentType: contentType, Field: field}
		}
		if strings.TrimSpace(text) != "" {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		return map[string]string{}, nil
	}

	systemPrompt := fmt.Sprintf(
		"You are a professional translator. Translate the user's text from %s to %s. "+
			"Preserve meaning, tone and any inline markup. Reply with the translation only.",
		sourceLang, targetLang,
	)

	var (
		mu          sync.Mutex
		wg          sync.WaitGroup
		suggestions = make(map[string]string, len(fields))
		firstErr    error
	)

	for _, field := range fields {
		if err := s.sem.Acquire(ctx, 1); err != nil {
			return nil, err
		}

		wg.Add(1)
		go func(field, text string) {
			defer wg.Done()
			defer s.sem.Release(1)

			translated, err := s.provider.Complete(ctx, systemPrompt, text)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%w: %s: %v", ErrProvider, field, err)
				}
				return
			}
			if clean := s.sanitize(contentType, field, translated); clean != "" {
				suggestions[field] = clean
			}
		}(field, source[field])
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return suggestions, nil
}

func (s *suggestionService) sanitize(contentType, field, text string) string {
	if s.schema.IsRichText(contentType, field) {
		return sanitizer.SanitizeRichText(text)
	}
	return sanitizer.StripTags(text)
}
