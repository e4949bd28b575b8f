//go:generate mockgen -source=$GOFILE -destination=mock/$GOFILE -package=mock
package service

import (
	"strings"

	"polyglot/internal/config"
)

// LanguageService validates language codes against the declared schema.
type LanguageService interface {
	// Validate returns the validated code; an empty code resolves to the
	// default language.
	Validate(lang string) (string, error)
	Languages() []string
	Default() string
}

type languageService struct {
	schema *config.Schema
}

// NewLanguageService creates a language service over the loaded schema.
func NewLanguageService(schema *config.Schema) LanguageService {
	return &languageService{schema: schema}
}

func (s *languageService) Validate(lang string) (string, error) {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return s.schema.DefaultLanguage, nil
	}
	if !s.schema.HasLanguage(lang) {
		return "", &UnsupportedLanguageError{Lang: lang}
	}
	return lang, nil
}

func (s *languageService) Languages() []string {
	return append([]string(nil), s.schema.Languages...)
}

func (s *languageService) Default() string {
	return s.schema.DefaultLanguage
}
