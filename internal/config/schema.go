package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Sync policies for obsolete translations.
const (
	PolicyDelete = "delete"
	PolicyFlag   = "flag"
)

// Schema is the declared set of translatable fields and supported languages.
// It is the source of truth the persisted translation store is reconciled
// against; the store itself never defines it.
type Schema struct {
	DefaultLanguage string              `yaml:"default_language"`
	Languages       []string            `yaml:"languages"`
	Sync            SyncPolicy          `yaml:"sync"`
	ContentTypes    []ContentTypeSchema `yaml:"content_types"`
}

type SyncPolicy struct {
	Policy string `yaml:"policy"`
}

type ContentTypeSchema struct {
	Name   string        `yaml:"name"`
	Fields []FieldSchema `yaml:"fields"`
}

type FieldSchema struct {
	Name     string `yaml:"name"`
	RichText bool   `yaml:"rich_text"`
}

// FieldKey identifies one translatable declaration.
type FieldKey struct {
	ContentType string
	Field       string
}

// LoadSchema reads and validates a schema file.
func LoadSchema(path string) (*Schema, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read schema: %w", err)
	}

	var schema Schema
	if err := yaml.Unmarshal(raw, &schema); err != nil {
		return nil, fmt.Errorf("parse schema: %w", err)
	}

	if err := schema.validate(); err != nil {
		return nil, fmt.Errorf("validate schema: %w", err)
	}
	return &schema, nil
}

func (s *Schema) validate() error {
	if len(s.Languages) == 0 {
		return fmt.Errorf("no languages declared")
	}
	seenLang := make(map[string]bool, len(s.Languages))
	for i, lang := range s.Languages {
		lang = strings.TrimSpace(lang)
		if lang == "" {
			return fmt.Errorf("empty language code")
		}
		if seenLang[lang] {
			return fmt.Errorf("duplicate language %q", lang)
		}
		seenLang[lang] = true
		s.Languages[i] = lang
	}

	if s.DefaultLanguage == "" {
		s.DefaultLanguage = s.Languages[0]
	}
	if !seenLang[s.DefaultLanguage] {
		return fmt.Errorf("default language %q not in languages", s.DefaultLanguage)
	}

	switch s.Sync.Policy {
	case "":
		s.Sync.Policy = PolicyDelete
	case PolicyDelete, PolicyFlag:
	default:
		return fmt.Errorf("unknown sync policy %q", s.Sync.Policy)
	}

	seenType := make(map[string]bool, len(s.ContentTypes))
	for i := range s.ContentTypes {
		ct := &s.ContentTypes[i]
		// Stored rows keep content type names lowercase; declared names must
		// match them.
		ct.Name = strings.ToLower(strings.TrimSpace(ct.Name))
		if ct.Name == "" {
			return fmt.Errorf("content type with empty name")
		}
		if seenType[ct.Name] {
			return fmt.Errorf("duplicate content type %q", ct.Name)
		}
		seenType[ct.Name] = true

		if len(ct.Fields) == 0 {
			return fmt.Errorf("content type %q declares no fields", ct.Name)
		}
		seenField := make(map[string]bool, len(ct.Fields))
		for j := range ct.Fields {
			field := &ct.Fields[j]
			field.Name = strings.TrimSpace(field.Name)
			if field.Name == "" {
				return fmt.Errorf("content type %q has a field with empty name", ct.Name)
			}
			if seenField[field.Name] {
				return fmt.Errorf("content type %q declares field %q twice", ct.Name, field.Name)
			}
			seenField[field.Name] = true
		}
	}

	return nil
}

// FieldSet returns every declared (content type, field) pair.
func (s *Schema) FieldSet() map[FieldKey]bool {
	set := make(map[FieldKey]bool)
	for _, ct := range s.ContentTypes {
		for _, field := range ct.Fields {
			set[FieldKey{ContentType: ct.Name, Field: field.Name}] = true
		}
	}
	return set
}

// HasField reports whether the pair is declared translatable.
func (s *Schema) HasField(contentType, field string) bool {
	for _, ct := range s.ContentTypes {
		if ct.Name != contentType {
			continue
		}
		for _, f := range ct.Fields {
			if f.Name == field {
				return true
			}
		}
	}
	return false
}

// IsRichText reports whether the declared field allows markup.
func (s *Schema) IsRichText(contentType, field string) bool {
	for _, ct := range s.ContentTypes {
		if ct.Name != contentType {
			continue
		}
		for _, f := range ct.Fields {
			if f.Name == field {
				return f.RichText
			}
		}
	}
	return false
}

// HasLanguage reports whether the language code is declared.
func (s *Schema) HasLanguage(lang string) bool {
	for _, l := range s.Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// ContentTypeNames returns declared content type names in schema order.
func (s *Schema) ContentTypeNames() []string {
	names := make([]string, 0, len(s.ContentTypes))
	for _, ct := range s.ContentTypes {
		names = append(names, ct.Name)
	}
	return names
}
