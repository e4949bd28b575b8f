package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"polyglot/internal/config"
)

func writeSchemaFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translatables.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

const validSchema = `
default_language: en
languages: [en, de, fr]
sync:
  policy: delete
content_types:
  - name: article
    fields:
      - name: title
      - name: body
        rich_text: true
  - name: product
    fields:
      - name: name
`

func TestLoadSchema_Valid(t *testing.T) {
	t.Parallel()
	schema, err := config.LoadSchema(writeSchemaFile(t, validSchema))
	require.NoError(t, err)

	require.Equal(t, "en", schema.DefaultLanguage)
	require.Equal(t, []string{"en", "de", "fr"}, schema.Languages)
	require.Equal(t, config.PolicyDelete, schema.Sync.Policy)

	require.True(t, schema.HasField("article", "title"))
	require.True(t, schema.HasField("product", "name"))
	require.False(t, schema.HasField("article", "subtitle"))
	require.False(t, schema.HasField("comment", "body"))

	require.True(t, schema.IsRichText("article", "body"))
	require.False(t, schema.IsRichText("article", "title"))

	require.True(t, schema.HasLanguage("de"))
	require.False(t, schema.HasLanguage("xx"))

	require.Equal(t, []string{"article", "product"}, schema.ContentTypeNames())
}

func TestLoadSchema_FieldSet(t *testing.T) {
	t.Parallel()
	schema, err := config.LoadSchema(writeSchemaFile(t, validSchema))
	require.NoError(t, err)

	set := schema.FieldSet()
	require.Len(t, set, 3)
	require.True(t, set[config.FieldKey{ContentType: "article", Field: "title"}])
	require.True(t, set[config.FieldKey{ContentType: "article", Field: "body"}])
	require.True(t, set[config.FieldKey{ContentType: "product", Field: "name"}])
}

func TestLoadSchema_LowercasesContentTypeNames(t *testing.T) {
	t.Parallel()
	schema, err := config.LoadSchema(writeSchemaFile(t, `
languages: [en]
content_types:
  - name: Article
    fields:
      - name: title
`))
	require.NoError(t, err)

	// Stored rows are lowercase; a mixed-case declaration must match them.
	require.Equal(t, []string{"article"}, schema.ContentTypeNames())
	require.True(t, schema.HasField("article", "title"))
	require.True(t, schema.FieldSet()[config.FieldKey{ContentType: "article", Field: "title"}])
}

func TestLoadSchema_Defaults(t *testing.T) {
	t.Parallel()
	schema, err := config.LoadSchema(writeSchemaFile(t, `
languages: [en]
content_types:
  - name: article
    fields:
      - name: title
`))
	require.NoError(t, err)
	require.Equal(t, "en", schema.DefaultLanguage)
	require.Equal(t, config.PolicyDelete, schema.Sync.Policy)
}

func TestLoadSchema_Invalid(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		content string
	}{
		{"missing file is an error", ""},
		{"no languages", "content_types:\n  - name: article\n    fields:\n      - name: title\n"},
		{"duplicate language", "languages: [en, en]\ncontent_types:\n  - name: a\n    fields:\n      - name: f\n"},
		{"default not declared", "default_language: de\nlanguages: [en]\ncontent_types:\n  - name: a\n    fields:\n      - name: f\n"},
		{"unknown policy", "languages: [en]\nsync:\n  policy: archive\ncontent_types:\n  - name: a\n    fields:\n      - name: f\n"},
		{"duplicate content type", "languages: [en]\ncontent_types:\n  - name: a\n    fields:\n      - name: f\n  - name: a\n    fields:\n      - name: g\n"},
		{"duplicate content type differing only in case", "languages: [en]\ncontent_types:\n  - name: Article\n    fields:\n      - name: f\n  - name: article\n    fields:\n      - name: g\n"},
		{"content type without fields", "languages: [en]\ncontent_types:\n  - name: a\n"},
		{"duplicate field", "languages: [en]\ncontent_types:\n  - name: a\n    fields:\n      - name: f\n      - name: f\n"},
		{"not yaml", "{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			if tt.content == "" {
				path = filepath.Join(t.TempDir(), "missing.yaml")
			} else {
				path = writeSchemaFile(t, tt.content)
			}
			_, err := config.LoadSchema(path)
			require.Error(t, err)
		})
	}
}
