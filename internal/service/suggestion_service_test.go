package service_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"polyglot/internal/service"
)

// fakeProvider records calls and returns canned translations.
type fakeProvider struct {
	mu    sync.Mutex
	calls int
	err   error
	reply func(content string) string
}

func (p *fakeProvider) Name() string { return "fake" }

func (p *fakeProvider) Complete(_ context.Context, _ string, content string) (string, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	if p.err != nil {
		return "", p.err
	}
	if p.reply != nil {
		return p.reply(content), nil
	}
	return "de:" + content, nil
}

func newSuggestionService(provider *fakeProvider) service.SuggestionService {
	schema := testSchema()
	languages := service.NewLanguageService(schema)
	if provider == nil {
		return service.NewSuggestionService(schema, languages, nil)
	}
	return service.NewSuggestionService(schema, languages, provider)
}

func TestSuggestionService_Suggest(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{}
	svc := newSuggestionService(provider)

	suggestions, err := svc.Suggest(context.Background(), "article", "en", "de", map[string]string{
		"title": "Hello",
		"body":  "<p>World</p>",
	})
	require.NoError(t, err)
	require.Equal(t, map[string]string{
		"title": "de:Hello",
		"body":  "de:<p>World</p>",
	}, suggestions)
	require.Equal(t, 2, provider.calls)
}

func TestSuggestionService_Suggest_SkipsBlankSources(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{}
	svc := newSuggestionService(provider)

	suggestions, err := svc.Suggest(context.Background(), "article", "en", "de", map[string]string{
		"title": "   ",
	})
	require.NoError(t, err)
	require.Empty(t, suggestions)
	require.Zero(t, provider.calls)
}

func TestSuggestionService_Suggest_SanitizesReplies(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{reply: func(string) string {
		return `<p>Hallo</p><script>x()</script>`
	}}
	svc := newSuggestionService(provider)

	// Plain field: markup stripped entirely.
	suggestions, err := svc.Suggest(context.Background(), "article", "en", "de", map[string]string{
		"title": "Hello",
	})
	require.NoError(t, err)
	require.NotContains(t, suggestions["title"], "<")

	// Rich field: safe markup kept, script dropped.
	suggestions, err = svc.Suggest(context.Background(), "article", "en", "de", map[string]string{
		"body": "Hello",
	})
	require.NoError(t, err)
	require.Equal(t, "<p>Hallo</p>", suggestions["body"])
}

func TestSuggestionService_Suggest_Errors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("no provider", func(t *testing.T) {
		svc := newSuggestionService(nil)
		_, err := svc.Suggest(ctx, "article", "en", "de", map[string]string{"title": "x"})
		require.ErrorIs(t, err, service.ErrProvider)
	})

	t.Run("provider failure", func(t *testing.T) {
		provider := &fakeProvider{err: errors.New("rate limited")}
		svc := newSuggestionService(provider)
		_, err := svc.Suggest(ctx, "article", "en", "de", map[string]string{"title": "x"})
		require.ErrorIs(t, err, service.ErrProvider)
	})

	t.Run("undeclared field", func(t *testing.T) {
		svc := newSuggestionService(&fakeProvider{})
		_, err := svc.Suggest(ctx, "article", "en", "de", map[string]string{"ghost": "x"})
		require.ErrorIs(t, err, service.ErrInvalid)
	})

	t.Run("unsupported language", func(t *testing.T) {
		svc := newSuggestionService(&fakeProvider{})
		_, err := svc.Suggest(ctx, "article", "en", "xx", map[string]string{"title": "x"})
		require.ErrorIs(t, err, service.ErrInvalid)
	})

	t.Run("same language", func(t *testing.T) {
		svc := newSuggestionService(&fakeProvider{})
		_, err := svc.Suggest(ctx, "article", "en", "en", map[string]string{"title": "x"})
		require.ErrorIs(t, err, service.ErrInvalid)
	})
}

func TestSuggestionService_Suggest_ManyFieldsBoundedConcurrency(t *testing.T) {
	t.Parallel()
	provider := &fakeProvider{reply: func(content string) string {
		return fmt.Sprintf("de:%s", content)
	}}
	schema := testSchema()
	svc := service.NewSuggestionService(schema, service.NewLanguageService(schema), provider)

	source := map[string]string{"title": "One", "body": "Two"}
	for range 8 {
		suggestions, err := svc.Suggest(context.Background(), "article", "en", "de", source)
		require.NoError(t, err)
		require.Len(t, suggestions, 2)
	}
}
