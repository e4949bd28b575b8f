package service_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"polyglot/internal/service"
)

func TestUnsupportedLanguageError(t *testing.T) {
	err := &service.UnsupportedLanguageError{Lang: "xx"}

	require.Equal(t, "the language code `xx` is not supported", err.Error())
	require.True(t, errors.Is(err, service.ErrInvalid))
	require.False(t, errors.Is(err, service.ErrNotFound))
}

func TestUndeclaredFieldError(t *testing.T) {
	err := &service.UndeclaredFieldError{ContentType: "article", Field: "subtitle"}

	require.Equal(t, "field `article.subtitle` is not declared translatable", err.Error())
	require.True(t, errors.Is(err, service.ErrInvalid))
	require.False(t, errors.Is(err, service.ErrConflict))
}
