package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"polyglot/internal/handler"
	"polyglot/internal/service"
)

func TestWriteServiceError_Mapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		status   int
		expected string
	}{
		{name: "invalid", err: service.ErrInvalid, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "not_found", err: service.ErrNotFound, status: http.StatusNotFound, expected: "resource not found"},
		{name: "conflict", err: service.ErrConflict, status: http.StatusConflict, expected: "conflict"},
		{name: "provider", err: service.ErrProvider, status: http.StatusBadGateway, expected: "suggestion provider failed"},
		{name: "typed_language", err: &service.UnsupportedLanguageError{Lang: "xx"}, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "typed_field", err: &service.UndeclaredFieldError{ContentType: "article", Field: "ghost"}, status: http.StatusBadRequest, expected: "invalid request"},
		{name: "default", err: errors.New("boom"), status: http.StatusInternalServerError, expected: "internal error"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newTestEcho()
			req := newJSONRequest(http.MethodGet, "/", nil)
			c, rec := newTestContext(e, req)

			err := handler.WriteServiceError(c, tc.err)
			require.NoError(t, err)

			var resp map[string]string
			assertJSONResponse(t, rec, tc.status, &resp)
			require.Equal(t, tc.expected, resp["error"])
		})
	}
}

func TestErrorResponse(t *testing.T) {
	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/", nil)
	c, rec := newTestContext(e, req)

	err := handler.Error(c, http.StatusBadRequest, "bad request")
	require.NoError(t, err)

	var resp map[string]string
	assertJSONResponse(t, rec, http.StatusBadRequest, &resp)
	require.Equal(t, "bad request", resp["error"])
}
