package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"polyglot/internal/handler"
	"polyglot/internal/model"
	"polyglot/internal/service"
	"polyglot/internal/service/mock"
)

func TestTranslationHandler_Set_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{
		"contentType": "article",
		"objectId":    "42",
		"field":       "title",
		"language":    "de",
		"text":        "Hallo Welt",
	}
	req := newJSONRequest(http.MethodPut, "/api/translations", reqBody)
	c, rec := newTestContext(e, req)

	now := time.Now()
	mockService.EXPECT().
		Set(gomock.Any(), "article", "42", "title", "de", "Hallo Welt").
		Return(model.Translation{
			ID:          1,
			ContentType: "article",
			ObjectID:    "42",
			Field:       "title",
			Language:    "de",
			Text:        "Hallo Welt",
			CreatedAt:   now,
			UpdatedAt:   now,
		}, nil)

	err := h.Set(c)
	require.NoError(t, err)

	var resp handler.TranslationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.EqualValues(t, 1, resp.ID)
	require.Equal(t, "Hallo Welt", resp.Text)
}

func TestTranslationHandler_Set_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{
		"contentType": "article",
		"objectId":    "42",
		"field":       "ghost",
		"language":    "de",
		"text":        "x",
	}
	req := newJSONRequest(http.MethodPut, "/api/translations", reqBody)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Set(gomock.Any(), "article", "42", "ghost", "de", "x").
		Return(model.Translation{}, &service.UndeclaredFieldError{ContentType: "article", Field: "ghost"})

	err := h.Set(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Set_BadJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequestRaw(http.MethodPut, "/api/translations", "{not json")
	c, rec := newTestContext(e, req)

	err := h.Set(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Get_SingleObject(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/translations?contentType=article&objectId=42&language=de", nil)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		GetForObject(gomock.Any(), "article", "42", "de").
		Return(map[string]string{"title": "Hallo"}, nil)

	err := h.Get(c)
	require.NoError(t, err)

	var resp handler.ObjectTranslationsResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Equal(t, "42", resp.ObjectID)
	require.Equal(t, map[string]string{"title": "Hallo"}, resp.Fields)
}

func TestTranslationHandler_Get_Batch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/translations?contentType=article&objectIds=1,%202&language=de", nil)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		GetForObjects(gomock.Any(), "article", []string{"1", "2"}, "de").
		Return(map[string]map[string]string{
			"1": {"title": "Eins"},
			"2": {"title": "Zwei"},
		}, nil)

	err := h.Get(c)
	require.NoError(t, err)

	var resp handler.BatchTranslationsResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp.Objects, 2)
	require.Equal(t, "Eins", resp.Objects["1"]["title"])
}

func TestTranslationHandler_Get_MissingObjectID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/translations?contentType=article", nil)
	c, rec := newTestContext(e, req)

	err := h.Get(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Replace_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	reqBody := map[string]interface{}{
		"contentType": "article",
		"objectId":    "42",
		"language":    "de",
		"texts":       map[string]string{"title": "Neu"},
	}
	req := newJSONRequest(http.MethodPost, "/api/translations/replace", reqBody)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		Replace(gomock.Any(), "article", "42", "de", map[string]string{"title": "Neu"}).
		Return([]model.Translation{{ID: 7, ContentType: "article", ObjectID: "42", Field: "title", Language: "de", Text: "Neu"}}, nil)

	err := h.Replace(c)
	require.NoError(t, err)

	var resp []handler.TranslationResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 1)
	require.Equal(t, "title", resp[0].Field)
}

func TestTranslationHandler_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/translations/7", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "7"})

	mockService.EXPECT().Delete(gomock.Any(), int64(7)).Return(nil)

	err := h.Delete(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusNoContent, rec.Code)
}

func TestTranslationHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/translations/7", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "7"})

	mockService.EXPECT().Delete(gomock.Any(), int64(7)).Return(service.ErrNotFound)

	err := h.Delete(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTranslationHandler_Delete_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/translations/abc", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "abc"})

	err := h.Delete(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_Delete_NonPositiveID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodDelete, "/api/translations/-1", nil)
	c, rec := newTestContext(e, req)
	setPathParams(c, map[string]string{"id": "-1"})

	err := h.Delete(c)
	require.NoError(t, err)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTranslationHandler_ListContentTypes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mock.NewMockTranslationService(ctrl)
	h := handler.NewTranslationHandlerHelper(mockService)

	e := newTestEcho()
	req := newJSONRequest(http.MethodGet, "/api/content-types", nil)
	c, rec := newTestContext(e, req)

	mockService.EXPECT().
		ListContentTypes(gomock.Any()).
		Return([]model.ContentTypeStats{
			{ContentType: model.ContentType{ID: 1, Name: "article"}, TranslationCount: 3, Declared: true},
			{ContentType: model.ContentType{ID: 2, Name: "comment"}, TranslationCount: 1, Declared: false},
		}, nil)

	err := h.ListContentTypes(c)
	require.NoError(t, err)

	var resp []handler.ContentTypeResponse
	assertJSONResponse(t, rec, http.StatusOK, &resp)
	require.Len(t, resp, 2)
	require.Equal(t, "article", resp[0].Name)
	require.True(t, resp[0].Declared)
	require.False(t, resp[1].Declared)
}
