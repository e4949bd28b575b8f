package handler

// Export for testing
type TranslationResponse = translationResponse
type ObjectTranslationsResponse = objectTranslationsResponse
type BatchTranslationsResponse = batchTranslationsResponse
type ContentTypeResponse = contentTypeResponse
type SyncReportResponse = syncReportResponse
type SyncRunResponse = syncRunResponse
type LanguagesResponse = languagesResponse
type SuggestResponse = suggestResponse
type AuthStatusResponse = authStatusResponse
type AuthResponseDTO = authResponse

var NewTranslationHandlerHelper = NewTranslationHandler
var NewSyncHandlerHelper = NewSyncHandler
var NewLanguageHandlerHelper = NewLanguageHandler
var NewSuggestionHandlerHelper = NewSuggestionHandler
var NewAuthHandlerHelper = NewAuthHandler

var WriteServiceError = writeServiceError
var Error = errorJSON
