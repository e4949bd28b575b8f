package model

import "time"

// ContentType identifies an application model whose fields can carry
// translations. The name is the stable identifier; rows exist so records can
// reference a type that outlives schema edits.
type ContentType struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContentTypeStats pairs a content type with its stored record count.
type ContentTypeStats struct {
	ContentType
	TranslationCount int64
	Declared         bool
}
