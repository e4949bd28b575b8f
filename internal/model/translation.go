package model

import "time"

// Translation is one persisted translated value: a specific object's field in
// a specific language. A record turns obsolete when its (content type, field)
// pair disappears from the declared schema.
type Translation struct {
	ID          int64
	ContentType string
	ObjectID    string
	Field       string
	Language    string
	Text        string
	Obsolete    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// FieldPair is a stored (content type, field) combination.
type FieldPair struct {
	ContentType string
	Field       string
}
