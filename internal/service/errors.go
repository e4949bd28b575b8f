package service

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
	ErrProvider = errors.New("translation provider failed")

	ErrPasswordRequired = errors.New("password is required")
	ErrPasswordTooShort = errors.New("password must be at least 6 characters")
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongPassword    = errors.New("wrong password")
)

// UnsupportedLanguageError reports a language code outside the declared set.
type UnsupportedLanguageError struct {
	Lang string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("the language code `%s` is not supported", e.Lang)
}

func (e *UnsupportedLanguageError) Is(target error) bool {
	return target == ErrInvalid
}

// UndeclaredFieldError reports a write against a (content type, field) pair
// the schema does not declare translatable.
type UndeclaredFieldError struct {
	ContentType string
	Field       string
}

func (e *UndeclaredFieldError) Error() string {
	return fmt.Sprintf("field `%s.%s` is not declared translatable", e.ContentType, e.Field)
}

func (e *UndeclaredFieldError) Is(target error) bool {
	return target == ErrInvalid
}
