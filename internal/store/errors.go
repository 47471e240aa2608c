package store

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrDuplicateKeyword = errors.New("duplicate keyword")

	ErrDoctorIssuesFound = errors.New("doctor found errors")
)

type NotFoundError struct {
	Kind string
	ID   string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

func (e NotFoundError) Is(target error) bool { return target == ErrNotFound }

type DuplicateKeywordError struct {
	Keyword    string
	ExistingID string
}

func (e DuplicateKeywordError) Error() string {
	return fmt.Sprintf("keyword already exists: %q (%s)", e.Keyword, e.ExistingID)
}

func (e DuplicateKeywordError) Is(target error) bool { return target == ErrDuplicateKeyword }
