package domain

import (
	"errors"
	"time"
)

var (
	// ErrEmptySelection is returned when a cram session is started with no subtopics.
	ErrEmptySelection = errors.New("please select at least one subtopic to continue")
	// ErrSubjectNotFound is returned for unknown subject identifiers.
	ErrSubjectNotFound = errors.New("subject not found")
	// ErrDeckNotFound is returned for unknown deck identifiers.
	ErrDeckNotFound = errors.New("deck not found")
)

// CramRequest records the parameters of a requested cram session.
type CramRequest struct {
	ID          string
	SubjectID   string
	Chapter     string
	Subtopics   []string
	RequestedAt time.Time
}

// ValidateSelection checks that at least one subtopic was chosen.
func ValidateSelection(subtopics []string) error {
	if len(subtopics) == 0 {
		return ErrEmptySelection
	}
	return nil
}
