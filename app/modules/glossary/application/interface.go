package glossaryservice

import (
	"context"

	"github.com/google/uuid"
)

// TermInfo is the public view of a glossary term.
type TermInfo struct {
	ID    string `json:"_id"`
	Value string `json:"value"`
}

// Service defines the glossary operations.
type Service interface {
	// ListTerms returns every term.
	ListTerms(ctx context.Context) ([]TermInfo, error)

	// FindTermByValue looks a term up case-insensitively.
	FindTermByValue(ctx context.Context, value string) (*TermInfo, error)

	// AddTerm stores a term, or returns the stored one if the value already exists.
	AddTerm(ctx context.Context, value string) (*TermInfo, error)

	// DeleteTermByID removes a term and reports whether anything was removed.
	DeleteTermByID(ctx context.Context, id uuid.UUID) (bool, error)
}
