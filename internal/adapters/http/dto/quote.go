package dto

import (
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteResponse is the JSON form of a quote.
type QuoteResponse struct {
	ID        uuid.UUID `json:"id"`
	Author    string    `json:"author"`
	Quote     string    `json:"quote"`
	CreatedAt time.Time `json:"created_at"`
	Version   int32     `json:"version"`
}

// NewQuoteResponse converts a domain quote.
func NewQuoteResponse(q *domain.Quote) QuoteResponse {
	return QuoteResponse{
		ID:        q.ID,
		Author:    q.Author,
		Quote:     q.Quote,
		CreatedAt: q.CreatedAt.UTC(),
		Version:   q.Version,
	}
}

// QuoteRequest is the body of draft and undo. Pointers distinguish a
// missing or null field (rejected) from an empty string (accepted).
type QuoteRequest struct {
	Author *string `json:"author" validate:"required"`
	Quote  *string `json:"quote"  validate:"required"`
}

// ToDraft converts a validated request into a domain draft.
func (r *QuoteRequest) ToDraft() domain.QuoteDraft {
	return domain.QuoteDraft{Author: *r.Author, Quote: *r.Quote}
}
