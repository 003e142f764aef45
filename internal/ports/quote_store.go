// Package ports defines the contracts the application layer depends on.
// Adapters implement them; the app package never imports an adapter.
//
// Port conventions:
//   - context first, so callers control cancellation
//   - domain types in and out, never driver types
//   - absence is reported as domain.ErrNotFound
package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// QuoteStore persists quotes. Every method is a single-row or whole-table
// operation with statement-level atomicity; nothing is retried.
type QuoteStore interface {
	// Reset removes every quote. Calling it on an empty store is a no-op.
	Reset(ctx context.Context) error

	// Draft inserts a new quote with a fresh id and InitialVersion.
	Draft(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error)

	// Remove deletes the quote and returns it as it was before deletion.
	Remove(ctx context.Context, id uuid.UUID) (*domain.Quote, error)

	// Cite returns the current state of the quote.
	Cite(ctx context.Context, id uuid.UUID) (*domain.Quote, error)

	// Undo overwrites author and text and bumps the version, keeping created_at.
	Undo(ctx context.Context, id uuid.UUID, draft domain.QuoteDraft) (*domain.Quote, error)

	// ListAll returns every quote ordered by created_at ascending.
	ListAll(ctx context.Context) ([]domain.Quote, error)
}
