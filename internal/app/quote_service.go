// Package app holds the quote book's use cases. It coordinates the store
// port and the process-wide page cursor; transports call into it.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

// QuoteService runs the quote use cases.
//
// CRUD calls go straight to the store. List goes through a single paginator
// shared by every client; mu guards it for the whole call, including the
// store read that refills it, so concurrent first requests do not reload
// the snapshot twice.
type QuoteService struct {
	store   ports.QuoteStore
	logger  *slog.Logger
	metrics *Metrics

	mu        sync.Mutex
	paginator *domain.Paginator
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	Store     ports.QuoteStore
	Logger    *slog.Logger
	Metrics   *Metrics
	Paginator *domain.Paginator
}

// NewQuoteService creates the service. It panics without a store.
// Logger defaults to slog.Default and Paginator to a fresh random-token one.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteService requires a store")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	paginator := cfg.Paginator
	if paginator == nil {
		paginator = domain.NewPaginator()
	}

	return &QuoteService{
		store:     cfg.Store,
		logger:    logger.With(slog.String("component", "app.QuoteService")),
		metrics:   cfg.Metrics,
		paginator: paginator,
	}
}

// Reset removes every quote. The current snapshot is left alone.
func (s *QuoteService) Reset(ctx context.Context) error {
	if err := s.store.Reset(ctx); err != nil {
		return fmt.Errorf("reset quotes: %w", err)
	}

	s.logger.InfoContext(ctx, "quotes reset")

	return nil
}

// Draft stores a new quote and returns it.
func (s *QuoteService) Draft(ctx context.Context, draft domain.QuoteDraft) (*domain.Quote, error) {
	quote, err := s.store.Draft(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("draft quote: %w", err)
	}

	s.logger.DebugContext(ctx, "quote drafted", slog.String("quote_id", quote.ID.String()))

	return quote, nil
}

// Remove deletes a quote and returns it as it was.
func (s *QuoteService) Remove(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	quote, err := s.store.Remove(ctx, id)
	if err != nil {
		return nil, s.notFound(ctx, "remove", id, err)
	}

	return quote, nil
}

// Cite returns a single quote.
func (s *QuoteService) Cite(ctx context.Context, id uuid.UUID) (*domain.Quote, error) {
	quote, err := s.store.Cite(ctx, id)
	if err != nil {
		return nil, s.notFound(ctx, "cite", id, err)
	}

	return quote, nil
}

// Undo overwrites a quote's author and text and bumps its version.
func (s *QuoteService) Undo(ctx context.Context, id uuid.UUID, draft domain.QuoteDraft) (*domain.Quote, error) {
	quote, err := s.store.Undo(ctx, id, draft)
	if err != nil {
		return nil, s.notFound(ctx, "undo", id, err)
	}

	return quote, nil
}

// notFound reports every store failure on a single-quote operation as
// not found. Anything other than a real miss is logged first.
func (s *QuoteService) notFound(ctx context.Context, op string, id uuid.UUID, err error) error {
	if domain.IsNotFound(err) {
		return err
	}

	s.logger.WarnContext(ctx, "store failure reported as not found",
		slog.String("op", op),
		slog.String("quote_id", id.String()),
		slog.Any("error", err),
	)

	return domain.NewNotFoundError("quote", id.String())
}

// List serves one page of the shared snapshot.
//
// Without a token the first page is served, after reloading the snapshot
// from the store when none exists yet or the previous one was read to the
// end. With a token the addressed page is served; a token of the wrong
// length or one not in the current snapshot is a validation error.
func (s *QuoteService) List(ctx context.Context, token *string) (*domain.PageList, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == nil {
		if s.paginator.NeedsRefresh() {
			if err := s.refresh(ctx); err != nil {
				return nil, err
			}
		}
		return s.serve(ctx, nil)
	}

	if len(*token) != domain.TokenLength {
		s.metrics.rejected(rejectLength)
		return nil, domain.NewValidationErrorWithValue("token",
			fmt.Sprintf("must be exactly %d characters", domain.TokenLength), *token)
	}

	return s.serve(ctx, token)
}

func (s *QuoteService) refresh(ctx context.Context) error {
	quotes, err := s.store.ListAll(ctx)
	if err != nil {
		return fmt.Errorf("list quotes: %w", err)
	}

	s.paginator.Fill(quotes)
	s.metrics.refreshed(len(quotes))

	s.logger.DebugContext(ctx, "snapshot refreshed",
		slog.Int("quotes", len(quotes)),
		slog.Int("pages", s.paginator.Pages()),
	)

	return nil
}

func (s *QuoteService) serve(ctx context.Context, token *string) (*domain.PageList, error) {
	page, ok := s.paginator.Next(token)
	if !ok {
		s.metrics.rejected(rejectUnknown)
		s.logger.DebugContext(ctx, "unknown page token", slog.String("page_token", *token))
		return nil, domain.NewValidationError("token", "unknown page token")
	}

	s.metrics.served()

	return page, nil
}
