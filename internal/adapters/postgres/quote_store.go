package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/ports"
)

const tracerName = "github.com/jsamuelsen/quotebook/internal/adapters/postgres"

const quoteColumns = `id, author, quote, created_at, version`

var (
	_ ports.QuoteStore    = (*QuoteStore)(nil)
	_ ports.HealthChecker = (*QuoteStore)(nil)
)

// QuoteStore implements ports.QuoteStore on the quotes table.
// Each method runs a single statement (Undo runs two) outside any
// explicit transaction.
type QuoteStore struct {
	pool   *pgxpool.Pool
	tracer trace.Tracer
}

// NewQuoteStore creates a QuoteStore on pool.
func NewQuoteStore(pool *pgxpool.Pool) *QuoteStore {
	return &QuoteStore{
		pool:   pool,
		tracer: otel.Tracer(tracerName),
	}
}

// Name implements ports.HealthChecker.
func (s *QuoteStore) Name() string { return "postgres" }

// Check implements ports.HealthChecker by pinging the pool.
func (s *QuoteStore) Check(ctx context.Context) error {
	if err := s.pool.Ping(ctx); err != nil {
		return domain.NewUnavailableError("postgres", err.Error())
	}
	return nil
}

// Reset deletes every row.
func (s *QuoteStore) Reset(ctx context.Context) (err error) {
	ctx, span := s.start(ctx, "Reset")
	defer func() { finish(span, err) }()

	if _, err = s.pool.Exec(ctx, `DELETE FROM quotes`); err != nil {
		return fmt.Errorf("delete quotes: %w", err)
	}
	return nil
}

// Draft inserts a quote with a fresh id; the database sets created_at and version.
func (s *QuoteStore) Draft(ctx context.Context, draft domain.QuoteDraft) (q *domain.Quote, err error) {
	ctx, span := s.start(ctx, "Draft")
	defer func() { finish(span, err) }()

	const query = `INSERT INTO quotes (id, author, quote) VALUES ($1, $2, $3) RETURNING ` + quoteColumns

	id := uuid.New()
	span.SetAttributes(attribute.String("quote.id", id.String()))

	q, err = scanQuote(s.pool.QueryRow(ctx, query, id, draft.Author, draft.Quote))
	if err != nil {
		return nil, fmt.Errorf("insert quote: %w", err)
	}
	return q, nil
}

// Remove deletes a quote and returns the deleted row.
func (s *QuoteStore) Remove(ctx context.Context, id uuid.UUID) (q *domain.Quote, err error) {
	ctx, span := s.start(ctx, "Remove", attribute.String("quote.id", id.String()))
	defer func() { finish(span, err) }()

	const query = `DELETE FROM quotes WHERE id = $1 RETURNING ` + quoteColumns

	q, err = scanQuote(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, id, "delete quote")
	}
	return q, nil
}

func (s *QuoteStore) Cite(ctx context.Context, id uuid.UUID) (q *domain.Quote, err error) {
	ctx, span := s.start(ctx, "Cite", attribute.String("quote.id", id.String()))
	defer func() { finish(span, err) }()

	const query = `SELECT ` + quoteColumns + ` FROM quotes WHERE id = $1`

	q, err = scanQuote(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		return nil, notFoundOr(err, id, "select quote")
	}
	return q, nil
}

// Undo reads the current version and writes the new content with the next
// one. The two statements are not wrapped in a transaction: concurrent
// undos of the same quote are last-writer-wins.
func (s *QuoteStore) Undo(ctx context.Context, id uuid.UUID, draft domain.QuoteDraft) (q *domain.Quote, err error) {
	ctx, span := s.start(ctx, "Undo", attribute.String("quote.id", id.String()))
	defer func() { finish(span, err) }()

	var version int32
	if err = s.pool.QueryRow(ctx, `SELECT version FROM quotes WHERE id = $1`, id).Scan(&version); err != nil {
		return nil, notFoundOr(err, id, "select version")
	}

	const query = `UPDATE quotes SET author = $1, quote = $2, version = $3 WHERE id = $4 RETURNING ` + quoteColumns

	q, err = scanQuote(s.pool.QueryRow(ctx, query, draft.Author, draft.Quote, domain.NextVersion(version), id))
	if err != nil {
		return nil, notFoundOr(err, id, "update quote")
	}
	return q, nil
}

// ListAll returns every quote, oldest first.
func (s *QuoteStore) ListAll(ctx context.Context) (quotes []domain.Quote, err error) {
	ctx, span := s.start(ctx, "ListAll")
	defer func() { finish(span, err) }()

	rows, err := s.pool.Query(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("query quotes: %w", err)
	}

	quotes, err = pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Quote, error) {
		q, err := scanQuote(row)
		if err != nil {
			return domain.Quote{}, err
		}
		return *q, nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan quotes: %w", err)
	}

	span.SetAttributes(attribute.Int("quote.count", len(quotes)))

	return quotes, nil
}

func (s *QuoteStore) start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return s.tracer.Start(ctx, "postgres."+op,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(append(attrs,
			attribute.String("db.system", "postgresql"),
			attribute.String("db.operation", op),
		)...),
	)
}

func finish(span trace.Span, err error) {
	if err != nil && !domain.IsNotFound(err) {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func scanQuote(row pgx.Row) (*domain.Quote, error) {
	var q domain.Quote
	if err := row.Scan(&q.ID, &q.Author, &q.Quote, &q.CreatedAt, &q.Version); err != nil {
		return nil, err
	}
	q.CreatedAt = q.CreatedAt.UTC()
	return &q, nil
}

func notFoundOr(err error, id uuid.UUID, action string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFoundError("quote", id.String())
	}
	return fmt.Errorf("%s: %w", action, err)
}
