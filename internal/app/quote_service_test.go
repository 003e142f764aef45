package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// sequentialTokens mints T000000000000001, T000000000000002, ...
func sequentialTokens() domain.TokenSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("T%015d", n)
	}
}

func makeQuotes(n int) []domain.Quote {
	base := time.Date(2024, 12, 19, 0, 0, 0, 0, time.UTC)
	quotes := make([]domain.Quote, n)
	for i := range quotes {
		quotes[i] = domain.Quote{
			ID:        uuid.New(),
			Author:    fmt.Sprintf("author %d", i),
			Quote:     fmt.Sprintf("quote %d", i),
			CreatedAt: base.Add(time.Duration(i) * time.Second),
			Version:   domain.InitialVersion,
		}
	}
	return quotes
}

func newTestService(t *testing.T, store *mocks.MockQuoteStore) (*QuoteService, *Metrics) {
	t.Helper()

	metrics := NewMetrics(prometheus.NewRegistry())
	svc := NewQuoteService(QuoteServiceConfig{
		Store:     store,
		Logger:    discardLogger(),
		Metrics:   metrics,
		Paginator: domain.NewPaginator(domain.WithTokenSource(sequentialTokens())),
	})

	return svc, metrics
}

func strPtr(s string) *string { return &s }

func TestNewQuoteService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_Defaults(t *testing.T) {
	svc := NewQuoteService(QuoteServiceConfig{Store: mocks.NewMockQuoteStore(t)})

	require.NotNil(t, svc)
	assert.NotNil(t, svc.logger)
	assert.NotNil(t, svc.paginator)
	assert.Nil(t, svc.metrics)
}

func TestQuoteService_Reset(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := mocks.NewMockQuoteStore(t)
		store.EXPECT().Reset(mock.Anything).Return(nil).Once()
		svc, _ := newTestService(t, store)

		require.NoError(t, svc.Reset(context.Background()))
	})

	t.Run("store failure is internal", func(t *testing.T) {
		store := mocks.NewMockQuoteStore(t)
		dbErr := errors.New("connection refused")
		store.EXPECT().Reset(mock.Anything).Return(dbErr).Once()
		svc, _ := newTestService(t, store)

		err := svc.Reset(context.Background())

		require.ErrorIs(t, err, dbErr)
		assert.False(t, domain.IsNotFound(err))
		assert.False(t, domain.IsValidation(err))
	})
}

func TestQuoteService_Draft(t *testing.T) {
	draft := domain.QuoteDraft{Author: "Santa", Quote: "Ho ho ho"}

	t.Run("success", func(t *testing.T) {
		store := mocks.NewMockQuoteStore(t)
		want := &domain.Quote{ID: uuid.New(), Author: "Santa", Quote: "Ho ho ho", Version: domain.InitialVersion}
		store.EXPECT().Draft(mock.Anything, draft).Return(want, nil).Once()
		svc, _ := newTestService(t, store)

		got, err := svc.Draft(context.Background(), draft)

		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("store failure is internal", func(t *testing.T) {
		store := mocks.NewMockQuoteStore(t)
		dbErr := errors.New("duplicate key")
		store.EXPECT().Draft(mock.Anything, draft).Return(nil, dbErr).Once()
		svc, _ := newTestService(t, store)

		got, err := svc.Draft(context.Background(), draft)

		require.ErrorIs(t, err, dbErr)
		assert.Nil(t, got)
		assert.False(t, domain.IsNotFound(err))
	})
}

func TestQuoteService_SingleQuoteOperations(t *testing.T) {
	id := uuid.New()
	draft := domain.QuoteDraft{Author: "Grinch", Quote: "Bah"}
	found := &domain.Quote{ID: id, Author: "Grinch", Quote: "Bah", Version: 2}

	type call func(svc *QuoteService) (*domain.Quote, error)

	ops := map[string]struct {
		expect func(m *mocks.MockQuoteStore, q *domain.Quote, err error)
		call   call
	}{
		"remove": {
			expect: func(m *mocks.MockQuoteStore, q *domain.Quote, err error) {
				m.EXPECT().Remove(mock.Anything, id).Return(q, err).Once()
			},
			call: func(svc *QuoteService) (*domain.Quote, error) { return svc.Remove(context.Background(), id) },
		},
		"cite": {
			expect: func(m *mocks.MockQuoteStore, q *domain.Quote, err error) {
				m.EXPECT().Cite(mock.Anything, id).Return(q, err).Once()
			},
			call: func(svc *QuoteService) (*domain.Quote, error) { return svc.Cite(context.Background(), id) },
		},
		"undo": {
			expect: func(m *mocks.MockQuoteStore, q *domain.Quote, err error) {
				m.EXPECT().Undo(mock.Anything, id, draft).Return(q, err).Once()
			},
			call: func(svc *QuoteService) (*domain.Quote, error) { return svc.Undo(context.Background(), id, draft) },
		},
	}

	results := []struct {
		name      string
		quote     *domain.Quote
		err       error
		wantQuote *domain.Quote
		wantErr   func(error) bool
	}{
		{name: "success", quote: found, wantQuote: found},
		{name: "not found", err: domain.NewNotFoundError("quote", id.String()), wantErr: domain.IsNotFound},
		{name: "store failure collapses to not found", err: errors.New("pool closed"), wantErr: domain.IsNotFound},
		{name: "unavailable collapses to not found", err: domain.NewUnavailableError("postgres", "down"), wantErr: domain.IsNotFound},
	}

	for opName, op := range ops {
		for _, tt := range results {
			t.Run(opName+"/"+tt.name, func(t *testing.T) {
				store := mocks.NewMockQuoteStore(t)
				op.expect(store, tt.quote, tt.err)
				svc, _ := newTestService(t, store)

				got, err := op.call(svc)

				if tt.wantErr != nil {
					require.Error(t, err)
					assert.True(t, tt.wantErr(err), "unexpected error kind: %v", err)
					assert.False(t, domain.IsUnavailable(err))
					assert.Nil(t, got)
					return
				}
				require.NoError(t, err)
				assert.Equal(t, tt.wantQuote, got)
			})
		}
	}
}

func TestQuoteService_List_Traversal(t *testing.T) {
	quotes := makeQuotes(7)
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(quotes, nil).Once()
	svc, metrics := newTestService(t, store)
	ctx := context.Background()

	first, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Page)
	assert.Equal(t, quotes[0:3], first.Quotes)
	require.NotNil(t, first.NextToken)
	assert.Equal(t, "T000000000000002", *first.NextToken)

	second, err := svc.List(ctx, first.NextToken)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Page)
	assert.Equal(t, quotes[3:6], second.Quotes)
	require.NotNil(t, second.NextToken)

	third, err := svc.List(ctx, second.NextToken)
	require.NoError(t, err)
	assert.Equal(t, 3, third.Page)
	assert.Equal(t, quotes[6:], third.Quotes)
	assert.Nil(t, third.NextToken)

	// Tokens stay valid after the last page was served.
	again, err := svc.List(ctx, first.NextToken)
	require.NoError(t, err)
	assert.Equal(t, 2, again.Page)

	assert.InDelta(t, 1, testutil.ToFloat64(metrics.refreshes), 0)
	assert.InDelta(t, 4, testutil.ToFloat64(metrics.pagesServed), 0)
	assert.InDelta(t, 7, testutil.ToFloat64(metrics.snapshotQuotes), 0)
}

func TestQuoteService_List_RefreshAfterTraversal(t *testing.T) {
	before := makeQuotes(2)
	after := makeQuotes(4)

	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(before, nil).Once()
	store.EXPECT().ListAll(mock.Anything).Return(after, nil).Once()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	page, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, before, page.Quotes)
	assert.Nil(t, page.NextToken)

	page, err = svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, after[:3], page.Quotes)
	assert.NotNil(t, page.NextToken)
}

func TestQuoteService_List_StaleSnapshot(t *testing.T) {
	quotes := makeQuotes(4)
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(quotes, nil).Once()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	first, err := svc.List(ctx, nil)
	require.NoError(t, err)

	// Mid-traversal restart serves the same snapshot without touching the store.
	restart, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, first.Quotes, restart.Quotes)
	assert.Equal(t, first.NextToken, restart.NextToken)
}

func TestQuoteService_List_EmptyStore(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(nil, nil).Twice()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	page, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.NotNil(t, page.Quotes)
	assert.Empty(t, page.Quotes)
	assert.Nil(t, page.NextToken)

	_, err = svc.List(ctx, nil)
	require.NoError(t, err)
}

func TestQuoteService_List_TokenErrors(t *testing.T) {
	tests := []struct {
		name   string
		token  string
		reason string
	}{
		{name: "empty", token: "", reason: rejectLength},
		{name: "too short", token: "abc", reason: rejectLength},
		{name: "too long", token: "ABCDEFGHIJKLMNOPQ", reason: rejectLength},
		{name: "unknown", token: "ZZZZZZZZZZZZZZZZ", reason: rejectUnknown},
		{name: "right length outside alphabet", token: "!!!!!!!!!!!!!!!!", reason: rejectUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockQuoteStore(t)
			svc, metrics := newTestService(t, store)

			page, err := svc.List(context.Background(), strPtr(tt.token))

			require.Error(t, err)
			assert.True(t, domain.IsValidation(err))
			assert.Nil(t, page)
			assert.InDelta(t, 1, testutil.ToFloat64(metrics.tokenRejections.WithLabelValues(tt.reason)), 0)
			store.AssertNotCalled(t, "ListAll", mock.Anything)
		})
	}
}

func TestQuoteService_List_TokenFromReplacedSnapshot(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListAll(mock.Anything).Return(makeQuotes(4), nil).Twice()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	first, err := svc.List(ctx, nil)
	require.NoError(t, err)
	stale := *first.NextToken

	last, err := svc.List(ctx, &stale)
	require.NoError(t, err)
	require.Nil(t, last.NextToken)

	// Traversed: the next tokenless call mints a new snapshot.
	_, err = svc.List(ctx, nil)
	require.NoError(t, err)

	_, err = svc.List(ctx, &stale)
	require.Error(t, err)
	assert.True(t, domain.IsValidation(err))
}

func TestQuoteService_List_StoreFailure(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	dbErr := errors.New("relation quotes does not exist")
	store.EXPECT().ListAll(mock.Anything).Return(nil, dbErr).Once()
	store.EXPECT().ListAll(mock.Anything).Return(makeQuotes(1), nil).Once()
	svc, _ := newTestService(t, store)
	ctx := context.Background()

	_, err := svc.List(ctx, nil)
	require.ErrorIs(t, err, dbErr)
	assert.False(t, domain.IsValidation(err))

	// The failed refresh left the paginator empty, so the next call retries.
	page, err := svc.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, page.Quotes, 1)
}

func TestQuoteService_List_ConcurrentFirstRequests(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().ListAll(mock.Anything).
		RunAndReturn(func(context.Context) ([]domain.Quote, error) {
			time.Sleep(5 * time.Millisecond)
			return makeQuotes(9), nil
		}).Once()
	svc, metrics := newTestService(t, store)

	const workers = 16
	pages := make([]*domain.PageList, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Go(func() {
			pages[i], errs[i] = svc.List(context.Background(), nil)
		})
	}
	wg.Wait()

	for i := range workers {
		require.NoError(t, errs[i])
		assert.Equal(t, pages[0].Quotes, pages[i].Quotes)
		assert.Equal(t, *pages[0].NextToken, *pages[i].NextToken)
	}
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.refreshes), 0)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.refreshed(3)
		m.served()
		m.rejected(rejectUnknown)
	})
}

func TestNewMetrics_Registers(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.served()
	m.rejected(rejectLength)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "quotebook_paginator_pages_served_total")
	assert.Contains(t, names, "quotebook_paginator_token_rejections_total")
	assert.Contains(t, names, "quotebook_paginator_refreshes_total")
	assert.Contains(t, names, "quotebook_paginator_snapshot_quotes")
}
