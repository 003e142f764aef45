package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/app"
	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/mocks"
)

// setupRouter wires a QuoteHandler on /19 over a mocked store.
func setupRouter(t *testing.T, setupMock func(*mocks.MockQuoteStore)) *gin.Engine {
	t.Helper()

	store := mocks.NewMockQuoteStore(t)
	if setupMock != nil {
		setupMock(store)
	}

	n := 0
	service := app.NewQuoteService(app.QuoteServiceConfig{
		Store:  store,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		Paginator: domain.NewPaginator(domain.WithTokenSource(func() string {
			n++
			return fmt.Sprintf("T%015d", n)
		})),
	})

	router := gin.New()
	NewQuoteHandler(service).RegisterRoutes(router.Group("/19"))

	return router
}

func do(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func sampleQuote() *domain.Quote {
	return &domain.Quote{
		ID:        uuid.MustParse("7c2a3a5e-4b6f-4d5c-9e0a-1b2c3d4e5f60"),
		Author:    "Santa",
		Quote:     "Ho ho ho",
		CreatedAt: time.Date(2024, 12, 19, 10, 0, 0, 0, time.UTC),
		Version:   1,
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) dto.ErrorResponse {
	t.Helper()
	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestQuoteHandler_Reset(t *testing.T) {
	tests := []struct {
		name       string
		storeErr   error
		wantStatus int
	}{
		{name: "success", wantStatus: http.StatusOK},
		{name: "store failure", storeErr: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t, func(m *mocks.MockQuoteStore) {
				m.EXPECT().Reset(mock.Anything).Return(tt.storeErr).Once()
			})

			w := do(router, http.MethodPost, "/19/reset", "")

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestQuoteHandler_Draft(t *testing.T) {
	q := sampleQuote()

	tests := []struct {
		name       string
		body       string
		setupMock  func(*mocks.MockQuoteStore)
		wantStatus int
		wantCode   string
	}{
		{
			name: "created",
			body: `{"author":"Santa","quote":"Ho ho ho","extra":true}`,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Draft(mock.Anything, domain.QuoteDraft{Author: "Santa", Quote: "Ho ho ho"}).Return(q, nil).Once()
			},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing quote",
			body:       `{"author":"Santa"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "malformed json",
			body:       `{"author":`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name: "store failure",
			body: `{"author":"Santa","quote":"Ho ho ho"}`,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Draft(mock.Anything, mock.Anything).Return(nil, errors.New("insert failed")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t, tt.setupMock)

			w := do(router, http.MethodPost, "/19/draft", tt.body)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}
			assert.JSONEq(t, `{
				"id": "7c2a3a5e-4b6f-4d5c-9e0a-1b2c3d4e5f60",
				"author": "Santa",
				"quote": "Ho ho ho",
				"created_at": "2024-12-19T10:00:00Z",
				"version": 1
			}`, w.Body.String())
		})
	}
}

func TestQuoteHandler_SingleQuoteRoutes(t *testing.T) {
	q := sampleQuote()
	id := q.ID.String()
	draft := domain.QuoteDraft{Author: "Santa", Quote: "Ho ho ho"}
	body := `{"author":"Santa","quote":"Ho ho ho"}`

	tests := []struct {
		name       string
		method     string
		target     string
		body       string
		setupMock  func(*mocks.MockQuoteStore)
		wantStatus int
		wantCode   string
	}{
		{
			name:   "cite found",
			method: http.MethodGet, target: "/19/cite/" + id,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Cite(mock.Anything, q.ID).Return(q, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "cite missing",
			method: http.MethodGet, target: "/19/cite/" + id,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Cite(mock.Anything, q.ID).Return(nil, domain.NewNotFoundError("quote", id)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "cite bad id",
			method:     http.MethodGet,
			target:     "/19/cite/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:   "remove found",
			method: http.MethodDelete, target: "/19/remove/" + id,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Remove(mock.Anything, q.ID).Return(q, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "remove store failure reads as not found",
			method: http.MethodDelete, target: "/19/remove/" + id,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Remove(mock.Anything, q.ID).Return(nil, errors.New("conn reset")).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "remove bad id",
			method:     http.MethodDelete,
			target:     "/19/remove/123",
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
		{
			name:   "undo found",
			method: http.MethodPut, target: "/19/undo/" + id, body: body,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Undo(mock.Anything, q.ID, draft).Return(q, nil).Once()
			},
			wantStatus: http.StatusOK,
		},
		{
			name:   "undo missing",
			method: http.MethodPut, target: "/19/undo/" + id, body: body,
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().Undo(mock.Anything, q.ID, draft).Return(nil, domain.NewNotFoundError("quote", id)).Once()
			},
			wantStatus: http.StatusNotFound,
			wantCode:   dto.ErrorCodeNotFound,
		},
		{
			name:       "undo null author",
			method:     http.MethodPut,
			target:     "/19/undo/" + id,
			body:       `{"author":null,"quote":"x"}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeValidation,
		},
		{
			name:       "undo bad id checked before body",
			method:     http.MethodPut,
			target:     "/19/undo/nope",
			body:       `{}`,
			wantStatus: http.StatusBadRequest,
			wantCode:   dto.ErrorCodeBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t, tt.setupMock)

			w := do(router, tt.method, tt.target, tt.body)

			require.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
				return
			}

			var resp dto.QuoteResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, q.ID, resp.ID)
			assert.Equal(t, q.Author, resp.Author)
		})
	}
}

func TestQuoteHandler_List(t *testing.T) {
	quotes := make([]domain.Quote, 4)
	for i := range quotes {
		quotes[i] = *sampleQuote()
		quotes[i].ID = uuid.New()
	}

	router := setupRouter(t, func(m *mocks.MockQuoteStore) {
		m.EXPECT().ListAll(mock.Anything).Return(quotes, nil).Once()
	})

	w := do(router, http.MethodGet, "/19/list", "")
	require.Equal(t, http.StatusOK, w.Code)

	var first dto.PageListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &first))
	assert.Equal(t, 1, first.Page)
	assert.Len(t, first.Quotes, 3)
	require.NotNil(t, first.NextToken)
	assert.Len(t, *first.NextToken, domain.TokenLength)

	w = do(router, http.MethodGet, "/19/list?token="+*first.NextToken, "")
	require.Equal(t, http.StatusOK, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Contains(t, raw, "next_token")
	assert.Nil(t, raw["next_token"])
	assert.InDelta(t, 2, raw["page"], 0)
	assert.Len(t, raw["quotes"], 1)
}

func TestQuoteHandler_ListErrors(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		setupMock  func(*mocks.MockQuoteStore)
		wantStatus int
		wantCode   string
	}{
		{name: "short token", target: "/19/list?token=abc", wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidation},
		{name: "empty token", target: "/19/list?token=", wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidation},
		{name: "unknown token", target: "/19/list?token=ZZZZZZZZZZZZZZZZ", wantStatus: http.StatusBadRequest, wantCode: dto.ErrorCodeValidation},
		{
			name:   "store failure",
			target: "/19/list",
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().ListAll(mock.Anything).Return(nil, errors.New("boom")).Once()
			},
			wantStatus: http.StatusInternalServerError,
			wantCode:   dto.ErrorCodeInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupRouter(t, tt.setupMock)

			w := do(router, http.MethodGet, tt.target, "")

			require.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, tt.wantCode, decodeError(t, w).Error.Code)
		})
	}
}

func TestQuoteHandler_RegisterRoutes(t *testing.T) {
	router := setupRouter(t, nil)

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	for _, expected := range []string{
		"POST /19/reset",
		"POST /19/draft",
		"DELETE /19/remove/:id",
		"GET /19/cite/:id",
		"PUT /19/undo/:id",
		"GET /19/list",
	} {
		assert.True(t, routeMap[expected], "missing route: %s", expected)
	}
}
