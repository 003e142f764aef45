package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quotebook/internal/domain"
	"github.com/jsamuelsen/quotebook/internal/platform/logging"
)

const (
	// ContextKeyTraceID lets middleware pin the trace id reported to clients.
	ContextKeyTraceID = "trace_id"

	headerRequestID = "X-Request-ID"

	msgInternal    = "an internal error occurred"
	msgUnavailable = "service temporarily unavailable"
	msgTimeout     = "request timeout exceeded"
)

// MapDomainError maps a domain error to an HTTP status code and error envelope.
// Unknown errors become 500 with a generic message.
func MapDomainError(err error) (int, *ErrorResponse) {
	switch {
	case domain.IsNotFound(err):
		return http.StatusNotFound, NewErrorResponse(ErrorCodeNotFound, err.Error())

	case domain.IsValidation(err):
		resp := NewErrorResponse(ErrorCodeValidation, err.Error())

		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) && validationErr.Field != "" {
			resp.Error.Details = map[string]string{validationErr.Field: validationErr.Message}
		}

		return http.StatusBadRequest, resp

	case domain.IsUnavailable(err):
		return http.StatusServiceUnavailable, NewErrorResponse(ErrorCodeUnavailable, msgUnavailable)

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewErrorResponse(ErrorCodeTimeout, msgTimeout)

	default:
		return http.StatusInternalServerError, NewErrorResponse(ErrorCodeInternal, msgInternal)
	}
}

// HandleError writes the envelope for err and aborts the handler chain.
// Server-side failures are logged with the trace id so they can be found
// from the client's response.
func HandleError(c *gin.Context, err error) {
	status, resp := MapDomainError(err)
	resp.TraceID = GetTraceID(c)

	if status >= http.StatusInternalServerError {
		logging.FromContext(c.Request.Context()).ErrorContext(c.Request.Context(), "request failed",
			slog.String("error", err.Error()),
			slog.Int("status", status),
			slog.String("trace_id", resp.TraceID),
		)
	}

	c.AbortWithStatusJSON(status, resp)
}

// HandleBindError reports a request body that could not be decoded or
// failed field validation.
func HandleBindError(c *gin.Context, err error) {
	var resp *ErrorResponse
	if IsValidationError(err) {
		resp = NewErrorResponseWithDetails(ErrorCodeValidation, "request validation failed", ValidationErrors(err))
	} else {
		resp = NewErrorResponse(ErrorCodeBadRequest, "malformed request body")
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, resp.WithTraceID(GetTraceID(c)))
}

// RespondBadRequest writes a 400 BAD_REQUEST envelope with message.
func RespondBadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest,
		NewErrorResponse(ErrorCodeBadRequest, message).WithTraceID(GetTraceID(c)))
}

// GetTraceID returns the id clients should quote when reporting a failure:
// an explicitly pinned trace id, then the active OpenTelemetry trace, then
// the request id header.
func GetTraceID(c *gin.Context) string {
	if v, ok := c.Get(ContextKeyTraceID); ok {
		if id, ok := v.(string); ok {
			return id
		}
		return ""
	}

	if c.Request == nil {
		return ""
	}

	if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
		return sc.TraceID().String()
	}

	return c.Request.Header.Get(headerRequestID)
}
