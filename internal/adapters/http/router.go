package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quotebook/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quotebook/internal/platform/telemetry"
)

// QuotePrefix is the path every quote book route lives under.
const QuotePrefix = "/19"

// RouterConfig contains what SetupRouter wires onto the engine.
type RouterConfig struct {
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	HealthHandler *handlers.HealthHandler
	QuoteHandler  *handlers.QuoteHandler

	// RequestTimeout bounds each quote request; zero disables it.
	RequestTimeout time.Duration
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Global middleware, first to last:
//  1. Recovery - catch panics, seed the request logger
//  2. Request ID
//  3. Correlation ID
//  4. OpenTelemetry - server span, then trace id and HTTP metrics
//  5. Logging - skips /-/
//
// Route groups:
//   - /-/: operational endpoints, no timeout
//   - /19/: quote book, with the request timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.Tracing(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(),
	)

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine.Group("/-"))
	}

	if cfg.QuoteHandler != nil {
		quotes := engine.Group(QuotePrefix, middleware.Timeout(cfg.RequestTimeout))
		cfg.QuoteHandler.RegisterRoutes(quotes)
	}
}
