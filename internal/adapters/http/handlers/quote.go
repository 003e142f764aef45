package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsamuelsen/quotebook/internal/adapters/http/dto"
	"github.com/jsamuelsen/quotebook/internal/app"
)

// QuoteHandler serves the /19 quote book endpoints.
type QuoteHandler struct {
	service *app.QuoteService
}

// NewQuoteHandler creates a new quote handler.
func NewQuoteHandler(service *app.QuoteService) *QuoteHandler {
	return &QuoteHandler{service: service}
}

// Reset handles POST /19/reset
// Removes every quote.
//
// @Summary Remove all quotes
// @Tags quotes
// @Success 200
// @Failure 500 {object} dto.ErrorResponse
// @Router /19/reset [post]
func (h *QuoteHandler) Reset(c *gin.Context) {
	if err := h.service.Reset(c.Request.Context()); err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

// Draft handles POST /19/draft
//
// @Summary Store a new quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote body dto.QuoteRequest true "Author and text"
// @Success 201 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /19/draft [post]
func (h *QuoteHandler) Draft(c *gin.Context) {
	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	quote, err := h.service.Draft(c.Request.Context(), req.ToDraft())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewQuoteResponse(quote))
}

// Remove handles DELETE /19/remove/:id
//
// @Summary Delete a quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote UUID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /19/remove/{id} [delete]
func (h *QuoteHandler) Remove(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.Remove(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Cite handles GET /19/cite/:id
//
// @Summary Get a quote
// @Tags quotes
// @Produce json
// @Param id path string true "Quote UUID"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /19/cite/{id} [get]
func (h *QuoteHandler) Cite(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	quote, err := h.service.Cite(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// Undo handles PUT /19/undo/:id
// Overwrites author and text and bumps the version.
//
// @Summary Replace a quote's content
// @Tags quotes
// @Accept json
// @Produce json
// @Param id path string true "Quote UUID"
// @Param quote body dto.QuoteRequest true "Author and text"
// @Success 200 {object} dto.QuoteResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /19/undo/{id} [put]
func (h *QuoteHandler) Undo(c *gin.Context) {
	id, ok := quoteID(c)
	if !ok {
		return
	}

	var req dto.QuoteRequest
	if err := dto.BindAndValidate(c, &req); err != nil {
		dto.HandleBindError(c, err)
		return
	}

	quote, err := h.service.Undo(c.Request.Context(), id, req.ToDraft())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// List handles GET /19/list?token=
// Without a token it serves the first page of the shared snapshot.
//
// @Summary Page through the quotes
// @Tags quotes
// @Produce json
// @Param token query string false "16-character page token"
// @Success 200 {object} dto.PageListResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /19/list [get]
func (h *QuoteHandler) List(c *gin.Context) {
	var token *string
	if raw, present := c.GetQuery("token"); present {
		token = &raw
	}

	page, err := h.service.List(c.Request.Context(), token)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewPageListResponse(page))
}

// RegisterRoutes registers the quote routes on rg.
func (h *QuoteHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reset", h.Reset)
	rg.POST("/draft", h.Draft)
	rg.DELETE("/remove/:id", h.Remove)
	rg.GET("/cite/:id", h.Cite)
	rg.PUT("/undo/:id", h.Undo)
	rg.GET("/list", h.List)
}

func quoteID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		dto.RespondBadRequest(c, "id must be a UUID")
		return uuid.Nil, false
	}
	return id, true
}
