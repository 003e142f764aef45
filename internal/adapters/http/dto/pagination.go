package dto

import "github.com/jsamuelsen/quotebook/internal/domain"

// PageListResponse is one page of the quote listing. NextToken is
// serialised as null, never omitted, on the last page.
type PageListResponse struct {
	Quotes    []QuoteResponse `json:"quotes"`
	Page      int             `json:"page"`
	NextToken *string         `json:"next_token"`
}

// NewPageListResponse converts a served page.
func NewPageListResponse(list *domain.PageList) *PageListResponse {
	quotes := make([]QuoteResponse, 0, len(list.Quotes))
	for i := range list.Quotes {
		quotes = append(quotes, NewQuoteResponse(&list.Quotes[i]))
	}

	return &PageListResponse{
		Quotes:    quotes,
		Page:      list.Page,
		NextToken: list.NextToken,
	}
}
