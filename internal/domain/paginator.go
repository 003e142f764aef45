package domain

import "slices"

// PageSize is the number of quotes served per page; the last page may be shorter.
const PageSize = 3

// Page is one chunk of a snapshot addressed by its token.
type Page struct {
	Token  string
	Quotes []Quote
}

// PageList is what a single list request hands back to the client.
type PageList struct {
	// Quotes is the served chunk, never nil.
	Quotes []Quote

	// Page is the one-based number of the served chunk.
	Page int

	// NextToken addresses the following chunk, nil when this was the last one.
	NextToken *string
}

// Paginator holds a frozen snapshot of the quote listing split into pages
// and serves them forward one at a time.
//
// A Paginator is not safe for concurrent use. Callers serialise access.
type Paginator struct {
	pages     []Page
	index     map[string]int
	filled    bool
	traversed bool
	newToken  TokenSource
}

// PaginatorOption configures a Paginator.
type PaginatorOption func(*Paginator)

// WithTokenSource replaces the random token generator.
func WithTokenSource(src TokenSource) PaginatorOption {
	return func(p *Paginator) {
		if src != nil {
			p.newToken = src
		}
	}
}

// NewPaginator returns an empty paginator.
func NewPaginator(opts ...PaginatorOption) *Paginator {
	p := &Paginator{newToken: RandomToken}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fill discards the current snapshot and installs quotes, chunked by
// PageSize in the given order. Every chunk gets a token that is unique
// within the snapshot.
func (p *Paginator) Fill(quotes []Quote) {
	count := (len(quotes) + PageSize - 1) / PageSize
	pages := make([]Page, 0, count)
	index := make(map[string]int, count)

	for chunk := range slices.Chunk(quotes, PageSize) {
		token := p.newToken()
		for {
			if _, taken := index[token]; !taken {
				break
			}
			token = p.newToken()
		}
		index[token] = len(pages)
		pages = append(pages, Page{Token: token, Quotes: slices.Clone(chunk)})
	}

	p.pages = pages
	p.index = index
	p.filled = true
	p.traversed = false
}

// Next serves the first page when token is nil, otherwise the page the
// token addresses. It reports false when the token is not part of the
// current snapshot. Serving the last page marks the paginator traversed.
func (p *Paginator) Next(token *string) (*PageList, bool) {
	pos := 0
	if token != nil {
		idx, ok := p.index[*token]
		if !ok {
			return nil, false
		}
		pos = idx
	}

	list := &PageList{Quotes: []Quote{}, Page: pos + 1}
	if pos < len(p.pages) {
		list.Quotes = slices.Clone(p.pages[pos].Quotes)
	}

	if pos+1 < len(p.pages) {
		next := p.pages[pos+1].Token
		list.NextToken = &next
	} else {
		p.traversed = true
	}

	return list, true
}

// NeedsRefresh reports whether the next tokenless request should reload
// the snapshot: the paginator was never filled or its last page was served.
func (p *Paginator) NeedsRefresh() bool {
	return !p.filled || p.traversed
}

// Traversed reports whether the last page of the snapshot has been served.
func (p *Paginator) Traversed() bool {
	return p.traversed
}

// Pages returns the number of pages in the current snapshot.
func (p *Paginator) Pages() int {
	return len(p.pages)
}

// Size returns the number of quotes in the current snapshot.
func (p *Paginator) Size() int {
	n := 0
	for _, page := range p.pages {
		n += len(page.Quotes)
	}
	return n
}
