package louvre

import (
	"context"
	"strconv"

	scraper "louvre-backend/lib/scrapers/louvre"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// SearchPageSize is fixed by the site's result grid.
const SearchPageSize = 20

type SearchResult struct {
	// partial records: the grid exposes no date, medium or dimensions
	Records      []Artwork
	TotalResults int
	TotalPages   int
}

// Search runs a site search and scrapes the result grid into partial
// records.
func (r Resolver) Search(ctx context.Context, query string, page int) (SearchResult, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()
	span.SetAttributes(
		attribute.String("query", query),
		attribute.Int("page", page),
	)

	if page < 1 {
		page = 1
	}

	body, err := r.client.FetchHtml(ctx, scraper.SearchPath, map[string]string{
		"q":    query,
		"page": strconv.Itoa(page),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search request failed")
		return SearchResult{}, err
	}

	doc, err := scraper.ParseDocument(body)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search page did not parse")
		return SearchResult{}, err
	}

	var records []Artwork
	for _, card := range scraper.ExtractCards(doc) {
		records = append(records, NormalizeCard(r.client.BaseUrl, card))
	}

	total := scraper.ExtractResultCount(doc)
	return SearchResult{
		Records:      records,
		TotalResults: total,
		TotalPages:   (total + SearchPageSize - 1) / SearchPageSize,
	}, nil
}
