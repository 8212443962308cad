package louvre

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	scraper "louvre-backend/lib/scrapers/louvre"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("services/louvre")

// ResolutionError means both the structured endpoint and the page
// scrape failed to produce a record.
type ResolutionError struct {
	Id      string
	ApiErr  error
	HtmlErr error
}

func (e *ResolutionError) Error() string {
	return fmt.Sprintf(
		"failed to resolve artwork %q: structured source: %s; page scrape: %s",
		e.Id, e.ApiErr.Error(), e.HtmlErr.Error(),
	)
}

func (e *ResolutionError) Unwrap() []error {
	return []error{e.ApiErr, e.HtmlErr}
}

type Resolver struct {
	client *scraper.Client
}

func NewResolver(client *scraper.Client) Resolver {
	return Resolver{client: client}
}

// Resolve produces the canonical record for an artwork identifier.
//
// The structured endpoint is authoritative for metadata but unreliable
// for images across artwork types, so image presence, not HTTP success
// alone, gates whether the artwork's own page gets scraped. When the
// structured fetch yields at least one image the scrape never runs.
func (r Resolver) Resolve(ctx context.Context, id string) (Artwork, error) {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("artwork_id", id))

	record, apiErr := r.resolveStructured(ctx, id)
	if apiErr == nil && len(record.Images) > 0 {
		return r.withIdentity(record, id), nil
	}

	slog.DebugContext(
		ctx, "structured source has no images, scraping detail page",
		"id", id, "api_err", apiErr,
	)

	images, htmlErr := r.scrapePageImages(ctx, id)
	if htmlErr != nil {
		if apiErr != nil {
			err := &ResolutionError{Id: id, ApiErr: apiErr, HtmlErr: htmlErr}
			span.RecordError(err)
			span.SetStatus(codes.Error, "both sources failed")
			return Artwork{}, err
		}
		// a structured record with zero images is still a valid
		// outcome, callers deal with the empty list
		slog.WarnContext(ctx, "page scrape failed, returning structured record without images",
			"id", id, "err", htmlErr)
		return r.withIdentity(record, id), nil
	}

	record.Images = images
	return r.withIdentity(record, id), nil
}

func (r Resolver) resolveStructured(ctx context.Context, id string) (Artwork, error) {
	body, err := r.client.FetchJson(ctx, scraper.DetailPath(id), nil)
	if err != nil {
		return Artwork{}, err
	}
	var raw RawArtwork
	err = json.Unmarshal(body, &raw)
	if err != nil {
		return Artwork{}, err
	}
	return NormalizeArtwork(r.client.BaseUrl, raw), nil
}

func (r Resolver) scrapePageImages(ctx context.Context, id string) ([]Image, error) {
	body, err := r.client.FetchHtml(ctx, scraper.DetailPath(id), nil)
	if err != nil {
		return nil, err
	}
	doc, err := scraper.ParseDocument(body)
	if err != nil {
		return nil, err
	}
	return NormalizePageImages(r.client.BaseUrl, scraper.ExtractPageImages(doc)), nil
}

// withIdentity backfills the identifier and canonical url for records
// whose structured fields came back empty (or never came back at all).
func (r Resolver) withIdentity(record Artwork, requestedId string) Artwork {
	if record.Id == "" {
		record.Id = requestedId
	}
	record.CanonicalUrl = r.client.CanonicalUrl(record.Id)
	return record
}
