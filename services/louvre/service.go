package louvre

import (
	"context"

	scraper "louvre-backend/lib/scrapers/louvre"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Service exposes the three operations of the collections backend, each
// producing a single text payload. Transport adapters only frame that
// text, they never reach into the record model.
type Service struct {
	resolver Resolver
	mode     RenderMode
}

func NewService(client *scraper.Client, mode RenderMode) Service {
	return Service{
		resolver: NewResolver(client),
		mode:     mode,
	}
}

func (s Service) GetArtworkDetail(ctx context.Context, id string) (string, error) {
	ctx, span := tracer.Start(ctx, "GetArtworkDetail")
	defer span.End()
	span.SetAttributes(attribute.String("artwork_id", id))

	record, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolution failed")
		return "", err
	}
	return RenderArtwork(record, s.mode), nil
}

func (s Service) GetArtworkImages(ctx context.Context, id, imageType string, position *int) (string, error) {
	ctx, span := tracer.Start(ctx, "GetArtworkImages")
	defer span.End()
	span.SetAttributes(
		attribute.String("artwork_id", id),
		attribute.String("image_type", imageType),
	)

	record, err := s.resolver.Resolve(ctx, id)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolution failed")
		return "", err
	}

	selection := SelectImages(record, ImageQuery{Type: imageType, Position: position})
	return RenderSelection(record, selection, s.mode), nil
}

func (s Service) SearchArtwork(ctx context.Context, query string, page int) (string, error) {
	ctx, span := tracer.Start(ctx, "SearchArtwork")
	defer span.End()
	span.SetAttributes(attribute.String("query", query))

	if query == "" {
		// a guided response, not an error
		return RenderSearchPrompt(), nil
	}
	if page < 1 {
		page = 1
	}

	result, err := s.resolver.Search(ctx, query, page)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "search failed")
		return "", err
	}
	return RenderSearch(query, page, result, s.mode), nil
}
