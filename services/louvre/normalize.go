package louvre

import (
	"bytes"
	"encoding/json"
	"net/url"

	"louvre-backend/lib/htmlutil"
	scraper "louvre-backend/lib/scrapers/louvre"
)

// ImageTypeUnspecified is what image entries without a classifier
// normalize to.
const ImageTypeUnspecified = "unspecified"

// RawArtwork mirrors the structured detail payload. The image field is
// left raw because the endpoint returns either an array of descriptors
// or a mapping of type names to descriptors depending on the artwork.
type RawArtwork struct {
	Id          string          `json:"id"`
	Ark         string          `json:"ark"`
	Title       string          `json:"title"`
	Creator     string          `json:"creator"`
	Artist      string          `json:"artist"`
	DateCreated string          `json:"dateCreated"`
	Medium      string          `json:"medium"`
	Dimensions  string          `json:"dimensions"`
	Description string          `json:"description"`
	Image       json.RawMessage `json:"image"`
}

type rawImage struct {
	Position *int   `json:"position"`
	Type     string `json:"type"`
	Url      string `json:"url"`
}

// NormalizeArtwork converts a structured payload into the canonical
// record. Field precedence: id falls back to the ark identifier, the
// artist label falls back from creator to artist. All absolute-URL
// coercion for images happens here and only here.
func NormalizeArtwork(base *url.URL, raw RawArtwork) Artwork {
	id := raw.Id
	if id == "" {
		id = raw.Ark
	}
	artist := raw.Creator
	if artist == "" {
		artist = raw.Artist
	}

	record := Artwork{
		Id:          id,
		Title:       raw.Title,
		Artist:      artist,
		DateDisplay: raw.DateCreated,
		Medium:      raw.Medium,
		Dimensions:  raw.Dimensions,
		Description: raw.Description,
		Images:      normalizeRawImages(base, raw.Image),
	}
	if record.Id != "" {
		record.CanonicalUrl = base.String() + scraper.DetailPath(record.Id)
	}
	return record
}

// normalizeRawImages resolves the two payload shapes of the image field
// into one ordered list. Entries that fail to decode or carry no url
// are dropped, a record with zero images is still valid.
func normalizeRawImages(base *url.URL, raw json.RawMessage) []Image {
	if len(raw) == 0 {
		return nil
	}

	var elements []json.RawMessage
	if err := json.Unmarshal(raw, &elements); err == nil {
		return normalizeImageArray(base, elements)
	}
	return normalizeImageObject(base, raw)
}

func normalizeImageArray(base *url.URL, elements []json.RawMessage) []Image {
	var images []Image
	for i, element := range elements {
		var entry rawImage
		if err := json.Unmarshal(element, &entry); err != nil {
			continue
		}
		if entry.Url == "" {
			continue
		}

		position := i
		if entry.Position != nil {
			position = *entry.Position
		}
		imageType := entry.Type
		if imageType == "" {
			imageType = ImageTypeUnspecified
		}

		images = append(images, Image{
			Position: position,
			Type:     imageType,
			Url:      htmlutil.Absolutize(base, entry.Url),
		})
	}
	return images
}

// normalizeImageObject handles the keyed-object shape, where each key
// is the image type and its ordinal index in the document is the
// position. Decoded with a token walk so the order is the document's,
// not Go map iteration order.
func normalizeImageObject(base *url.URL, raw json.RawMessage) []Image {
	decoder := json.NewDecoder(bytes.NewReader(raw))

	tok, err := decoder.Token()
	if err != nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil
	}

	var images []Image
	ordinal := 0
	for decoder.More() {
		keyTok, err := decoder.Token()
		if err != nil {
			return images
		}
		key, ok := keyTok.(string)
		if !ok {
			return images
		}

		var entry rawImage
		if err := decoder.Decode(&entry); err != nil {
			return images
		}
		if entry.Url == "" {
			continue
		}

		images = append(images, Image{
			Position: ordinal,
			Type:     key,
			Url:      htmlutil.Absolutize(base, entry.Url),
		})
		ordinal++
	}
	return images
}

// NormalizePageImages converts scraped detail page images into canonical
// entries, coercing their urls absolute.
func NormalizePageImages(base *url.URL, scraped []scraper.PageImage) []Image {
	var images []Image
	for _, img := range scraped {
		if img.Url == "" {
			continue
		}
		images = append(images, Image{
			Position: img.Position,
			Type:     img.Type,
			Url:      htmlutil.Absolutize(base, img.Url),
		})
	}
	return images
}

// NormalizeCard converts a search result card into a partial record.
// The grid exposes no date, medium or dimensions, and at most one
// thumbnail.
func NormalizeCard(base *url.URL, card scraper.Card) Artwork {
	record := Artwork{
		Id:     card.Id,
		Title:  card.Title,
		Artist: card.Author,
	}
	if record.Id != "" {
		record.CanonicalUrl = base.String() + scraper.DetailPath(record.Id)
	}
	if card.ImageUrl != "" {
		record.Images = []Image{{
			Position: 0,
			Type:     "thumbnail",
			Url:      htmlutil.Absolutize(base, card.ImageUrl),
		}}
	}
	return record
}
