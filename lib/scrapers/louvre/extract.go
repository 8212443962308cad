package louvre

import (
	"fmt"
	"strconv"
	"strings"

	"louvre-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

type ExtractionError struct {
	Cause error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("failed to parse document: %s", e.Cause.Error())
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}

// Card is one result tile of the search grid, fields left as found in
// the document. URL shape is dealt with at normalization, not here.
type Card struct {
	Id       string
	Title    string
	Author   string
	ImageUrl string
}

// PageImage is an image element found on an artwork's own detail page,
// classified by ClassifyImageUrl.
type PageImage struct {
	Position int
	Type     string
	Url      string
}

func ParseDocument(body string) (*goquery.Document, error) {
	if strings.TrimSpace(body) == "" {
		return nil, &ExtractionError{Cause: fmt.Errorf("empty document")}
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, &ExtractionError{Cause: err}
	}
	return doc, nil
}

// ExtractCards pulls every result card out of a search page. Missing
// fields degrade to the empty string, never to an error. The identifier
// is the trailing path segment of the card's first anchor.
//
// Thumbnails in the grid are lazy-loaded, so the deferred data-src
// attribute wins over the eager src when both are present.
func ExtractCards(doc *goquery.Document) []Card {
	var cards []Card
	doc.Find("div.card__outer").Each(func(_ int, sel *goquery.Selection) {
		card := Card{}

		href := sel.Find("a").First().AttrOr("href", "")
		if href != "" {
			card.Id = htmlutil.LastPathSegment(href)
		}

		img := sel.Find("img").First()
		card.ImageUrl = img.AttrOr("data-src", "")
		if card.ImageUrl == "" {
			card.ImageUrl = img.AttrOr("src", "")
		}

		card.Title = textOf(sel.Find(".card__title"))
		card.Author = textOf(sel.Find(".card__author"))

		cards = append(cards, card)
	})
	return cards
}

func textOf(sel *goquery.Selection) string {
	if len(sel.Nodes) == 0 {
		return ""
	}
	return htmlutil.CleanText(htmlutil.GetText(sel.Nodes[0]))
}

// ExtractPageImages scans every image element of a detail page. This is
// the scraping fallback for artworks whose structured payload carries no
// image list; it is lower fidelity than the structured source since the
// type comes from a URL heuristic.
func ExtractPageImages(doc *goquery.Document) []PageImage {
	var images []PageImage
	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		src := sel.AttrOr("data-src", "")
		if src == "" {
			src = sel.AttrOr("src", "")
		}
		if src == "" {
			return
		}
		images = append(images, PageImage{
			Position: len(images),
			Type:     ClassifyImageUrl(src),
			Url:      src,
		})
	})
	return images
}

// ExtractResultCount reads the total hit count off a search page, e.g.
// "42 résultats". Only the first whitespace-delimited token is
// considered, stripped down to its digits. Absent or unparsable counts
// come back as 0.
func ExtractResultCount(doc *goquery.Document) int {
	text := textOf(doc.Find(".search__results__count"))
	if text == "" {
		return 0
	}
	token := strings.Fields(text)[0]

	digits := strings.Builder{}
	for _, c := range token {
		if c >= '0' && c <= '9' {
			digits.WriteRune(c)
		}
	}
	count, err := strconv.Atoi(digits.String())
	if err != nil {
		return 0
	}
	return count
}
