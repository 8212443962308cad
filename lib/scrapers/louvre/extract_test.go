package louvre

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const searchGridHtml = `
<html><body>
<div class="search__results__count">42 résultats</div>
<div class="card__outer">
	<a href="/ark:/53355/cl010062370"><img data-src="/media/venus-thumb.jpg" src="/media/placeholder.gif"></a>
	<div class="card__title">Vénus de Milo</div>
	<div class="card__author">Inconnu</div>
</div>
<div class="card__outer">
	<a href="/ark:/53355/cl010065401"><img src="/media/nike-small.jpg"></a>
	<div class="card__title">Victoire de Samothrace</div>
</div>
<div class="card__outer">
	<div class="card__title">Carte sans lien</div>
</div>
</body></html>`

func TestExtractCards(t *testing.T) {
	doc, err := ParseDocument(searchGridHtml)
	require.NoError(t, err)

	cards := ExtractCards(doc)
	expected := []Card{
		{
			Id:       "cl010062370",
			Title:    "Vénus de Milo",
			Author:   "Inconnu",
			ImageUrl: "/media/venus-thumb.jpg",
		},
		{
			Id:       "cl010065401",
			Title:    "Victoire de Samothrace",
			ImageUrl: "/media/nike-small.jpg",
		},
		{
			Title: "Carte sans lien",
		},
	}
	diff := cmp.Diff(expected, cards)
	require.Empty(t, diff)
}

func TestExtractPageImages(t *testing.T) {
	doc, err := ParseDocument(`
<html><body>
<img src="/media/thumbnails/a-thumb.jpg">
<img src="https://cdn.example/full/a-large.jpg">
<img data-src="/media/a.jpg">
<img alt="no source at all">
</body></html>`)
	require.NoError(t, err)

	images := ExtractPageImages(doc)
	expected := []PageImage{
		{Position: 0, Type: "thumbnail", Url: "/media/thumbnails/a-thumb.jpg"},
		{Position: 1, Type: "full", Url: "https://cdn.example/full/a-large.jpg"},
		{Position: 2, Type: "unknown", Url: "/media/a.jpg"},
	}
	diff := cmp.Diff(expected, images)
	require.Empty(t, diff)
}

func TestExtractResultCount(t *testing.T) {
	doc, err := ParseDocument(searchGridHtml)
	require.NoError(t, err)
	require.Equal(t, 42, ExtractResultCount(doc))

	doc, err = ParseDocument(`<html><body><p>no count element</p></body></html>`)
	require.NoError(t, err)
	require.Equal(t, 0, ExtractResultCount(doc))

	doc, err = ParseDocument(`<html><body><div class="search__results__count">environ quarante</div></body></html>`)
	require.NoError(t, err)
	require.Equal(t, 0, ExtractResultCount(doc))
}

func TestParseDocumentEmpty(t *testing.T) {
	_, err := ParseDocument("   \n\t")
	require.Error(t, err)

	var extractErr *ExtractionError
	require.ErrorAs(t, err, &extractErr)
}

func TestClassifyImageUrl(t *testing.T) {
	cases := []struct {
		link     string
		expected string
	}{
		{"/media/a-thumb.jpg", "thumbnail"},
		{"/media/small/a.jpg", "thumbnail"},
		{"/media/a-large.jpg", "full"},
		{"https://cdn.example/FULL/a.jpg", "full"},
		{"/media/a.jpg", "unknown"},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, ClassifyImageUrl(c.link), c.link)
	}
}
