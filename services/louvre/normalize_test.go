package louvre

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	scraper "louvre-backend/lib/scrapers/louvre"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testBase(t *testing.T) *url.URL {
	base, err := url.Parse(scraper.DefaultBaseUrl)
	require.NoError(t, err)
	return base
}

func TestNormalizeArtworkImageArray(t *testing.T) {
	raw := RawArtwork{
		Id:      "cl010062370",
		Title:   "Vénus de Milo",
		Creator: "Inconnu",
		Image: json.RawMessage(`[
			{"type": "thumbnail", "url": "/media/venus-thumb.jpg"},
			{"url": "https://cdn.example/venus-full.jpg", "position": 7},
			{"type": "full", "url": ""},
			"not an image descriptor"
		]`),
	}

	record := NormalizeArtwork(testBase(t), raw)
	require.Equal(t, "cl010062370", record.Id)
	require.Equal(t, "https://collections.louvre.fr/ark:/53355/cl010062370", record.CanonicalUrl)

	expected := []Image{
		{Position: 0, Type: "thumbnail", Url: "https://collections.louvre.fr/media/venus-thumb.jpg"},
		{Position: 7, Type: ImageTypeUnspecified, Url: "https://cdn.example/venus-full.jpg"},
	}
	diff := cmp.Diff(expected, record.Images)
	require.Empty(t, diff)

	for _, img := range record.Images {
		require.True(t, strings.HasPrefix(img.Url, "http"), img.Url)
	}
}

func TestNormalizeArtworkImageObject(t *testing.T) {
	raw := RawArtwork{
		Id: "cl010062370",
		Image: json.RawMessage(`{
			"thumbnail": {"url": "/media/venus-thumb.jpg"},
			"full": {"url": "/media/venus-full.jpg"}
		}`),
	}

	record := NormalizeArtwork(testBase(t), raw)
	expected := []Image{
		{Position: 0, Type: "thumbnail", Url: "https://collections.louvre.fr/media/venus-thumb.jpg"},
		{Position: 1, Type: "full", Url: "https://collections.louvre.fr/media/venus-full.jpg"},
	}
	diff := cmp.Diff(expected, record.Images)
	require.Empty(t, diff)
}

func TestNormalizeArtworkFieldPrecedence(t *testing.T) {
	record := NormalizeArtwork(testBase(t), RawArtwork{Ark: "ark123", Artist: "Rembrandt"})
	require.Equal(t, "ark123", record.Id)
	require.Equal(t, "Rembrandt", record.Artist)

	record = NormalizeArtwork(testBase(t), RawArtwork{
		Id: "id456", Ark: "ark123",
		Creator: "Vermeer", Artist: "Rembrandt",
	})
	require.Equal(t, "id456", record.Id)
	require.Equal(t, "Vermeer", record.Artist)

	record = NormalizeArtwork(testBase(t), RawArtwork{})
	require.Equal(t, "", record.Id)
	require.Equal(t, "", record.CanonicalUrl)
	require.Empty(t, record.Images)
}

func TestNormalizeArtworkMalformedImageField(t *testing.T) {
	record := NormalizeArtwork(testBase(t), RawArtwork{
		Id:    "x",
		Image: json.RawMessage(`"just a string"`),
	})
	require.Empty(t, record.Images)
}

func TestNormalizePageImages(t *testing.T) {
	images := NormalizePageImages(testBase(t), []scraper.PageImage{
		{Position: 0, Type: "thumbnail", Url: "/media/a-thumb.jpg"},
		{Position: 1, Type: "unknown", Url: "https://cdn.example/b.jpg"},
		{Position: 2, Type: "full", Url: ""},
	})
	expected := []Image{
		{Position: 0, Type: "thumbnail", Url: "https://collections.louvre.fr/media/a-thumb.jpg"},
		{Position: 1, Type: "unknown", Url: "https://cdn.example/b.jpg"},
	}
	diff := cmp.Diff(expected, images)
	require.Empty(t, diff)
}

func TestNormalizeCard(t *testing.T) {
	record := NormalizeCard(testBase(t), scraper.Card{
		Id:       "cl010062370",
		Title:    "Vénus de Milo",
		Author:   "Inconnu",
		ImageUrl: "/media/venus-thumb.jpg",
	})

	require.Equal(t, "cl010062370", record.Id)
	require.Equal(t, "Vénus de Milo", record.Title)
	require.Equal(t, "Inconnu", record.Artist)
	require.Equal(t, "https://collections.louvre.fr/ark:/53355/cl010062370", record.CanonicalUrl)
	require.Len(t, record.Images, 1)
	require.Equal(t, Image{
		Position: 0,
		Type:     "thumbnail",
		Url:      "https://collections.louvre.fr/media/venus-thumb.jpg",
	}, record.Images[0])

	record = NormalizeCard(testBase(t), scraper.Card{Title: "Sans lien"})
	require.Empty(t, record.Images)
	require.Equal(t, "", record.CanonicalUrl)
}
