package louvre

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int {
	return &v
}

var selectorArtwork = Artwork{
	Id: "cl010062370",
	Images: []Image{
		{Position: 0, Type: "thumbnail", Url: "https://collections.louvre.fr/media/t0.jpg"},
		{Position: 2, Type: "full", Url: "https://collections.louvre.fr/media/f2.jpg"},
		{Position: 1, Type: "thumbnail", Url: "https://collections.louvre.fr/media/t1.jpg"},
		{Position: 0, Type: "full", Url: "https://collections.louvre.fr/media/f0.jpg"},
	},
}

func TestSelectNoImages(t *testing.T) {
	selection := SelectImages(Artwork{Id: "cl999"}, ImageQuery{})
	require.Equal(t, SelectionNotFound, selection.Kind)
	require.Contains(t, selection.Reason, "cl999")
}

func TestSelectByPosition(t *testing.T) {
	// position is the primary key, the requested type is only
	// descriptive here
	selection := SelectImages(selectorArtwork, ImageQuery{Type: "thumbnail", Position: intPtr(2)})
	require.Equal(t, SelectionSingle, selection.Kind)
	require.Equal(t, "full", selection.Image.Type)
	require.Equal(t, "https://collections.louvre.fr/media/f2.jpg", selection.Image.Url)

	selection = SelectImages(selectorArtwork, ImageQuery{Position: intPtr(9)})
	require.Equal(t, SelectionNotFound, selection.Kind)
	require.Contains(t, selection.Reason, "position 9")
}

func TestSelectAllGroups(t *testing.T) {
	for _, requested := range []string{"", ImageTypeAll} {
		selection := SelectImages(selectorArtwork, ImageQuery{Type: requested})
		require.Equal(t, SelectionGrouped, selection.Kind)

		total := 0
		for _, group := range selection.Groups {
			total += len(group.Images)
		}
		require.Equal(t, len(selectorArtwork.Images), total)

		// discovery order, both across groups and within them
		expected := []ImageGroup{
			{Type: "thumbnail", Images: []Image{
				selectorArtwork.Images[0],
				selectorArtwork.Images[2],
			}},
			{Type: "full", Images: []Image{
				selectorArtwork.Images[1],
				selectorArtwork.Images[3],
			}},
		}
		diff := cmp.Diff(expected, selection.Groups)
		require.Empty(t, diff)
	}
}

func TestSelectExistingTypeSortsByPosition(t *testing.T) {
	selection := SelectImages(selectorArtwork, ImageQuery{Type: "full"})
	require.Equal(t, SelectionGrouped, selection.Kind)
	require.Len(t, selection.Groups, 1)

	group := selection.Groups[0]
	require.Equal(t, "full", group.Type)
	require.Len(t, group.Images, 2)
	require.Equal(t, 0, group.Images[0].Position)
	require.Equal(t, 2, group.Images[1].Position)
}

func TestSelectMissingTypeFallsBack(t *testing.T) {
	// never a not-found as long as the record has any image at all
	selection := SelectImages(selectorArtwork, ImageQuery{Type: "hologram"})
	require.Equal(t, SelectionGrouped, selection.Kind)
	require.Len(t, selection.Groups, 1)
	require.Equal(t, "thumbnail", selection.Groups[0].Type)
	require.NotEmpty(t, selection.Groups[0].Images)
}
