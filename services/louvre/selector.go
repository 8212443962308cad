package louvre

import (
	"cmp"
	"fmt"
	"slices"
)

// ImageTypeAll selects every group, same as leaving the type out.
const ImageTypeAll = "all"

type ImageQuery struct {
	// "", "all", or a type name; descriptive only when Position is set
	Type string
	// position is the primary key when present, matched across all
	// type groups
	Position *int
}

type ImageGroup struct {
	Type   string
	Images []Image
}

type SelectionKind int

const (
	SelectionNotFound SelectionKind = iota
	SelectionSingle
	SelectionGrouped
)

// Selection is a result, never an error: an artwork without a match
// still answers, either with a fallback group or a reason.
type Selection struct {
	Kind   SelectionKind
	Image  Image        // set when Kind == SelectionSingle
	Groups []ImageGroup // set when Kind == SelectionGrouped
	Reason string       // set when Kind == SelectionNotFound
}

// SelectImages answers an image query against a normalized record.
//
// Position lookup wins over everything else and ignores the requested
// type. Otherwise images are grouped by type in discovery order; a
// named type that exists comes back alone with its images re-sorted by
// position, a named type that doesn't falls back to the first group.
func SelectImages(artwork Artwork, query ImageQuery) Selection {
	if len(artwork.Images) == 0 {
		return Selection{
			Kind:   SelectionNotFound,
			Reason: fmt.Sprintf("no images for artwork %q", artwork.Id),
		}
	}

	if query.Position != nil {
		for _, img := range artwork.Images {
			if img.Position == *query.Position {
				return Selection{Kind: SelectionSingle, Image: img}
			}
		}
		return Selection{
			Kind:   SelectionNotFound,
			Reason: fmt.Sprintf("no image at position %d", *query.Position),
		}
	}

	groups := groupImages(artwork.Images)

	if query.Type == "" || query.Type == ImageTypeAll {
		return Selection{Kind: SelectionGrouped, Groups: groups}
	}

	for _, group := range groups {
		if group.Type != query.Type {
			continue
		}
		sorted := slices.Clone(group.Images)
		slices.SortStableFunc(sorted, func(a, b Image) int {
			return cmp.Compare(a.Position, b.Position)
		})
		return Selection{
			Kind:   SelectionGrouped,
			Groups: []ImageGroup{{Type: group.Type, Images: sorted}},
		}
	}

	// the requested type isn't on this artwork, hand back the first
	// group instead of an empty answer
	return Selection{Kind: SelectionGrouped, Groups: groups[:1]}
}

// groupImages partitions by type, groups ordered by first appearance,
// images kept in insertion order within each group.
func groupImages(images []Image) []ImageGroup {
	indexOf := map[string]int{}
	var groups []ImageGroup
	for _, img := range images {
		idx, seen := indexOf[img.Type]
		if !seen {
			idx = len(groups)
			indexOf[img.Type] = idx
			groups = append(groups, ImageGroup{Type: img.Type})
		}
		groups[idx].Images = append(groups[idx].Images, img)
	}
	return groups
}
