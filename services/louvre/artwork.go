package louvre

// Image is one entry of an artwork's image list. Url is always
// absolute once a record has been through normalization.
type Image struct {
	Position int
	Type     string
	Url      string
}

// Artwork is the canonical record both the structured endpoint and the
// scraped page normalize into. Records are built fresh per resolution
// and never mutated afterwards.
type Artwork struct {
	Id           string
	Title        string
	Artist       string
	DateDisplay  string
	Medium       string
	Dimensions   string
	Description  string
	CanonicalUrl string
	Images       []Image
}
