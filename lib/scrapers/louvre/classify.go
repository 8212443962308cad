package louvre

import "strings"

// ClassifyImageUrl guesses an image's type from substrings of its URL.
// A last resort for pages that expose no structured image data.
func ClassifyImageUrl(link string) string {
	lower := strings.ToLower(link)
	if strings.Contains(lower, "small") || strings.Contains(lower, "thumb") {
		return "thumbnail"
	}
	if strings.Contains(lower, "large") || strings.Contains(lower, "full") {
		return "full"
	}
	return "unknown"
}
