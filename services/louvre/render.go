package louvre

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderMode selects the presentation of the one text renderer: plain
// for terminals, markdown for browser-friendly clients. The selection
// logic underneath is identical either way.
type RenderMode int

const (
	RenderPlain RenderMode = iota
	RenderMarkdown
)

func newTable(headers ...any) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row(headers))
	return t
}

func renderTable(t table.Writer, mode RenderMode) string {
	if mode == RenderMarkdown {
		return t.RenderMarkdown()
	}
	return t.Render()
}

func renderLink(label, link string, mode RenderMode) string {
	if link == "" {
		return label
	}
	if mode == RenderMarkdown {
		return fmt.Sprintf("[%s](%s)", label, link)
	}
	return fmt.Sprintf("%s <%s>", label, link)
}

// RenderArtwork renders the full detail view of a record.
func RenderArtwork(a Artwork, mode RenderMode) string {
	title := a.Title
	if title == "" {
		title = a.Id
	}

	out := strings.Builder{}
	if mode == RenderMarkdown {
		out.WriteString("# " + title + "\n\n")
	} else {
		out.WriteString(title + "\n\n")
	}

	fields := []struct {
		label string
		value string
	}{
		{"Identifier", a.Id},
		{"Artist", a.Artist},
		{"Date", a.DateDisplay},
		{"Medium", a.Medium},
		{"Dimensions", a.Dimensions},
		{"Description", a.Description},
	}
	for _, field := range fields {
		if field.value == "" {
			continue
		}
		if mode == RenderMarkdown {
			out.WriteString(fmt.Sprintf("**%s:** %s\n", field.label, field.value))
		} else {
			out.WriteString(fmt.Sprintf("%s: %s\n", field.label, field.value))
		}
	}

	out.WriteString("\n" + renderLink("Detail page", a.CanonicalUrl, mode) + "\n")

	switch len(a.Images) {
	case 0:
		out.WriteString("\nNo images available for this artwork.\n")
	case 1:
		out.WriteString("\n1 image available.\n")
	default:
		out.WriteString(fmt.Sprintf("\n%d images available.\n", len(a.Images)))
	}

	return out.String()
}

// RenderSelection renders an image selection. Not-found selections are
// informative text, they never surface as failures.
func RenderSelection(a Artwork, sel Selection, mode RenderMode) string {
	switch sel.Kind {
	case SelectionNotFound:
		return fmt.Sprintf("No image found: %s.", sel.Reason)

	case SelectionSingle:
		out := strings.Builder{}
		out.WriteString(fmt.Sprintf(
			"Image at position %d of artwork %q (%s):\n",
			sel.Image.Position, a.Id, sel.Image.Type,
		))
		out.WriteString(renderLink(sel.Image.Type, sel.Image.Url, mode) + "\n")
		return out.String()

	default:
		out := strings.Builder{}
		out.WriteString(fmt.Sprintf("Images of artwork %q:\n", a.Id))
		for _, group := range sel.Groups {
			out.WriteString("\n")
			if mode == RenderMarkdown {
				out.WriteString("## " + group.Type + "\n\n")
			} else {
				out.WriteString(group.Type + ":\n")
			}
			t := newTable("Position", "URL")
			for _, img := range group.Images {
				t.AppendRow(table.Row{img.Position, img.Url})
			}
			out.WriteString(renderTable(t, mode) + "\n")
		}
		return out.String()
	}
}

// RenderSearch renders a result page of a site search.
func RenderSearch(query string, page int, res SearchResult, mode RenderMode) string {
	if len(res.Records) == 0 {
		return fmt.Sprintf("No results found for %q.", query)
	}

	out := strings.Builder{}
	out.WriteString(fmt.Sprintf(
		"Found %d results for %q (page %d of %d):\n\n",
		res.TotalResults, query, page, res.TotalPages,
	))

	t := newTable("Identifier", "Title", "Artist", "Detail page")
	for _, record := range res.Records {
		t.AppendRow(table.Row{
			record.Id, record.Title, record.Artist, record.CanonicalUrl,
		})
	}
	out.WriteString(renderTable(t, mode) + "\n")
	return out.String()
}

// RenderSearchPrompt is the guided response for an empty query.
func RenderSearchPrompt() string {
	return "Please provide a search query, for example: search-artwork(query: \"venus\")."
}
