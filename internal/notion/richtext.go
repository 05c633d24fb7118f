package notion

import "strings"

// RichText is a single span of formatted text. Annotations are not decoded;
// the portal only consumes plain text.
type RichText struct {
	Type      string `json:"type,omitempty"`
	Text      *Text  `json:"text,omitempty"`
	PlainText string `json:"plain_text,omitempty"`
}

// Text is the literal content of a text-typed span.
type Text struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is an inline hyperlink.
type Link struct {
	URL string `json:"url"`
}

// NewRichText wraps a string in a single text span, the shape the write
// API expects for title and rich_text properties.
func NewRichText(content string) []RichText {
	return []RichText{{
		Type:      "text",
		Text:      &Text{Content: content},
		PlainText: content,
	}}
}

// PlainText concatenates the plain text of all spans. Spans without a
// plain_text field (e.g. ones built locally) fall back to their literal
// content.
func PlainText(spans []RichText) string {
	var b strings.Builder
	for _, span := range spans {
		if span.PlainText != "" {
			b.WriteString(span.PlainText)
			continue
		}
		if span.Text != nil {
			b.WriteString(span.Text.Content)
		}
	}
	return b.String()
}
