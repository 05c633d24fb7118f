package marshal

import (
	"sort"
	"strings"
	"time"

	"github.com/ludwa6/customer-support/internal/notion"
)

// dateLayout is the ISO 8601 date form used for date-only property values.
const dateLayout = "2006-01-02"

func titleOf(page notion.Page, name, fallback string) string {
	if pv, ok := page.Properties[name]; ok {
		if s := notion.PlainText(pv.Title); s != "" {
			return s
		}
	}
	return fallback
}

func richTextOf(page notion.Page, name string) string {
	if pv, ok := page.Properties[name]; ok {
		return notion.PlainText(pv.RichText)
	}
	return ""
}

func selectOf(page notion.Page, name string) (id, optionName string) {
	if pv, ok := page.Properties[name]; ok && pv.Select != nil {
		return pv.Select.ID, pv.Select.Name
	}
	return "", ""
}

func emailOf(page notion.Page, name string) string {
	if pv, ok := page.Properties[name]; ok && pv.Email != nil {
		return *pv.Email
	}
	return ""
}

func checkboxOf(page notion.Page, name string) bool {
	if pv, ok := page.Properties[name]; ok && pv.Checkbox != nil {
		return *pv.Checkbox
	}
	return false
}

func dateOf(page notion.Page, name string) time.Time {
	pv, ok := page.Properties[name]
	if !ok || pv.Date == nil || pv.Date.Start == "" {
		return time.Time{}
	}
	if t, err := time.Parse(dateLayout, pv.Date.Start); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, pv.Date.Start); err == nil {
		return t
	}
	return time.Time{}
}

// titleByType returns the value of the database's single title property,
// whatever it is named. Used by the FAQ read path, which accepts databases
// validated under lenient name matching.
func titleByType(page notion.Page) (string, bool) {
	for _, name := range sortedNames(page) {
		pv := page.Properties[name]
		if pv.Type == "title" || len(pv.Title) > 0 {
			return notion.PlainText(pv.Title), true
		}
	}
	return "", false
}

// richTextBySynonym returns the first rich_text property whose lowercased
// name contains one of the given substrings, scanning names in sorted
// order for determinism.
func richTextBySynonym(page notion.Page, synonyms []string) (string, bool) {
	for _, name := range sortedNames(page) {
		pv := page.Properties[name]
		if pv.Type != "rich_text" && len(pv.RichText) == 0 {
			continue
		}
		lower := strings.ToLower(name)
		for _, syn := range synonyms {
			if strings.Contains(lower, syn) {
				return notion.PlainText(pv.RichText), true
			}
		}
	}
	return "", false
}

func sortedNames(page notion.Page) []string {
	names := make([]string, 0, len(page.Properties))
	for name := range page.Properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }
