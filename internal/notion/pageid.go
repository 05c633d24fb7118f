package notion

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// The workspace produces at least three URL shapes for the same page
// depending on sharing context, so extraction tries three forms in order.
var (
	// A bare 32-hex run terminated by '?', '#' or end of string.
	bareIDPattern = regexp.MustCompile(`(?i)([0-9a-f]{32})(?:[?#]|$)`)

	// A dashed 8-4-4-4-12 UUID under the same boundary condition.
	dashedIDPattern = regexp.MustCompile(
		`(?i)([0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12})(?:[?#]|$)`)

	hexPattern = regexp.MustCompile(`(?i)^[0-9a-f]+$`)
)

// ExtractPageID locates the page identifier in a workspace page URL and
// returns it in canonical form: 32 lowercase hex characters, dashes
// stripped. Returns ErrMalformedPageRef when no identifier can be found.
func ExtractPageID(pageURL string) (string, error) {
	if m := bareIDPattern.FindStringSubmatch(pageURL); m != nil {
		return strings.ToLower(m[1]), nil
	}

	if m := dashedIDPattern.FindStringSubmatch(pageURL); m != nil {
		if id, err := uuid.Parse(m[1]); err == nil {
			return strings.ReplaceAll(id.String(), "-", ""), nil
		}
	}

	// Last resort: the trailing slug segment. Shared URLs end in
	// "Page-Title-<id>", optionally with a query string appended.
	if id, ok := extractFromSlug(pageURL); ok {
		return id, nil
	}

	return "", ErrMalformedPageRef
}

func extractFromSlug(pageURL string) (string, bool) {
	var segment string
	for _, s := range strings.Split(pageURL, "/") {
		if s != "" {
			segment = s
		}
	}
	if segment == "" {
		return "", false
	}

	parts := strings.Split(segment, "-")
	candidate := parts[len(parts)-1]
	if i := strings.IndexAny(candidate, "?#"); i >= 0 {
		candidate = candidate[:i]
	}

	if len(candidate) < 32 || !hexPattern.MatchString(candidate) {
		return "", false
	}
	return strings.ToLower(candidate[len(candidate)-32:]), true
}
