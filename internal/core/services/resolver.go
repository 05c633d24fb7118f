package services

import (
	"strings"

	"github.com/ludwa6/customer-support/internal/core/domain"
	"github.com/ludwa6/customer-support/internal/logger"
)

// vocabularies maps each entity type to the lowercase substrings that
// identify it in a database title. Checked in AllEntityTypes order, which
// doubles as the tie-break: a title like "Support Articles" matches both
// the article and ticket vocabularies, and articles win because they are
// tested first.
var vocabularies = map[domain.EntityType][]string{
	domain.EntityCategories:     {"category", "categories"},
	domain.EntityArticles:       {"article", "articles", "documentation"},
	domain.EntityFAQs:           {"faq", "faqs", "question"},
	domain.EntitySupportTickets: {"ticket", "tickets", "support"},
}

// Resolve assigns discovered databases to entity types by title matching.
// Each database satisfies at most one type, and each type keeps the first
// database that matched it. Databases matching no vocabulary are left
// unmapped; an entirely empty result is not an error, it just means manual
// mapping is needed.
func Resolve(databases []domain.DiscoveredDatabase) domain.DatabaseMapping {
	var mapping domain.DatabaseMapping

	for _, db := range databases {
		title := strings.ToLower(db.Title)

		// A database satisfies exactly the first vocabulary its title
		// matches, even when the slot for that type is already taken.
		for _, entityType := range domain.AllEntityTypes() {
			if !matchesVocabulary(title, vocabularies[entityType]) {
				continue
			}
			if !mapping.Has(entityType) {
				mapping.Set(entityType, db.ID)
				logger.Debug("auto-mapped %q to %s", db.Title, entityType)
			}
			break
		}
	}

	return mapping
}

func matchesVocabulary(title string, words []string) bool {
	for _, w := range words {
		if strings.Contains(title, w) {
			return true
		}
	}
	return false
}
