package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ludwa6/customer-support/internal/core/domain"
)

func discovered(id, title string) domain.DiscoveredDatabase {
	return domain.DiscoveredDatabase{ID: id, Title: title}
}

func TestResolve_AllFourTypes(t *testing.T) {
	mapping := Resolve([]domain.DiscoveredDatabase{
		discovered("db-1", "Categories"),
		discovered("db-2", "Help Articles"),
		discovered("db-3", "FAQ"),
		discovered("db-4", "Support Tickets"),
	})

	assert.Equal(t, "db-1", mapping.Categories)
	assert.Equal(t, "db-2", mapping.Articles)
	assert.Equal(t, "db-3", mapping.FAQs)
	assert.Equal(t, "db-4", mapping.SupportTickets)
	assert.Equal(t, 4, mapping.Count())
}

func TestResolve_CaseInsensitive(t *testing.T) {
	mapping := Resolve([]domain.DiscoveredDatabase{
		discovered("db-1", "CATEGORIES"),
		discovered("db-2", "faq"),
	})

	assert.Equal(t, "db-1", mapping.Categories)
	assert.Equal(t, "db-2", mapping.FAQs)
}

func TestResolve_TieBreakPrefersArticlesOverTickets(t *testing.T) {
	// "Support Articles" matches both vocabularies; the canonical type
	// order decides, and articles come first.
	mapping := Resolve([]domain.DiscoveredDatabase{
		discovered("db-1", "Support Articles"),
	})

	assert.Equal(t, "db-1", mapping.Articles)
	assert.Empty(t, mapping.SupportTickets)
}

func TestResolve_FirstMatchWinsPerType(t *testing.T) {
	mapping := Resolve([]domain.DiscoveredDatabase{
		discovered("db-1", "Articles"),
		discovered("db-2", "More Articles"),
	})

	assert.Equal(t, "db-1", mapping.Articles)
}

func TestResolve_DatabaseSatisfiesOnlyFirstMatch(t *testing.T) {
	// "Support Articles" matched articles, so it must not fall through to
	// the ticket slot even though that slot is free.
	mapping := Resolve([]domain.DiscoveredDatabase{
		discovered("db-1", "Articles"),
		discovered("db-2", "Support Articles"),
		discovered("db-3", "Tickets"),
	})

	assert.Equal(t, "db-1", mapping.Articles)
	assert.Equal(t, "db-3", mapping.SupportTickets)
}

func TestResolve_UnmatchedTitlesLeftUnmapped(t *testing.T) {
	mapping := Resolve([]domain.DiscoveredDatabase{
		discovered("db-1", "Meeting Notes"),
		discovered("db-2", "Roadmap"),
	})

	assert.True(t, mapping.IsEmpty())
}

func TestResolve_NoDatabases(t *testing.T) {
	mapping := Resolve(nil)
	assert.True(t, mapping.IsEmpty())
}
