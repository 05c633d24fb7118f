package domain

// PropertyType is the closed set of workspace property types the portal
// consults. The workspace supports more, but only these six ever appear in
// an entity contract; anything else is reported as an extra property.
type PropertyType string

const (
	// PropertyTitle is the database's single title column.
	PropertyTitle PropertyType = "title"
	// PropertyRichText stores formatted body text.
	PropertyRichText PropertyType = "rich_text"
	// PropertySelect stores a single choice from predefined options.
	PropertySelect PropertyType = "select"
	// PropertyEmail stores an email address.
	PropertyEmail PropertyType = "email"
	// PropertyCheckbox stores a boolean flag.
	PropertyCheckbox PropertyType = "checkbox"
	// PropertyDate stores a calendar date.
	PropertyDate PropertyType = "date"
)

// KnownPropertyTypes returns the consulted property types in a fixed order.
// Validation iterates in this order so results are deterministic.
func KnownPropertyTypes() []PropertyType {
	return []PropertyType{
		PropertyTitle, PropertyRichText, PropertySelect,
		PropertyEmail, PropertyCheckbox, PropertyDate,
	}
}

// DiscoveredDatabase describes a database found under the configured
// workspace page. It is produced fresh on every discovery pass and never
// cached beyond it.
type DiscoveredDatabase struct {
	// ID is the opaque workspace database identifier.
	ID string

	// Title is the database's display title.
	Title string

	// Properties maps property name to its workspace type.
	Properties map[string]PropertyType

	// SelectOptions maps select-typed property names to their option names,
	// in the order the workspace returns them.
	SelectOptions map[string][]string
}

// DatabaseMapping assigns a workspace database to each logical entity type.
// An empty string means no database has been mapped for that type.
//
// The mapping is written wholesale: a resolution pass always rewrites all
// four fields together, never a partial update.
type DatabaseMapping struct {
	Categories     string
	Articles       string
	FAQs           string
	SupportTickets string
}

// IDFor returns the mapped database id for an entity type, or empty string.
func (m DatabaseMapping) IDFor(t EntityType) string {
	switch t {
	case EntityCategories:
		return m.Categories
	case EntityArticles:
		return m.Articles
	case EntityFAQs:
		return m.FAQs
	case EntitySupportTickets:
		return m.SupportTickets
	default:
		return ""
	}
}

// Set assigns a database id for an entity type. Unknown types are ignored.
func (m *DatabaseMapping) Set(t EntityType, id string) {
	switch t {
	case EntityCategories:
		m.Categories = id
	case EntityArticles:
		m.Articles = id
	case EntityFAQs:
		m.FAQs = id
	case EntitySupportTickets:
		m.SupportTickets = id
	}
}

// Has reports whether a database is mapped for the entity type.
func (m DatabaseMapping) Has(t EntityType) bool {
	return m.IDFor(t) != ""
}

// Count returns how many entity types have a mapped database.
func (m DatabaseMapping) Count() int {
	n := 0
	for _, t := range AllEntityTypes() {
		if m.Has(t) {
			n++
		}
	}
	return n
}

// IsEmpty reports whether no entity type has a mapped database.
func (m DatabaseMapping) IsEmpty() bool {
	return m.Count() == 0
}
