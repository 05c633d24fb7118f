package schema

import "github.com/ludwa6/customer-support/internal/core/domain"

// PropertySpec describes one property of an entity contract.
type PropertySpec struct {
	// Name is the canonical property name.
	Name string

	// Type is the workspace property type the portal expects.
	Type domain.PropertyType

	// Required marks properties the portal cannot function without.
	Required bool

	// Synonyms are lowercase substrings accepted in place of the canonical
	// name under lenient matching. A database property of the right type
	// whose lowercased name contains any of them satisfies this field.
	Synonyms []string

	// ExpectedOptions lists option names a select property should carry.
	// Missing options are reported as warnings, never errors.
	ExpectedOptions []string

	// SuppressOptionWarnings disables the missing-option warning. Used for
	// the ticket Status property, whose options are always customised per
	// workspace.
	SuppressOptionWarnings bool
}

// EntitySpec is the full property contract for one entity type.
type EntitySpec struct {
	// Properties in declaration order. At most one required property has
	// the title type: the workspace allows a single title column per
	// database.
	Properties []PropertySpec

	// Lenient enables synonym matching for required properties. Enabled
	// only for FAQs, the shape most often hand-created with the
	// workspace's default title column name.
	Lenient bool
}

// specs is the fixed registry of entity contracts.
var specs = map[domain.EntityType]EntitySpec{
	domain.EntityCategories: {
		Properties: []PropertySpec{
			{Name: "Name", Type: domain.PropertyTitle, Required: true},
			{Name: "Description", Type: domain.PropertyRichText, Required: true},
		},
	},
	domain.EntityArticles: {
		Properties: []PropertySpec{
			{Name: "Title", Type: domain.PropertyTitle, Required: true},
			{Name: "Content", Type: domain.PropertyRichText, Required: true},
			{Name: "Category", Type: domain.PropertySelect},
			{Name: "Popular", Type: domain.PropertyCheckbox},
		},
	},
	domain.EntityFAQs: {
		Lenient: true,
		Properties: []PropertySpec{
			{
				Name:     "Question",
				Type:     domain.PropertyTitle,
				Required: true,
				Synonyms: []string{"question", "title", "name"},
			},
			{
				Name:     "Answer",
				Type:     domain.PropertyRichText,
				Required: true,
				Synonyms: []string{"answer", "content", "description"},
			},
			{Name: "Category", Type: domain.PropertySelect},
			{Name: "Popular", Type: domain.PropertyCheckbox},
		},
	},
	domain.EntitySupportTickets: {
		Properties: []PropertySpec{
			{Name: "Title", Type: domain.PropertyTitle, Required: true},
			{Name: "Description", Type: domain.PropertyRichText, Required: true},
			{Name: "Email", Type: domain.PropertyEmail, Required: true},
			{
				Name:                   "Status",
				Type:                   domain.PropertySelect,
				Required:               true,
				ExpectedOptions:        []string{"Open", "In Progress", "Resolved", "Closed"},
				SuppressOptionWarnings: true,
			},
			{
				Name:            "Priority",
				Type:            domain.PropertySelect,
				ExpectedOptions: []string{"Low", "Medium", "High"},
			},
			{Name: "Due", Type: domain.PropertyDate},
		},
	},
}

// SpecFor returns the contract for an entity type.
func SpecFor(t domain.EntityType) (EntitySpec, bool) {
	spec, ok := specs[t]
	return spec, ok
}
