package notion

// Filter is a single-property database query filter. Only the two
// conditions the portal needs are supported: select equality (articles and
// FAQs scoped to a category) and checkbox equality (popular flags).
type Filter struct {
	Property string          `json:"property"`
	Select   *SelectFilter   `json:"select,omitempty"`
	Checkbox *CheckboxFilter `json:"checkbox,omitempty"`
}

// SelectFilter matches pages whose select property equals a named option.
type SelectFilter struct {
	Equals string `json:"equals"`
}

// CheckboxFilter matches pages whose checkbox property equals a value.
type CheckboxFilter struct {
	Equals bool `json:"equals"`
}

// SelectEquals builds a select-equality filter.
func SelectEquals(property, option string) *Filter {
	return &Filter{Property: property, Select: &SelectFilter{Equals: option}}
}

// CheckboxEquals builds a checkbox-equality filter.
func CheckboxEquals(property string, value bool) *Filter {
	return &Filter{Property: property, Checkbox: &CheckboxFilter{Equals: value}}
}
