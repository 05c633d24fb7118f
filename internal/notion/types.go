package notion

import "time"

// BlockTypeChildDatabase is the type tag of a child database block.
const BlockTypeChildDatabase = "child_database"

// Block is a single child block of a page. Only the fields needed to
// recognise child databases are decoded; everything else is ignored.
type Block struct {
	Object        string         `json:"object"`
	ID            string         `json:"id"`
	Type          string         `json:"type"`
	HasChildren   bool           `json:"has_children,omitempty"`
	ChildDatabase *ChildDatabase `json:"child_database,omitempty"`
}

// ChildDatabase is the payload of a child_database block.
type ChildDatabase struct {
	Title string `json:"title"`
}

// BlockChildren is one page of a block-children listing.
type BlockChildren struct {
	Results    []Block `json:"results"`
	HasMore    bool    `json:"has_more"`
	NextCursor string  `json:"next_cursor,omitempty"`
}

// Database is a database object with its property schema.
type Database struct {
	Object     string                    `json:"object"`
	ID         string                    `json:"id"`
	Title      []RichText                `json:"title"`
	Properties map[string]PropertySchema `json:"properties"`
	URL        string                    `json:"url,omitempty"`
}

// PropertySchema describes one column of a database.
type PropertySchema struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	// Select holds the option set for select-typed properties.
	Select *SelectSchema `json:"select,omitempty"`
}

// SelectSchema is the configuration of a select property.
type SelectSchema struct {
	Options []SelectOption `json:"options"`
}

// SelectOption is a single option of a select property. On the write path
// an option may be referenced by name alone; the workspace assigns the id.
type SelectOption struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
}

// Page is a single record within a database.
type Page struct {
	Object         string                   `json:"object"`
	ID             string                   `json:"id"`
	CreatedTime    time.Time                `json:"created_time"`
	LastEditedTime time.Time                `json:"last_edited_time"`
	Properties     map[string]PropertyValue `json:"properties"`
	URL            string                   `json:"url,omitempty"`
}

// PropertyValue is one typed property of a page. The same shape serves both
// directions: the read path decodes whichever branch the workspace filled
// in, and the write path marshals only the branches that are set, so a
// partial update never clobbers properties it omits.
type PropertyValue struct {
	ID   string `json:"id,omitempty"`
	Type string `json:"type,omitempty"`

	Title    []RichText    `json:"title,omitempty"`
	RichText []RichText    `json:"rich_text,omitempty"`
	Select   *SelectOption `json:"select,omitempty"`
	Email    *string       `json:"email,omitempty"`
	Checkbox *bool         `json:"checkbox,omitempty"`
	Date     *Date         `json:"date,omitempty"`
}

// Date is the value of a date property. Start uses ISO 8601.
type Date struct {
	Start string `json:"start"`
	End   string `json:"end,omitempty"`
}
