package models

// TableField describes one column of a rendered jury table
type TableField struct {
	Key      string
	Title    string
	Sortable bool
}

// TableOptions are passed through to the client-side table widget
type TableOptions struct {
	Ordering  bool
	Searching bool
}

// TableCell is one formatted value plus its optional decorations
type TableCell struct {
	Value     string
	Title     string // hover text
	Link      string
	SortValue string
}

// HasLink reports whether the cell links somewhere
func (c TableCell) HasLink() bool {
	return c.Link != ""
}

// HasSortValue reports whether the cell carries a raw sort key
func (c TableCell) HasSortValue() bool {
	return c.SortValue != ""
}

// DisplayRow is the render-ready form of an AuditLogEntry
type DisplayRow struct {
	ID    TableCell
	When  TableCell
	Who   TableCell
	Where TableCell
	What  TableCell
}

// Cells returns the row cells in column order
func (r DisplayRow) Cells() []TableCell {
	return []TableCell{r.ID, r.When, r.Who, r.Where, r.What}
}

// AuditLogFields is the fixed column layout of the audit log table
var AuditLogFields = []TableField{
	{Key: "id", Title: "ID"},
	{Key: "when", Title: "time"},
	{Key: "who", Title: "user"},
	{Key: "where", Title: "contest"},
	{Key: "what", Title: "action"},
}
