package logging

// Standardized attribute keys. Reconciliation diagnostics use these so
// operator tooling can grep one spelling per concept.
const (
	FieldComponent = "component"
	FieldCategory  = "category"
	FieldTitle     = "title"
	FieldFile      = "file"
	FieldPrefixes  = "prefixes"
	FieldPassID    = "pass_id"
	FieldRow       = "row"
	FieldColumn    = "column"
)
