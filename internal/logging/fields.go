package logging

// Structured field names shared by every component.
const (
	FieldComponent = "component"
	FieldExpenseID = "expense_id"
	FieldCategory  = "category"
	FieldAmount    = "amount"
	FieldBackend   = "backend"
	FieldCount     = "count"
	FieldCommand   = "command"
	FieldStack     = "stack"
	FieldPath      = "path"
)

// Component names.
const (
	ComponentStore  = "store"
	ComponentTUI    = "tui"
	ComponentCLI    = "cli"
	ComponentConfig = "config"
)
