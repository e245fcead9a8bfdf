package log

// Canonical field names for structured logging.
const (
	FieldService   = "service"
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldIcon      = "icon"
	FieldFormat    = "format"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration"
)
