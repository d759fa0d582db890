package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Validation errors (N001-N009)

	"N001": {
		Category: CategoryValidation,
		Message:  "Invalid notification kind",
	},
	"N002": {
		Category: CategoryValidation,
		Message:  "Invalid kind theme",
	},

	// Config errors (N010-N019)

	"N010": {
		Category: CategoryConfig,
		Message:  "Config file not found",
	},
	"N011": {
		Category: CategoryConfig,
		Message:  "Failed to read config",
	},
	"N012": {
		Category: CategoryConfig,
		Message:  "Invalid config value",
	},

	// Render errors (N020-N029)

	"N020": {
		Category: CategoryRender,
		Message:  "Render failed",
	},
	"N021": {
		Category: CategoryRender,
		Message:  "Unknown node kind",
	},

	// Runtime errors (N030-N039)

	"N030": {
		Category: CategoryRuntime,
		Message:  "Event loop stopped",
		Detail:   "The loop no longer accepts callbacks.",
	},
	"N031": {
		Category: CategoryRuntime,
		Message:  "Event loop already running",
	},

	// CLI errors (N040-N049)

	"N040": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
	},
}

// Lookup returns the template registered for code.
func Lookup(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
