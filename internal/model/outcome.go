package model

// ValidationResult is the verdict of the row validator.
type ValidationResult struct {
	Valid  bool
	Errors []string // one human-readable message per problem, in detection order
	Issues []error  // typed counterparts of Errors
}

// ImportOutcome summarizes one import invocation.
type ImportOutcome struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Imported int      `json:"imported"`
	Total    int      `json:"total"`
	Errors   []string `json:"errors,omitempty"`
}

// FileResult reports the outcome of writing an export or template workbook.
type FileResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Location string `json:"location,omitempty"`
}
