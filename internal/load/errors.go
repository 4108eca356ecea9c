package load

import "fmt"

// Load error codes.
const (
	// ErrCodeNotFound indicates a missing input file or directory.
	ErrCodeNotFound = "NOT_FOUND"

	// ErrCodeNoFiles indicates an empty snapshot directory.
	ErrCodeNoFiles = "NO_FILES"

	// ErrCodeParseFailed indicates unparseable CUE or YAML input.
	ErrCodeParseFailed = "PARSE_FAILED"

	// ErrCodeListMismatch indicates the name and preview lists differ in
	// length and cannot be zipped.
	ErrCodeListMismatch = "LIST_MISMATCH"
)

// LoadError represents an error reading or parsing an input file.
type LoadError struct {
	Code    string
	Path    string
	Message string
}

// Error implements the error interface.
func (e *LoadError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}
