package gen

import (
	"errors"
	"fmt"

	"symbolgen/internal/symbol"
)

// IntegrityError represents an upstream data-inconsistency detected during
// derivation or raw-value validation.
//
// Integrity errors are fatal: they mean the input snapshots contradict each
// other, so the run must abort producing no output. They are raised at a
// single validation boundary so the pipeline stages stay pure.
type IntegrityError struct {
	// Code identifies the error category.
	Code IntegrityErrorCode

	// Message is a human-readable description.
	Message string

	// Symbol identifies the affected canonical symbol, if any.
	Symbol string

	// Availability identifies the affected epoch, if any.
	Availability string
}

// IntegrityErrorCode categorizes integrity errors.
type IntegrityErrorCode string

const (
	// ErrCodeBrokenRenameChain indicates a deprecated name version with no
	// later differing successor in its symbol's history.
	ErrCodeBrokenRenameChain IntegrityErrorCode = "BROKEN_RENAME_CHAIN"

	// ErrCodeRawValueMismatch indicates the raw-value row count for an epoch
	// does not match the number of cases alive at that epoch.
	ErrCodeRawValueMismatch IntegrityErrorCode = "RAW_VALUE_COUNT_MISMATCH"
)

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	switch {
	case e.Symbol != "" && e.Availability != "":
		return fmt.Sprintf("%s: %s (symbol=%s, availability=%s)", e.Code, e.Message, e.Symbol, e.Availability)
	case e.Symbol != "":
		return fmt.Sprintf("%s: %s (symbol=%s)", e.Code, e.Message, e.Symbol)
	case e.Availability != "":
		return fmt.Sprintf("%s: %s (availability=%s)", e.Code, e.Message, e.Availability)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsIntegrityError reports whether err is (or wraps) an IntegrityError.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

// NewBrokenChainError creates an IntegrityError for a name version that is
// never superseded by a differing name.
func NewBrokenChainError(canonical, name string, at symbol.Availability) *IntegrityError {
	return &IntegrityError{
		Code:         ErrCodeBrokenRenameChain,
		Message:      fmt.Sprintf("name version %q has no later differing successor", name),
		Symbol:       canonical,
		Availability: at.String(),
	}
}

// NewRawValueMismatchError creates an IntegrityError for an epoch whose row
// count disagrees with the number of cases alive at that epoch.
func NewRawValueMismatchError(at symbol.Availability, rows, alive int) *IntegrityError {
	return &IntegrityError{
		Code:         ErrCodeRawValueMismatch,
		Message:      fmt.Sprintf("emitted %d raw-value rows for %d live cases", rows, alive),
		Availability: at.String(),
	}
}
