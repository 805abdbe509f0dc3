package errors

import (
	"fmt"
)

// ErrorCode represents a specific error code in the system.
type ErrorCode string

const (
	// GeneralInternalError represents a generic internal error.
	GeneralInternalError ErrorCode = "general_internal_error"
	// GeneralRepositoryError represents a generic repository error.
	GeneralRepositoryError ErrorCode = "general_repository_error"

	// StoreConnectionError represents a failure to reach or authenticate with the store.
	StoreConnectionError ErrorCode = "store_connection_error"
	// StoreStatementError represents a failed DDL or DML statement.
	StoreStatementError ErrorCode = "store_statement_error"

	// StageBuildError represents a failure while building the timestamp index.
	StageBuildError ErrorCode = "stage_build_error"
	// StageDumpError represents a failure in the bulk export/import file round trip.
	StageDumpError ErrorCode = "stage_dump_error"
	// AggregateBatchError represents a failed aggregation batch transaction.
	AggregateBatchError ErrorCode = "aggregate_batch_error"
	// PublishError represents a failure while renaming the staging table into place.
	PublishError ErrorCode = "publish_error"
	// InvalidSourceError represents a data-source identifier outside the allowed charset.
	InvalidSourceError ErrorCode = "invalid_source_error"
)

// Severity represents the severity level of an error.
type Severity string

const (
	// SeverityCritical indicates a critical error that requires immediate attention.
	SeverityCritical Severity = "critical"
	// SeverityHigh indicates a high severity error that should be addressed promptly.
	SeverityHigh Severity = "high"
	// SeverityMedium indicates a medium severity error that should be addressed in due course.
	SeverityMedium Severity = "medium"
	// SeverityLow indicates a low severity error that can be addressed at a later time.
	SeverityLow Severity = "low"
)

// Category represents the category of an error.
type Category string

const (
	// CategoryDatabase indicates an error related to database operations.
	CategoryDatabase Category = "database"
	// CategoryValidation indicates an error related to validation of input data.
	CategoryValidation Category = "validation"
	// CategoryBusinessLogic indicates an error related to business logic processing.
	CategoryBusinessLogic Category = "business_logic"
	// CategoryUnknown indicates an unknown error category.
	CategoryUnknown Category = "unknown"
)

// PipelineError tags an underlying failure with the pipeline phase that
// produced it, so workers can report a stable code for a failed run.
type PipelineError struct {
	Code ErrorCode
	Err  error
}

// NewPipelineError wraps err under the given code.
func NewPipelineError(code ErrorCode, err error) *PipelineError {
	return &PipelineError{Code: code, Err: err}
}

// Error implement error interface
func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Err)
}

// Unwrap returns the underlying error.
func (e *PipelineError) Unwrap() error {
	return e.Err
}

// CodeOf extracts the pipeline error code from err, if any.
func CodeOf(err error) (ErrorCode, bool) {
	for err != nil {
		if pe, ok := err.(*PipelineError); ok {
			return pe.Code, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return "", false
		}
		err = u.Unwrap()
	}
	return "", false
}
