package errors

import "errors"

// Domain errors
var (
	// Input errors
	ErrEmptyTarget   = errors.New("target URL cannot be empty")
	ErrInvalidTarget = errors.New("target URL is not parsable")
	ErrInvalidTier   = errors.New("unknown tier")

	// Audit errors
	ErrMainPageUnreachable = errors.New("could not fetch the website")
	ErrAuditTimeout        = errors.New("audit exceeded overall time budget")

	// Report errors
	ErrResultNotFound       = errors.New("audit result file not found")
	ErrUnsupportedFormat    = errors.New("unsupported report format")
	ErrMalformedResultFile  = errors.New("audit result file is malformed")
	ErrMissingReportOutput  = errors.New("report output path is required")
)
