package app

import (
	"errors"
	"time"

	"github.com/alexanderramin/goalaudit/internal/domain"
)

type ExportRequest struct {
	// CaseID selects a stored case. Empty means the current case.
	CaseID string
	// OutputDir overrides the configured export directory.
	OutputDir string
	Now       *time.Time
	// SkipFailedGoals continues past goals that cannot be evaluated
	// instead of aborting the run.
	SkipFailedGoals bool
}

func NewExportRequest() ExportRequest {
	return ExportRequest{}
}

type ExportResponse struct {
	Path      string
	PatientID string
	CaseName  string
	RowCount  int
	Skipped   []domain.SkippedGoal
	Table     *domain.ResultTable
}

type PreviewRequest struct {
	CaseID          string
	SkipFailedGoals bool
}

type PreviewResponse struct {
	Case  *domain.Case
	Table *domain.ResultTable
}

type ExportErrorCode string

const (
	ExportErrContextUnavailable ExportErrorCode = "CONTEXT_UNAVAILABLE"
	ExportErrUnrecognizedKind   ExportErrorCode = "UNRECOGNIZED_GOAL_KIND"
	ExportErrEvaluation         ExportErrorCode = "EVALUATION_FAILED"
	ExportErrIO                 ExportErrorCode = "EXPORT_IO"
)

type ExportError struct {
	Code    ExportErrorCode
	Message string
	Err     error
}

func (e *ExportError) Error() string {
	if e.Err != nil {
		return string(e.Code) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Code) + ": " + e.Message
}

func (e *ExportError) Unwrap() error { return e.Err }

// ExportErrorCodeOf returns the code of the first ExportError in err's
// chain, or "" when there is none.
func ExportErrorCodeOf(err error) ExportErrorCode {
	var ee *ExportError
	if errors.As(err, &ee) {
		return ee.Code
	}
	return ""
}
