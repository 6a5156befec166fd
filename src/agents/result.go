package agents

import (
	"errors"

	"admission-backend/src/apperrors"
)

// Kind tags the outcome of an agent operation.
type Kind string

const (
	KindOK                  Kind = "ok"
	KindNothingToProcess    Kind = "nothing_to_process"
	KindNotFound            Kind = "not_found"
	KindValidationFailed    Kind = "validation_failed"
	KindUpstreamUnavailable Kind = "upstream_unavailable"
)

// Fixed sentinel texts.
const (
	MsgNoApplicationsToScreen    = "No applications to screen."
	MsgNoApplicationsToShortlist = "No applications to shortlist."
	MsgNoLoanRequests            = "No loan requests to evaluate."
	MsgLoanBudgetMissing         = "Loan budget information is missing."
	MsgApplicationNotFound       = "Application not found."
	MsgStudentNotFound           = "Student not found."
)

// Result is what every agent operation returns. Text holds the generated
// response or a sentinel; Detail explains failures.
type Result struct {
	Kind   Kind   `json:"kind"`
	Text   string `json:"result"`
	Detail string `json:"detail,omitempty"`
}

func OK(text string) Result {
	return Result{Kind: KindOK, Text: text}
}

func NothingToProcess(sentinel string) Result {
	return Result{Kind: KindNothingToProcess, Text: sentinel}
}

func NotFound(sentinel string) Result {
	return Result{Kind: KindNotFound, Text: sentinel, Detail: sentinel}
}

func ValidationFailed(detail string) Result {
	return Result{Kind: KindValidationFailed, Detail: detail}
}

func UpstreamUnavailable(detail string) Result {
	return Result{Kind: KindUpstreamUnavailable, Detail: detail}
}

// Failed reports whether the operation did not produce a usable answer.
func (r Result) Failed() bool {
	switch r.Kind {
	case KindOK, KindNothingToProcess:
		return false
	}
	return true
}

// String renders the result for plain-text callers. Validation and upstream
// failures carry an "Error: " prefix.
func (r Result) String() string {
	switch r.Kind {
	case KindValidationFailed, KindUpstreamUnavailable:
		return "Error: " + r.Detail
	}
	return r.Text
}

// fromError maps a service error onto a result. notFound is the sentinel
// used for ErrNotFound.
func fromError(err error, notFound string) Result {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		if notFound == "" {
			notFound = err.Error()
		}
		return NotFound(notFound)
	case errors.Is(err, apperrors.ErrValidationFailed), errors.Is(err, apperrors.ErrBadRequest):
		return ValidationFailed(err.Error())
	}
	return UpstreamUnavailable(err.Error())
}
