package delivery

import (
	"fmt"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"
)

// Status is the lifecycle state of a delivery request.
//
// State transitions:
//
//	Pending ──┬──> Dispatched
//	          └──> Cancelled
//
// Dispatched and Cancelled are final.
type Status int

const (
	// Unknown is the zero value and never valid.
	Unknown Status = iota

	// Pending requests are waiting for a dispatch run.
	Pending

	// Dispatched requests were sequenced into a dispatch run.
	Dispatched

	// Cancelled requests were withdrawn before dispatch.
	Cancelled
)

var statusNames = map[Status]string{
	Unknown:    "Unknown",
	Pending:    "Pending",
	Dispatched: "Dispatched",
	Cancelled:  "Cancelled",
}

// Validate rejects Unknown and values outside the declared constants, which
// can only come from corrupt storage.
func (s Status) Validate() error {
	if _, ok := statusNames[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String implements fmt.Stringer; unrecognised values print as "Unknown".
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[Unknown]
}

// Dispatch moves Pending to Dispatched.
func (s Status) Dispatch() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to dispatch", s),
		)
	}
	return Dispatched, nil
}

// Cancel moves Pending to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to cancel", s),
		)
	}
	return Cancelled, nil
}

// ValidateRun checks that a run reference is present exactly when the status
// is Dispatched.
func (s Status) ValidateRun(hasRun bool) error {
	if hasRun && s != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a dispatch run", s),
		)
	}
	if !hasRun && s == Dispatched {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no dispatch run", s),
		)
	}
	return nil
}
