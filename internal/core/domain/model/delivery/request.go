package delivery

import (
	"errors"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

// ErrRequestIsNotConstructed is returned by Validate for nil or literal requests.
var ErrRequestIsNotConstructed = errs.NewValueIsRequiredError(
	"delivery request must be created via NewRequest or RestoreRequest")

// ErrSubmittedAtIsRequired is returned when a request has no submission time.
var ErrSubmittedAtIsRequired = errs.NewValueIsRequiredError("submitted at")

// Request is a single delivery destination waiting to be sequenced.
//
// Request is the aggregate root of this package. Identity is the id alone;
// two requests with the same id are the same request regardless of state.
//
// Example:
//
//	dest, _ := kernel.NewLocation(34.1563, 73.2217)
//	req, err := delivery.NewRequest(kernel.NewUUID(), dest, time.Now())
//	if err != nil {
//	    return err
//	}
//	_ = req.Dispatch(runID)
type Request struct {
	id          kernel.UUID
	destination kernel.Location
	status      Status
	runID       *kernel.UUID
	submittedAt time.Time

	guard guard.ConstructorGuard
}

// NewRequest creates a Pending request. All field errors are joined.
func NewRequest(id kernel.UUID, destination kernel.Location, submittedAt time.Time) (*Request, error) {
	r := &Request{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDestination(destination),
		r.setSubmittedAt(submittedAt),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRequest rebuilds a request loaded from storage. The status and run
// reference must agree: runID is set exactly when status is Dispatched.
func RestoreRequest(
	id kernel.UUID,
	destination kernel.Location,
	status Status,
	runID *kernel.UUID,
	submittedAt time.Time,
) (*Request, error) {
	r := &Request{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setDestination(destination),
		r.setSubmittedAt(submittedAt),
		r.setStatus(status, runID),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate returns ErrRequestIsNotConstructed for nil or literal requests.
func (r *Request) Validate() error {
	if r == nil {
		return ErrRequestIsNotConstructed
	}
	return r.guard.Validate(ErrRequestIsNotConstructed)
}

// IsEqual compares identities.
func (r *Request) IsEqual(other *Request) bool {
	return other != nil && r.id.IsEqual(other.id)
}

func (r *Request) ID() kernel.UUID {
	return r.id
}

func (r *Request) Destination() kernel.Location {
	return r.destination
}

func (r *Request) Status() Status {
	return r.status
}

// DispatchRun returns the run that dispatched this request, or nil.
func (r *Request) DispatchRun() *kernel.UUID {
	return r.runID
}

func (r *Request) SubmittedAt() time.Time {
	return r.submittedAt
}

// IsPending is shorthand for Status() == Pending.
func (r *Request) IsPending() bool {
	return r.status == Pending
}

// Dispatch marks the request as picked up by the given run.
func (r *Request) Dispatch(runID kernel.UUID) error {
	if err := runID.Validate(); err != nil {
		return err
	}

	next, err := r.status.Dispatch()
	if err != nil {
		return err
	}

	r.status = next
	r.runID = &runID
	return nil
}

// Cancel withdraws a pending request.
func (r *Request) Cancel() error {
	next, err := r.status.Cancel()
	if err != nil {
		return err
	}

	r.status = next
	return nil
}

func (r *Request) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Request) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	r.destination = destination
	return nil
}

func (r *Request) setSubmittedAt(at time.Time) error {
	if at.IsZero() {
		return ErrSubmittedAtIsRequired
	}
	r.submittedAt = at.UTC()
	return nil
}

func (r *Request) setStatus(status Status, runID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateRun(runID != nil); err != nil {
		return err
	}
	if runID != nil {
		if err := runID.Validate(); err != nil {
			return err
		}
		id := *runID
		r.runID = &id
	}
	r.status = status
	return nil
}
