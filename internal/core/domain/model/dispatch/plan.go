package dispatch

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

var (
	// ErrPlanIsNotConstructed is returned by Plan.Validate for literal plans.
	ErrPlanIsNotConstructed = errs.NewValueIsRequiredError("dispatch plan must be created via NewPlan or RestorePlan")

	// ErrStopIsNotConstructed is returned by Stop.Validate for literal stops.
	ErrStopIsNotConstructed = errs.NewValueIsRequiredError("dispatch stop must be created via NewStop")
)

// Stop is one position in a dispatch plan. Sequence starts at 1.
type Stop struct {
	sequence    int
	requestID   kernel.UUID
	destination kernel.Location
	distanceKm  float64

	guard guard.ConstructorGuard
}

// NewStop validates and builds a stop. distanceKm is the straight-line
// distance from the service origin.
func NewStop(sequence int, requestID kernel.UUID, destination kernel.Location, distanceKm float64) (Stop, error) {
	var errList []error

	if sequence < 1 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"sequence", fmt.Errorf("%d is not greater than 0", sequence)))
	}
	if err := requestID.Validate(); err != nil {
		errList = append(errList, err)
	}
	if err := destination.Validate(); err != nil {
		errList = append(errList, err)
	}
	if math.IsNaN(distanceKm) || math.IsInf(distanceKm, 0) || distanceKm < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("distance km", distanceKm, 0, math.Inf(1)))
	}

	if err := errors.Join(errList...); err != nil {
		return Stop{}, err
	}

	return Stop{
		sequence:    sequence,
		requestID:   requestID,
		destination: destination,
		distanceKm:  distanceKm,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (s Stop) Validate() error {
	return s.guard.Validate(ErrStopIsNotConstructed)
}

func (s Stop) Sequence() int {
	return s.sequence
}

func (s Stop) RequestID() kernel.UUID {
	return s.requestID
}

func (s Stop) Destination() kernel.Location {
	return s.destination
}

func (s Stop) DistanceKm() float64 {
	return s.distanceKm
}

// Plan is the ordered visiting sequence produced for one dispatch run.
//
// A plan owns its stops; accessors return copies so a Plan can be shared
// between goroutines once built. Stops are numbered 1..Len() without gaps and
// reference each request at most once. An empty plan is valid.
//
// Example:
//
//	plan, err := planner.Plan(pending)
//	for _, stop := range plan.Stops() {
//	    fmt.Println(stop.Sequence(), stop.RequestID(), stop.DistanceKm())
//	}
type Plan struct {
	id        kernel.UUID
	createdAt time.Time
	stops     []Stop

	guard guard.ConstructorGuard
}

// NewPlan builds a plan from stops already in visiting order.
func NewPlan(id kernel.UUID, createdAt time.Time, stops []Stop) (Plan, error) {
	if err := errors.Join(id.Validate(), validateCreatedAt(createdAt), validateStops(stops)); err != nil {
		return Plan{}, err
	}

	return Plan{
		id:        id,
		createdAt: createdAt.UTC(),
		stops:     slices.Clone(stops),
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestorePlan rebuilds a persisted plan. Stops may arrive in any order and are
// arranged by sequence before validation.
func RestorePlan(id kernel.UUID, createdAt time.Time, stops []Stop) (Plan, error) {
	ordered := slices.Clone(stops)
	slices.SortStableFunc(ordered, func(a, b Stop) int {
		return a.sequence - b.sequence
	})

	return NewPlan(id, createdAt, ordered)
}

func (p Plan) Validate() error {
	return p.guard.Validate(ErrPlanIsNotConstructed)
}

func (p Plan) ID() kernel.UUID {
	return p.id
}

func (p Plan) CreatedAt() time.Time {
	return p.createdAt
}

// Stops returns a copy of the stops in visiting order.
func (p Plan) Stops() []Stop {
	return slices.Clone(p.stops)
}

func (p Plan) Len() int {
	return len(p.stops)
}

// IsEmpty reports whether the plan has no stops.
func (p Plan) IsEmpty() bool {
	return len(p.stops) == 0
}

// RequestIDs lists request ids in visiting order.
func (p Plan) RequestIDs() []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(p.stops))
	for _, s := range p.stops {
		ids = append(ids, s.requestID)
	}
	return ids
}

// FarthestDistanceKm is the largest stop distance from the origin, 0 for an
// empty plan.
func (p Plan) FarthestDistanceKm() float64 {
	farthest := 0.0
	for _, s := range p.stops {
		farthest = math.Max(farthest, s.distanceKm)
	}
	return farthest
}

func validateCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	return nil
}

func validateStops(stops []Stop) error {
	seen := make(map[kernel.UUID]struct{}, len(stops))

	for i, s := range stops {
		if err := s.Validate(); err != nil {
			return err
		}
		if s.sequence != i+1 {
			return errs.NewValueIsInvalidErrorWithCause(
				"sequence", fmt.Errorf("stop %d has sequence %d", i+1, s.sequence))
		}
		if _, dup := seen[s.requestID]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"request id", fmt.Errorf("%s appears more than once", s.requestID))
		}
		seen[s.requestID] = struct{}{}
	}

	return nil
}
