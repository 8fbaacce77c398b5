package services

import (
	"cmp"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/delivery"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/dispatch"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/kernel"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/domain/model/policy"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

// parallelThreshold is the batch size above which distances are computed on
// several goroutines.
const parallelThreshold = 512

// DispatchPlanner turns a batch of delivery requests into a visiting order.
type DispatchPlanner interface {
	Plan(requests []*delivery.Request) (dispatch.Plan, error)
}

// NearestFirstPlanner orders requests by straight-line distance from the
// origin, nearest first. Requests at equal distance keep their input order.
//
// This is a single-vehicle heuristic, not a route optimiser: it never looks at
// distances between destinations.
//
// Example:
//
//	planner := services.NewNearestFirstPlanner(policy.MustDefault())
//	plan, err := planner.Plan(pending)
//	// plan.Stops()[0] is the request closest to the restaurant
type NearestFirstPlanner struct {
	policy policy.Policy
}

func NewNearestFirstPlanner(p policy.Policy) NearestFirstPlanner {
	return NearestFirstPlanner{policy: p}
}

var _ DispatchPlanner = NearestFirstPlanner{}

type rankedRequest struct {
	request    *delivery.Request
	distanceKm float64
}

// Plan validates the batch, measures every request and returns a new plan.
// An empty batch yields an empty plan. Nil or unconstructed requests and
// duplicate ids are rejected before any distance is computed.
func (p NearestFirstPlanner) Plan(requests []*delivery.Request) (dispatch.Plan, error) {
	if err := p.policy.Validate(); err != nil {
		return dispatch.Plan{}, err
	}
	if err := validateBatch(requests); err != nil {
		return dispatch.Plan{}, err
	}

	ranked, err := p.measure(requests)
	if err != nil {
		return dispatch.Plan{}, err
	}

	slices.SortStableFunc(ranked, func(a, b rankedRequest) int {
		return cmp.Compare(a.distanceKm, b.distanceKm)
	})

	stops := make([]dispatch.Stop, 0, len(ranked))
	for i, r := range ranked {
		stop, stopErr := dispatch.NewStop(i+1, r.request.ID(), r.request.Destination(), r.distanceKm)
		if stopErr != nil {
			return dispatch.Plan{}, stopErr
		}
		stops = append(stops, stop)
	}

	return dispatch.NewPlan(kernel.NewUUID(), time.Now(), stops)
}

// measure fills distances by input index, so the result does not depend on
// goroutine scheduling.
func (p NearestFirstPlanner) measure(requests []*delivery.Request) ([]rankedRequest, error) {
	ranked := make([]rankedRequest, len(requests))
	origin := p.policy.Origin()

	measureRange := func(from, to int) error {
		for i := from; i < to; i++ {
			d, err := origin.Distance(requests[i].Destination())
			if err != nil {
				return err
			}
			ranked[i] = rankedRequest{request: requests[i], distanceKm: d}
		}
		return nil
	}

	if len(requests) <= parallelThreshold {
		return ranked, measureRange(0, len(requests))
	}

	workers := runtime.GOMAXPROCS(0)
	chunk := (len(requests) + workers - 1) / workers

	var g errgroup.Group
	for from := 0; from < len(requests); from += chunk {
		to := min(from+chunk, len(requests))
		g.Go(func() error {
			return measureRange(from, to)
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ranked, nil
}

func validateBatch(requests []*delivery.Request) error {
	seen := make(map[kernel.UUID]int, len(requests))

	for i, r := range requests {
		if r == nil {
			return errs.NewValueIsRequiredErrorWithCause("request", fmt.Errorf("batch position %d is nil", i))
		}
		if err := r.Validate(); err != nil {
			return err
		}
		if first, dup := seen[r.ID()]; dup {
			return errs.NewValueIsInvalidErrorWithCause(
				"request id",
				fmt.Errorf("%s appears at batch positions %d and %d", r.ID(), first, i),
			)
		}
		seen[r.ID()] = i
	}

	return nil
}
