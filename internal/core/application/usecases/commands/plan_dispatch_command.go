package commands

import (
	"errors"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

var ErrPlanDispatchCommandIsNotConstructed = errors.New(
	"PlanDispatchCommand must be created via NewPlanDispatchCommand constructor",
)

// PlanDispatchCommand triggers a dispatch run over every pending request.
//
// Example:
//
//	plan, err := handler.Handle(ctx, NewPlanDispatchCommand())
//	if errors.Is(err, ErrNoPendingRequests) {
//	    return nil
//	}
type PlanDispatchCommand struct {
	guard guard.ConstructorGuard
}

func NewPlanDispatchCommand() PlanDispatchCommand {
	return PlanDispatchCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c PlanDispatchCommand) Validate() error {
	return c.guard.Validate(ErrPlanDispatchCommandIsNotConstructed)
}
