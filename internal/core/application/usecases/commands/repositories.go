// Package commands contains the operations that change delivery state:
// submitting and cancelling delivery requests and planning dispatch runs.
// Every handler validates its command, opens a unit of work, applies domain
// behaviour and commits.
package commands

import (
	"context"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/core/ports"
)

// Unit of work views narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory gives access to delivery requests inside a transaction.
	RequestRepoFactory interface {
		DeliveryRequestRepository() ports.DeliveryRequestRepository
	}

	// RunRepoFactory gives access to dispatch runs inside a transaction.
	RunRepoFactory interface {
		DispatchRunRepository() ports.DispatchRunRepository
	}

	// RequestUoW is used by commands that only touch delivery requests.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates RequestUoW instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}

	// UoW spans delivery requests and dispatch runs.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   pending, err := uow.DeliveryRequestRepository().GetAllPending(ctx)
	//   // ... plan, then
	//   err = uow.DispatchRunRepository().Add(ctx, plan)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		RequestRepoFactory
		RunRepoFactory
	}

	// UoWFactory creates UoW instances.
	UoWFactory interface {
		Create() UoW
	}
)
