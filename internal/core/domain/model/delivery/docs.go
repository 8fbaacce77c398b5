// Package delivery models a customer's request to have food delivered to a
// destination inside the restaurant's service area.
//
// The package includes:
//   - Request: the aggregate root holding identity, destination and lifecycle
//   - Status: the state machine the request moves through
//
// Key business rules:
//   - A request needs a valid identifier and a constructed destination
//   - New requests start Pending and wait for the next dispatch run
//   - Only Pending requests can be dispatched or cancelled
//   - A dispatched request remembers the run that picked it up
package delivery
