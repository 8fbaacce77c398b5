// Package services implements the delivery-zone decisions that sit on top of a
// Policy: whether a destination is served, what it costs, when the food
// arrives and in which order a batch of deliveries is driven.
//
// The package includes:
//   - ZoneValidator: inclusive radius check around the restaurant origin
//   - FeeCalculator: base fee plus a per-kilometre charge rounded up
//   - ETAEstimator: live traffic lookup with a deterministic fallback
//   - DispatchPlanner / NearestFirstPlanner: stable nearest-first sequencing
//
// Every service is a small value over an immutable Policy and holds no other
// state, so one instance can serve concurrent callers.
package services
