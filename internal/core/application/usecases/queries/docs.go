// Package queries contains read-only operations: pricing a destination and
// listing persisted delivery state. Read models are built with raw SQL through
// gorm and never load aggregates.
package queries
