// Package dispatch holds the result of sequencing a batch of delivery requests
// for one run: an ordered list of stops.
package dispatch
