// Package policy holds the restaurant's delivery configuration: where
// deliveries start, how far they may go, how they are priced and how arrival
// time is estimated when live traffic is unavailable.
//
// A Policy is built once at startup from Settings and handed to every domain
// service. It never changes afterwards, so services built on the same Policy
// can be used concurrently without coordination.
package policy
