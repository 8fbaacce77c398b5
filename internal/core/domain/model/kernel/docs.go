// Package kernel provides the domain primitives shared by every aggregate in the
// delivery-zone service.
//
// The package includes:
//   - UUID: identifier value object wrapping github.com/google/uuid
//   - Location: a validated latitude/longitude pair
//   - HaversineKm: great-circle distance on a 6371 km sphere
//
// Values are immutable and only valid when built through their constructors, so
// they can be shared freely between goroutines.
package kernel
