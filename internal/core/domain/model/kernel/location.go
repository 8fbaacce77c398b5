package kernel

import (
	"errors"
	"fmt"
	"math"

	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/errs"
	"github.com/huzaifawork/hrmsnewdeploy-sub005/internal/pkg/guard"
)

const (
	// LatitudeMin is the southernmost legal latitude in decimal degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the northernmost legal latitude in decimal degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the westernmost legal longitude in decimal degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the easternmost legal longitude in decimal degrees.
	LongitudeMax = 180.0
)

// ErrLocationIsNotConstructed is returned when a Location literal is used in
// place of one built by NewLocation.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a point on the Earth's surface in decimal degrees.
//
// Location is an immutable value object. Its zero value is invalid: (0, 0) is a
// real place in the Gulf of Guinea, so an uninitialised Location must not pass as
// one. Use NewLocation to build instances.
//
// Example:
//
//	restaurant, err := kernel.NewLocation(34.1463, 73.2117)
//	if err != nil {
//	    // latitude or longitude out of range
//	}
//	fmt.Println(restaurant) // Location(34.146300,73.211700)
type Location struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewLocation creates a Location after checking latitude is within
// [LatitudeMin, LatitudeMax] and longitude within [LongitudeMin, LongitudeMax].
// Both checks run, so an input with two bad values reports both.
//
// Returns errs.ValueIsOutOfRangeError (matching errs.ErrValueIsOutOfRange) for
// out-of-range or NaN input.
func NewLocation(latitude float64, longitude float64) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

// MustNewLocation is NewLocation for compile-time constants such as defaults and
// test fixtures. It panics on invalid input.
func MustNewLocation(latitude float64, longitude float64) Location {
	loc, err := NewLocation(latitude, longitude)
	if err != nil {
		panic(err)
	}
	return loc
}

// Validate reports whether the Location was built by NewLocation.
func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (l Location) Latitude() float64 {
	return l.latitude
}

// Longitude returns the longitude in decimal degrees.
func (l Location) Longitude() float64 {
	return l.longitude
}

// String implements fmt.Stringer.
func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares two constructed locations coordinate by coordinate.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// Distance returns the great-circle distance in kilometres to other.
//
// The distance is symmetric (a.Distance(b) == b.Distance(a)) and non-negative.
// The only failure is an unconstructed Location on either side.
//
// Example:
//
//	origin, _ := kernel.NewLocation(34.1463, 73.2117)
//	dest, _ := kernel.NewLocation(34.1563, 73.2217)
//	km, err := origin.Distance(dest) // km ≈ 1.43, err == nil
func (l Location) Distance(other Location) (float64, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return 0, err
	}

	return HaversineKm(l.latitude, l.longitude, other.latitude, other.longitude), nil
}

// setLatitude uses a pointer receiver so the constructor can validate fields
// one by one; all exported methods stay on the value receiver.
func (l *Location) setLatitude(latitude float64) error {
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}
