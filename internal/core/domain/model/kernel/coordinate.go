package kernel

import (
	"errors"
	"math"

	"valuekit/internal/pkg/errs"
	"valuekit/internal/pkg/guard"
)

const (
	// LatitudeMin is the minimum valid latitude in degrees.
	LatitudeMin = -90.0
	// LatitudeMax is the maximum valid latitude in degrees.
	LatitudeMax = 90.0
	// LongitudeMin is the minimum valid longitude in degrees.
	LongitudeMin = -180.0
	// LongitudeMax is the maximum valid longitude in degrees.
	LongitudeMax = 180.0
)

// ErrGeographicCoordinateIsNotConstructed is returned when attempting to use
// an improperly initialized GeographicCoordinate. Coordinates must be created
// via NewGeographicCoordinate or NewGeographicCoordinateWithAltitude.
var ErrGeographicCoordinateIsNotConstructed = errs.NewValueIsRequiredError(
	"coordinate must be created via NewGeographicCoordinate or NewGeographicCoordinateWithAltitude constructors")

// GeographicCoordinate is an immutable point on the globe with validated
// latitude and longitude in degrees and an optional non-negative altitude in
// meters. The zero value is invalid and will fail validation - use the
// constructors to create instances.
//
// Example:
//
//	coord, err := kernel.NewGeographicCoordinateWithAltitude(40.7128, -74.006, 10.5)
//	if err != nil {
//	    // handle validation error
//	}
//	fmt.Println(coord)
//	// Output: GeographicCoordinate(latitude=40.7128, longitude=-74.006, altitude=10.5)
type GeographicCoordinate struct { //nolint:recvcheck // pointer receivers used for construction-time setters
	latitude    float64
	longitude   float64
	altitude    float64
	hasAltitude bool
	guard       guard.ConstructorGuard
}

// NewGeographicCoordinate creates a coordinate from latitude and longitude.
// Latitude must be within [LatitudeMin..LatitudeMax] and longitude within
// [LongitudeMin..LongitudeMax]; both bounds are validated before any
// instance becomes observable.
func NewGeographicCoordinate(latitude float64, longitude float64) (GeographicCoordinate, error) {
	coord := GeographicCoordinate{guard: guard.NewConstructorGuard()}

	if err := errors.Join(coord.setLatitude(latitude), coord.setLongitude(longitude)); err != nil {
		return GeographicCoordinate{}, err
	}

	return coord, nil
}

// NewGeographicCoordinateWithAltitude creates a coordinate carrying an
// altitude. The altitude cannot be negative.
func NewGeographicCoordinateWithAltitude(
	latitude float64, longitude float64, altitude float64,
) (GeographicCoordinate, error) {
	coord, err := NewGeographicCoordinate(latitude, longitude)
	if err != nil {
		return GeographicCoordinate{}, err
	}

	if math.IsNaN(altitude) || altitude < 0 {
		return GeographicCoordinate{}, errs.NewValueIsInvalidErrorWithCause("altitude",
			errors.New("altitude cannot be negative"))
	}
	coord.altitude = altitude
	coord.hasAltitude = true

	return coord, nil
}

// Latitude returns the latitude in degrees.
func (c GeographicCoordinate) Latitude() float64 {
	return c.latitude
}

// Longitude returns the longitude in degrees.
func (c GeographicCoordinate) Longitude() float64 {
	return c.longitude
}

// Altitude returns the altitude in meters and whether one was supplied.
func (c GeographicCoordinate) Altitude() (float64, bool) {
	return c.altitude, c.hasAltitude
}

// Validate checks if the GeographicCoordinate was properly constructed.
func (c GeographicCoordinate) Validate() error {
	return c.guard.Validate(ErrGeographicCoordinateIsNotConstructed)
}

// SameValueAs compares two coordinates field by field.
func (c GeographicCoordinate) SameValueAs(other GeographicCoordinate) bool {
	return c.latitude == other.latitude &&
		c.longitude == other.longitude &&
		c.altitude == other.altitude &&
		c.hasAltitude == other.hasAltitude
}

// Equals reports whether other is a GeographicCoordinate with all fields
// equal.
func (c GeographicCoordinate) Equals(other any) bool {
	return Equals(c, other)
}

// Fields returns the declared field list. The altitude only appears when one
// was supplied, mirroring equality.
func (c GeographicCoordinate) Fields() []Field {
	fields := []Field{
		{Name: "latitude", Value: c.latitude},
		{Name: "longitude", Value: c.longitude},
	}
	if c.hasAltitude {
		fields = append(fields, Field{Name: "altitude", Value: c.altitude})
	}
	return fields
}

// Hash combines exactly the fields equality uses.
func (c GeographicCoordinate) Hash() uint64 {
	return HashFields("GeographicCoordinate", c.Fields()...)
}

// String implements fmt.Stringer with the canonical synthesized form.
func (c GeographicCoordinate) String() string {
	return Represent("GeographicCoordinate", c.Fields()...)
}

func (c *GeographicCoordinate) setLatitude(latitude float64) error {
	// NaN slips through plain bound checks
	if math.IsNaN(latitude) || latitude < LatitudeMin || latitude > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	c.latitude = latitude
	return nil
}

func (c *GeographicCoordinate) setLongitude(longitude float64) error {
	if math.IsNaN(longitude) || longitude < LongitudeMin || longitude > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	c.longitude = longitude
	return nil
}
