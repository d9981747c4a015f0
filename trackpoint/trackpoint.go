package trackpoint

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

var (
	// ErrNoDriftDirection is returned when a drift-time shift is requested
	// for a point classified outside every active volume. Such points cannot
	// take part in drift-based matching and the caller must skip or reject
	// them; treating the missing sign as zero would corrupt the match search
	// without any signal.
	ErrNoDriftDirection = errors.New("no drift direction: endpoint outside active volumes")

	// ErrDriftVelocityUnset is returned when a shift is requested without a
	// usable drift velocity. There is no built-in default: the correct value
	// depends on the detector field configuration and must come from the
	// hosting application, directly or through config.
	ErrDriftVelocityUnset = errors.New("drift velocity not configured")
)

// TrackPoint is one endpoint of a reconstructed TPC track.
//
// Endpoints are the unit of CRT-TPC matching: for each track end the pipeline
// computes distances of closest approach to candidate CRT hits, shifting the
// endpoint along the drift axis by each candidate hit time. DriftDirection is
// derived from PositionX once, at construction. Direct writes to PositionX
// afterwards do not update it; RecomputeDriftDirection and WithShiftedX
// re-derive it when the new x may sit in a different region.
//
// All fields are plain data. The struct is not safe for concurrent mutation;
// give each goroutine its own points.
type TrackPoint struct {
	// TrackID links the point back to the track it came from. No uniqueness
	// is enforced here.
	TrackID int

	// Endpoint position in cm.
	PositionX float64
	PositionY float64
	PositionZ float64

	// Endpoint unit direction as supplied by the caller. Components are
	// stored as given and never renormalized.
	DirectionX float64
	DirectionY float64
	DirectionZ float64

	// DriftDirection is the drift sign implied by PositionX at construction
	// time, or DriftNone for a point outside the active volumes. Collaborators
	// that know better (cathode crossers, test fixtures) may overwrite it.
	DriftDirection DriftDirection
}

// New builds a track point and derives its drift direction against
// DefaultGeometry. Inputs are stored as given; nothing beyond the x
// classification is validated.
func New(trackID int, posX, posY, posZ, dirX, dirY, dirZ float64) *TrackPoint {
	return NewInGeometry(DefaultGeometry(), trackID, posX, posY, posZ, dirX, dirY, dirZ)
}

// NewInGeometry is New with an explicit detector geometry.
func NewInGeometry(geom Geometry, trackID int, posX, posY, posZ, dirX, dirY, dirZ float64) *TrackPoint {
	return &TrackPoint{
		TrackID:        trackID,
		PositionX:      posX,
		PositionY:      posY,
		PositionZ:      posZ,
		DirectionX:     dirX,
		DirectionY:     dirY,
		DirectionZ:     dirZ,
		DriftDirection: geom.DriftDirection(posX),
	}
}

// Position returns the endpoint position as a vector in cm.
func (p *TrackPoint) Position() r3.Vec {
	return r3.Vec{X: p.PositionX, Y: p.PositionY, Z: p.PositionZ}
}

// SetPosition overwrites all three position components. Like a direct field
// write, it does not re-derive DriftDirection.
func (p *TrackPoint) SetPosition(v r3.Vec) {
	p.PositionX, p.PositionY, p.PositionZ = v.X, v.Y, v.Z
}

// Direction returns the endpoint direction as a vector.
func (p *TrackPoint) Direction() r3.Vec {
	return r3.Vec{X: p.DirectionX, Y: p.DirectionY, Z: p.DirectionZ}
}

// SetDirection overwrites all three direction components, stored as given.
func (p *TrackPoint) SetDirection(v r3.Vec) {
	p.DirectionX, p.DirectionY, p.DirectionZ = v.X, v.Y, v.Z
}

// Region classifies the point's current x-position in geom.
func (p *TrackPoint) Region(geom Geometry) Region {
	return geom.Region(p.PositionX)
}

// RecomputeDriftDirection re-derives DriftDirection from the current
// PositionX. Call it after writing PositionX directly when the new value may
// lie in a different region.
func (p *TrackPoint) RecomputeDriftDirection(geom Geometry) {
	p.DriftDirection = geom.DriftDirection(p.PositionX)
}

// ShiftPositionX moves the endpoint along the drift axis:
//
//	PositionX += driftVelocity * t0 * drift sign
//
// t0 is the assumed interaction time; for tracks that do not cross the
// cathode the candidate CRT hit time stands in for it. driftVelocity is in
// cm/us and must be positive and finite; there is no fallback value. t0 may
// be negative. Repeated calls compose, each shifting from the current,
// possibly already-shifted, position.
//
// The shift fails with ErrNoDriftDirection when the point carries no drift
// sign and with ErrDriftVelocityUnset when the velocity is unusable; either
// way PositionX is left untouched. DriftDirection is never recomputed here:
// a shifted point that may have crossed a region boundary needs
// RecomputeDriftDirection, or WithShiftedX in the first place.
func (p *TrackPoint) ShiftPositionX(t0, driftVelocity float64) error {
	if !p.DriftDirection.Valid() {
		return fmt.Errorf("%w (track %d, x=%g cm)", ErrNoDriftDirection, p.TrackID, p.PositionX)
	}
	if err := checkDriftVelocity(driftVelocity); err != nil {
		return err
	}
	p.PositionX += driftVelocity * t0 * p.DriftDirection.Sign()
	return nil
}

// WithShiftedX returns a copy of the point with PositionX shifted as by
// ShiftPositionX and DriftDirection re-derived in geom. The receiver is not
// modified. Error conditions match ShiftPositionX.
func (p *TrackPoint) WithShiftedX(geom Geometry, t0, driftVelocity float64) (TrackPoint, error) {
	q := *p
	if err := q.ShiftPositionX(t0, driftVelocity); err != nil {
		return TrackPoint{}, err
	}
	q.RecomputeDriftDirection(geom)
	return q, nil
}

func checkDriftVelocity(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return fmt.Errorf("%w (got %v cm/us)", ErrDriftVelocityUnset, v)
	}
	return nil
}
