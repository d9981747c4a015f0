package trackpoint

import (
	"fmt"
	"math"
)

// Region identifies which slice of the detector x-axis a track endpoint lies
// in. The detector has two active volumes separated by a central gap; each
// volume is split at its cathode plane into a pair of drift volumes, so six
// boundary planes divide the axis into seven regions. Points west of the west
// outer boundary, east of the east outer boundary, or inside the gap sit in
// dead space and carry no drift direction.
type Region int

// Regions in increasing-x order. West is negative x, east is positive x.
const (
	RegionWestOfOuterBoundary  Region = iota // dead space west of the detector
	RegionWestVolume                         // west half of the west volume, drifts west
	RegionEastFacingWestVolume               // east half of the west volume, drifts east
	RegionBetweenVolumes                     // gap between the two active volumes
	RegionWestFacingEastVolume               // west half of the east volume, drifts west
	RegionEastVolume                         // east half of the east volume, drifts east
	RegionEastOfOuterBoundary                // dead space east of the detector
)

// NumXBoundaries is the number of boundary planes dividing the x-axis.
const NumXBoundaries = 6

// String returns the region name.
func (r Region) String() string {
	switch r {
	case RegionWestOfOuterBoundary:
		return "WestOfOuterBoundary"
	case RegionWestVolume:
		return "WestVolume"
	case RegionEastFacingWestVolume:
		return "EastFacingWestVolume"
	case RegionBetweenVolumes:
		return "BetweenVolumes"
	case RegionWestFacingEastVolume:
		return "WestFacingEastVolume"
	case RegionEastVolume:
		return "EastVolume"
	case RegionEastOfOuterBoundary:
		return "EastOfOuterBoundary"
	default:
		return fmt.Sprintf("Region(%d)", int(r))
	}
}

// DriftDirection returns the ionization drift sign for points in this region:
// DriftWest for the two west-drifting volumes, DriftEast for the two
// east-drifting ones, DriftNone for the gap and the outer dead space.
func (r Region) DriftDirection() DriftDirection {
	switch r {
	case RegionWestVolume, RegionWestFacingEastVolume:
		return DriftWest
	case RegionEastFacingWestVolume, RegionEastVolume:
		return DriftEast
	default:
		return DriftNone
	}
}

// InActiveVolume reports whether points in this region take part in
// drift-based matching.
func (r Region) InActiveVolume() bool {
	return r.DriftDirection() != DriftNone
}

// DriftDirection is the sign of ionization-electron drift along x for a point
// inside an active volume. The zero value DriftNone marks a point outside
// every active volume; it is an explicit absence, not a usable sign, and
// shift operations refuse it.
type DriftDirection int

const (
	DriftNone DriftDirection = 0  // outside any active volume
	DriftWest DriftDirection = 1  // electrons drift toward a west-side anode plane
	DriftEast DriftDirection = -1 // electrons drift toward an east-side anode plane
)

// Valid reports whether d is a usable drift sign.
func (d DriftDirection) Valid() bool {
	return d == DriftWest || d == DriftEast
}

// Sign returns the drift sign as a float64 factor for shift arithmetic.
// DriftNone yields 0; callers must check Valid before using the factor.
func (d DriftDirection) Sign() float64 {
	return float64(d)
}

// String returns a short name for the drift direction.
func (d DriftDirection) String() string {
	switch d {
	case DriftWest:
		return "west"
	case DriftEast:
		return "east"
	case DriftNone:
		return "none"
	default:
		return fmt.Sprintf("DriftDirection(%d)", int(d))
	}
}

// Geometry describes the x-axis layout of the detector: six strictly
// ascending boundary planes in cm. It is a small value type; copy it freely.
type Geometry struct {
	// XBoundaries holds the region boundary planes in cm, ascending:
	// west outer wall, west cathode, west inner wall, east inner wall,
	// east cathode, east outer wall.
	XBoundaries [NumXBoundaries]float64
}

// DefaultGeometry returns the production x boundaries. The values are fixed
// for a given detector build; override them only for a different geometry.
func DefaultGeometry() Geometry {
	return Geometry{
		XBoundaries: [NumXBoundaries]float64{-358.49, -210.215, -61.94, 61.94, 210.215, 358.49},
	}
}

// Validate checks that every boundary is finite and the sequence is strictly
// ascending.
func (g Geometry) Validate() error {
	for i, b := range g.XBoundaries {
		if math.IsNaN(b) || math.IsInf(b, 0) {
			return fmt.Errorf("x boundary %d is not finite: %v", i, b)
		}
		if i > 0 && b <= g.XBoundaries[i-1] {
			return fmt.Errorf("x boundaries must be strictly ascending: boundary %d (%v) <= boundary %d (%v)",
				i, b, i-1, g.XBoundaries[i-1])
		}
	}
	return nil
}

// Region classifies an x-coordinate in cm. The region index is the count of
// boundaries at or below x, so a point exactly on a boundary belongs to the
// region that starts there. Any real x classifies; NaN counts no boundaries
// and lands in RegionWestOfOuterBoundary.
func (g Geometry) Region(x float64) Region {
	n := 0
	for _, b := range g.XBoundaries {
		if x >= b {
			n++
		}
	}
	return Region(n)
}

// DriftDirection classifies x and returns the drift sign for its region.
func (g Geometry) DriftDirection(x float64) DriftDirection {
	return g.Region(x).DriftDirection()
}
