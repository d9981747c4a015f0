// Package trackpoint models reconstructed-track endpoints for CRT-TPC
// matching.
//
// Responsibilities: hold an endpoint's position and direction, classify the
// endpoint into a detector region from its x-coordinate, derive the
// ionization drift sign for that region, and apply drift-time corrections to
// the x-position. Key types: TrackPoint, Region, DriftDirection, Geometry.
//
// The surrounding pipeline (CRT hit loading, distance-of-closest-approach
// matching, PCA direction fitting, event orchestration) lives elsewhere and
// consumes this package; nothing here performs I/O or holds global state.
package trackpoint
