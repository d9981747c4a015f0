// Package config loads detector geometry and drift-velocity settings from
// JSON or YAML files. Fields omitted from a file keep their defaults, except
// the drift velocity: it has no default and stays unset until a value is
// provided, because no single velocity is valid across detector field
// configurations.
package config

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/icarus-data/crtmatch/internal/monitoring"
	"github.com/icarus-data/crtmatch/internal/units"
	"github.com/icarus-data/crtmatch/trackpoint"
	"gopkg.in/yaml.v3"
)

// DetectorConfig carries the file-configurable pieces of the matching setup:
// the region boundary planes and the drift velocity with its units. The zero
// value is usable and means "default geometry, no velocity configured".
type DetectorConfig struct {
	// TPCXBoundaries overrides the six region boundary planes in cm,
	// strictly ascending. Nil selects trackpoint.DefaultGeometry.
	TPCXBoundaries []float64 `json:"tpc_x_boundaries,omitempty" yaml:"tpc_x_boundaries,omitempty" validate:"omitempty,len=6"`

	// DriftVelocity is the drift velocity in DriftVelocityUnits. Nil means
	// not configured; there is deliberately no fallback value.
	DriftVelocity *float64 `json:"drift_velocity,omitempty" yaml:"drift_velocity,omitempty" validate:"omitempty,gt=0"`

	// DriftVelocityUnits names the units DriftVelocity is expressed in.
	// Nil or empty means cm/us.
	DriftVelocityUnits *string `json:"drift_velocity_units,omitempty" yaml:"drift_velocity_units,omitempty"`
}

// Helper functions to create pointers
func ptrFloat64(v float64) *float64 { return &v }
func ptrString(v string) *string    { return &v }

// EmptyDetectorConfig returns a DetectorConfig with all fields unset. Use
// LoadDetectorConfig to populate one from a file.
func EmptyDetectorConfig() *DetectorConfig {
	return &DetectorConfig{}
}

// LoadDetectorConfig loads a DetectorConfig from a JSON or YAML file, chosen
// by extension (.json, .yaml or .yml). The file must be under the max file
// size, and the loaded values must pass Validate.
func LoadDetectorConfig(path string) (*DetectorConfig, error) {
	cleanPath := filepath.Clean(path)
	ext := filepath.Ext(cleanPath)
	switch ext {
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("config file must have .json, .yaml or .yml extension, got %q", ext)
	}

	// Check file size for safety (max 1MB)
	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := EmptyDetectorConfig()
	if ext == ".json" {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	monitoring.Logf("[DetectorConfig] Loaded %s: custom boundaries=%t, drift velocity=%s",
		cleanPath, cfg.TPCXBoundaries != nil, cfg.describeVelocity())
	return cfg, nil
}

func (c *DetectorConfig) describeVelocity() string {
	if c.DriftVelocity == nil {
		return "unset"
	}
	return fmt.Sprintf("%g %s", *c.DriftVelocity, c.GetDriftVelocityUnits())
}

// Validate checks the configuration values: struct tags cover shape (six
// boundaries, positive velocity), then the boundary ordering and the velocity
// units are checked by hand.
func (c *DetectorConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("detector config: %w", err)
	}

	if c.TPCXBoundaries != nil {
		var g trackpoint.Geometry
		copy(g.XBoundaries[:], c.TPCXBoundaries)
		if err := g.Validate(); err != nil {
			return fmt.Errorf("tpc_x_boundaries: %w", err)
		}
	}

	// The gt=0 tag does not fire for a pointer to zero, so the full range
	// check lives here.
	if c.DriftVelocity != nil {
		if v := *c.DriftVelocity; math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("drift_velocity must be a positive finite number, got %v", v)
		}
	}

	if c.DriftVelocityUnits != nil && *c.DriftVelocityUnits != "" && !units.IsValid(*c.DriftVelocityUnits) {
		return fmt.Errorf("invalid drift_velocity_units %q, must be one of: %s",
			*c.DriftVelocityUnits, units.GetValidUnitsString())
	}

	return nil
}

// GetDriftVelocityUnits returns the configured velocity units or the cm/us
// default.
func (c *DetectorConfig) GetDriftVelocityUnits() string {
	if c.DriftVelocityUnits == nil || *c.DriftVelocityUnits == "" {
		return units.CmPerUs
	}
	return *c.DriftVelocityUnits
}

// Geometry builds the detector geometry selected by the config: the default
// boundaries when tpc_x_boundaries is absent, otherwise the configured ones.
func (c *DetectorConfig) Geometry() (trackpoint.Geometry, error) {
	if c.TPCXBoundaries == nil {
		return trackpoint.DefaultGeometry(), nil
	}
	if len(c.TPCXBoundaries) != trackpoint.NumXBoundaries {
		return trackpoint.Geometry{}, fmt.Errorf("tpc_x_boundaries needs %d values, got %d",
			trackpoint.NumXBoundaries, len(c.TPCXBoundaries))
	}
	var g trackpoint.Geometry
	copy(g.XBoundaries[:], c.TPCXBoundaries)
	if err := g.Validate(); err != nil {
		return trackpoint.Geometry{}, fmt.Errorf("tpc_x_boundaries: %w", err)
	}
	return g, nil
}

// DriftVelocityCmPerUs returns the configured drift velocity converted to
// cm/us, the canonical unit of the shift arithmetic. An absent, non-finite or
// non-positive value yields trackpoint.ErrDriftVelocityUnset: the host must
// configure a real velocity before shifting, there is nothing safe to
// substitute.
func (c *DetectorConfig) DriftVelocityCmPerUs() (float64, error) {
	if c.DriftVelocity == nil {
		return 0, fmt.Errorf("%w: drift_velocity missing from detector config", trackpoint.ErrDriftVelocityUnset)
	}
	v := *c.DriftVelocity
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		return 0, fmt.Errorf("%w: drift_velocity %v %s is not usable",
			trackpoint.ErrDriftVelocityUnset, v, c.GetDriftVelocityUnits())
	}
	return units.ToCmPerUs(v, c.GetDriftVelocityUnits()), nil
}
