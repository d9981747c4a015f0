// Package units provides shared constants and validation for drift-velocity units
package units

// Unit constants
const (
	CmPerUs = "cm/us"
	MmPerUs = "mm/us"
	CmPerMs = "cm/ms"
	MPerS   = "m/s"
)

// ValidUnits contains all valid unit values
var ValidUnits = []string{CmPerUs, MmPerUs, CmPerMs, MPerS}

// IsValid checks if the given unit is in the list of valid units
func IsValid(unit string) bool {
	for _, validUnit := range ValidUnits {
		if unit == validUnit {
			return true
		}
	}
	return false
}

// GetValidUnitsString returns a comma-separated string of valid units for error messages
func GetValidUnitsString() string {
	return "cm/us, mm/us, cm/ms, m/s"
}

// ToCmPerUs converts a drift velocity to cm/us, the canonical unit of the
// shift arithmetic (positions in cm, drift times in microseconds)
func ToCmPerUs(v float64, fromUnit string) float64 {
	switch fromUnit {
	case CmPerUs:
		return v
	case MmPerUs:
		return v * 0.1
	case CmPerMs:
		return v * 0.001
	case MPerS:
		return v * 1e-4
	default:
		return v // unknown units are treated as cm/us; config validates first
	}
}

// FromCmPerUs converts a drift velocity from cm/us to the target units
func FromCmPerUs(v float64, toUnit string) float64 {
	switch toUnit {
	case CmPerUs:
		return v
	case MmPerUs:
		return v * 10
	case CmPerMs:
		return v * 1000
	case MPerS:
		return v * 1e4
	default:
		return v
	}
}
