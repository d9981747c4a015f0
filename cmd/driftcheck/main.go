// Command driftcheck classifies track-endpoint x-coordinates against the
// detector geometry and optionally applies a drift-time position shift.
//
// Each positional argument is an x-coordinate in cm. With a non-zero -t0 and
// a drift velocity (from -velocity or a -config file) the shifted x is
// printed next to the classification. Points outside the active volumes
// report the shift error instead of a shifted position.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/icarus-data/crtmatch/config"
	"github.com/icarus-data/crtmatch/internal/monitoring"
	"github.com/icarus-data/crtmatch/internal/units"
	"github.com/icarus-data/crtmatch/internal/version"
	"github.com/icarus-data/crtmatch/trackpoint"
)

func main() {
	var (
		configPath    = flag.String("config", "", "detector config file (.json, .yaml or .yml)")
		t0            = flag.Float64("t0", 0, "drift time offset in us; non-zero enables shifting")
		velocity      = flag.Float64("velocity", 0, "drift velocity in -units (overrides config)")
		velocityUnits = flag.String("units", units.CmPerUs, "units for -velocity")
		verbose       = flag.Bool("verbose", false, "print config loading diagnostics")
		showVersion   = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("driftcheck %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}

	if !*verbose {
		monitoring.SetLogger(nil)
	}

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: driftcheck [flags] x-coordinate [x-coordinate ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	geom := trackpoint.DefaultGeometry()
	var cfg *config.DetectorConfig
	if *configPath != "" {
		var err error
		cfg, err = config.LoadDetectorConfig(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		geom, err = cfg.Geometry()
		if err != nil {
			log.Fatalf("config geometry: %v", err)
		}
	}

	// Resolve the drift velocity in cm/us up front when shifting was asked for.
	shift := *t0 != 0
	var vCmPerUs float64
	if shift {
		switch {
		case *velocity != 0:
			if !units.IsValid(*velocityUnits) {
				log.Fatalf("unknown -units %q, must be one of: %s", *velocityUnits, units.GetValidUnitsString())
			}
			vCmPerUs = units.ToCmPerUs(*velocity, *velocityUnits)
		case cfg != nil:
			var err error
			vCmPerUs, err = cfg.DriftVelocityCmPerUs()
			if err != nil {
				log.Fatalf("resolve drift velocity: %v", err)
			}
		default:
			log.Fatalf("-t0 needs a drift velocity: pass -velocity or a -config with drift_velocity")
		}
	}

	for _, arg := range flag.Args() {
		x, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			log.Fatalf("bad x-coordinate %q: %v", arg, err)
		}

		p := trackpoint.NewInGeometry(geom, 0, x, 0, 0, 0, 0, 0)
		line := fmt.Sprintf("x=%g cm  region=%s  drift=%s", x, p.Region(geom), p.DriftDirection)

		if shift {
			if err := p.ShiftPositionX(*t0, vCmPerUs); err != nil {
				line += fmt.Sprintf("  shift: %v", err)
			} else {
				line += fmt.Sprintf("  shifted_x=%g cm", p.PositionX)
			}
		}
		fmt.Println(line)
	}
}
