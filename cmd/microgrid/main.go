package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/eggsactly/microgrid/cmd/app"
	"github.com/eggsactly/microgrid/internal/report"
	"github.com/eggsactly/microgrid/internal/thermal"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config.yaml", "path to config file (.yaml/.yml/.json)")
	flag.Parse()

	cfg, err := app.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}

	simCfg, err := cfg.SimulatorConfig()
	if err != nil {
		log.Fatal(err)
	}
	sim, err := thermal.New(simCfg)
	if err != nil {
		log.Fatal(err)
	}
	intervals := sim.Run()

	src, err := cfg.PowerSource()
	if err != nil {
		log.Fatal(err)
	}
	day, err := cfg.Day()
	if err != nil {
		log.Fatal(err)
	}

	summary := report.Build(intervals, cfg.ACUnit(), src, day, simCfg.Duration)

	fmt.Printf("Simulation of a %.0f sq ft building (R-%.1f walls, no windows) with a %.0f W AC unit on %s\n",
		cfg.Scenario.Building.FloorAreaSqFt(), cfg.Scenario.Building.WallR, cfg.AC.CapacityW, day.Format("2006-01-02"))
	if err := summary.WriteText(os.Stdout); err != nil {
		log.Fatal(err)
	}

	if path := cfg.Output.IntervalsCSV; path != "" {
		if err := report.WriteIntervalsCSV(path, summary.Events); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %d intervals to %s", len(summary.Events), path)
	}
}
