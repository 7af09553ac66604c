package main

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/eggsactly/microgrid/cmd/app"
	"github.com/eggsactly/microgrid/internal/thermal"
	"github.com/eggsactly/microgrid/internal/units"
)

// Writes the per-step temperature evolution of the default scenario to CSV
// for plotting: time, outdoor, indoor and thermostat state.
func WriteEvolution(filename string, everySeconds int) error {
	cfg, err := app.Default().SimulatorConfig()
	if err != nil {
		return fmt.Errorf("failed to build simulator config: %v", err)
	}
	sim, err := thermal.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create simulator: %v", err)
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %v", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"Seconds", "OutdoorF", "IndoorF", "State"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %v", err)
	}

	var writeErr error
	sim.RunObserved(func(s thermal.Sample) {
		if writeErr != nil || int(s.Time.Seconds())%everySeconds != 0 {
			return
		}
		writeErr = writer.Write([]string{
			fmt.Sprintf("%d", int(s.Time.Seconds())),
			fmt.Sprintf("%.2f", units.KelvinToFahrenheit(s.Outdoor)),
			fmt.Sprintf("%.2f", units.KelvinToFahrenheit(s.Indoor)),
			s.State.String(),
		})
	})
	if writeErr != nil {
		return fmt.Errorf("failed to write CSV record: %v", writeErr)
	}

	return nil
}

func main() {
	if err := WriteEvolution("evolution.csv", 60); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
