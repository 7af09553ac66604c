// Package weather loads outdoor temperature series from CSV files.
//
// The expected layout matches Weather Underground daily history exports
// reduced to three columns:
//
//	hour,minute,temp_f
//	0,53,84
//	1,53,83
package weather

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/eggsactly/microgrid/internal/thermal"
)

type record struct {
	Hour       int     `csv:"hour"`
	Minute     int     `csv:"minute"`
	Fahrenheit float64 `csv:"temp_f"`
}

// Load reads a breakpoint series from the CSV file at path.
func Load(path string) ([]thermal.TemperatureSample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open weather csv: %w", err)
	}
	defer f.Close()
	samples, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}

// Read parses a breakpoint series from CSV data.
func Read(r io.Reader) ([]thermal.TemperatureSample, error) {
	var rows []record
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("parse weather csv: %w", err)
	}

	samples := make([]thermal.TemperatureSample, len(rows))
	for i, row := range rows {
		samples[i] = thermal.TemperatureSample{
			Hour:       row.Hour,
			Minute:     row.Minute,
			Fahrenheit: row.Fahrenheit,
		}
	}
	return samples, nil
}
