// Package wire sizes copper feeder runs with Ohm's law.
package wire

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
)

// Resistance of copper wire per 1000 m of run, in ohms, by AWG gauge.
// Values from the Engineering ToolBox.
var copperOhmsPerKm = map[string]float64{
	"1":  0.41,
	"2":  0.51,
	"3":  0.65,
	"4":  0.81,
	"6":  1.3,
	"8":  2.1,
	"10": 3.3,
	"12": 5.2,
	"14": 8.2,
	"16": 13,
}

var (
	ErrUnknownGauge  = errors.New("unknown wire gauge")
	ErrInvalidLength = errors.New("wire length must be positive")
)

// Resistance returns the resistance in ohms of lengthMeters of copper wire
// of the given AWG gauge.
func Resistance(gauge string, lengthMeters float64) (float64, error) {
	if lengthMeters <= 0 {
		return 0, ErrInvalidLength
	}
	perKm, ok := copperOhmsPerKm[gauge]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownGauge, gauge)
	}
	return lengthMeters * perKm / 1000, nil
}

// Current is Ohm's law solved for current: amps from volts and ohms.
func Current(volts, ohms float64) float64 {
	return volts / ohms
}

// Voltage is Ohm's law solved for voltage: volts from amps and ohms.
func Voltage(amps, ohms float64) float64 {
	return amps * ohms
}

// Drop returns the voltage lost across lengthMeters of the given gauge at
// the given load current.
func Drop(gauge string, lengthMeters, amps float64) (float64, error) {
	ohms, err := Resistance(gauge, lengthMeters)
	if err != nil {
		return 0, err
	}
	return Voltage(amps, ohms), nil
}

// Gauges lists the known AWG gauges, thickest first.
func Gauges() []string {
	out := make([]string, 0, len(copperOhmsPerKm))
	for g := range copperOhmsPerKm {
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool {
		a, _ := strconv.Atoi(out[i])
		b, _ := strconv.Atoi(out[j])
		return a < b
	})
	return out
}
