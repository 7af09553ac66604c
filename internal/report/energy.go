// Package report prices a simulated AC duty cycle against an electrical
// model of the unit and an injected generation source, and renders the
// result for humans.
package report

import (
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/eggsactly/microgrid/internal/ports"
	"github.com/eggsactly/microgrid/internal/thermal"
)

// JoulesPerKWh converts accumulated joules to billing units.
const JoulesPerKWh = 3.6e6

// ACUnit is the electrical nameplate of the air conditioner.
type ACUnit struct {
	Volts               float64
	CompressorStartAmps float64
	CompressorRunAmps   float64
	FanStartAmps        float64
	FanRunAmps          float64

	// StartupTime is how long the unit draws inrush current when the
	// compressor starts.
	StartupTime time.Duration
}

// StartupPower is the inrush draw in watts.
func (u ACUnit) StartupPower() float64 {
	return (u.FanStartAmps + u.CompressorStartAmps) * u.Volts
}

// RunningPower is the steady-state draw in watts.
func (u ACUnit) RunningPower() float64 {
	return (u.FanRunAmps + u.CompressorRunAmps) * u.Volts
}

// Event is one AC run in the rendered report.
type Event struct {
	Start    time.Duration
	Duration time.Duration
}

// Summary is the priced outcome of one simulated day.
type Summary struct {
	Events []Event
	Starts int

	RunTime   time.Duration
	DutyCycle float64 // fraction of the simulated day the AC ran

	TotalEnergy float64 // J consumed by the AC
	GridEnergy  float64 // J drawn from the grid
	SolarEnergy float64 // J covered by the generation source

	MeanRunSeconds float64
	MaxRunSeconds  float64
}

// Build prices the intervals produced by a simulation. day anchors the
// simulation's t=0 on the calendar so the generation source can be queried
// at absolute times; simDuration is the full length of the run.
func Build(intervals []thermal.ACInterval, unit ACUnit, src ports.PowerSource, day time.Time, simDuration time.Duration) Summary {
	startupSeconds := unit.StartupTime.Seconds()
	startPower := unit.StartupPower()
	runPower := unit.RunningPower()

	events := make([]Event, 0, len(intervals))
	durations := make([]float64, 0, len(intervals))
	var runSeconds float64
	var startupGrid, operatingGrid float64

	for _, iv := range intervals {
		seconds := int(iv.Duration / time.Second)
		runSeconds += float64(seconds)
		durations = append(durations, float64(seconds))
		events = append(events, Event{Start: iv.Start, Duration: iv.Duration})

		// Generation is sampled at whole minutes.
		at := day.Add(iv.Start).Truncate(time.Minute)
		generated := src.PowerAt(at)

		startupGrid += math.Max(startPower-generated, 0) * startupSeconds

		// Chop the run into one-minute blocks and re-sample the source for
		// each, so production follows the sun across long runs.
		for i := 0; i < seconds/60; i++ {
			operatingGrid += math.Max(runPower-generated, 0) * 60
			at = at.Add(time.Minute)
			generated = src.PowerAt(at)
		}
		operatingGrid += math.Max(runPower-generated, 0) * float64(seconds%60)
	}

	total := runPower*runSeconds + startPower*startupSeconds*float64(len(intervals))
	grid := startupGrid + operatingGrid

	s := Summary{
		Events:      events,
		Starts:      len(intervals),
		RunTime:     time.Duration(runSeconds) * time.Second,
		TotalEnergy: total,
		GridEnergy:  grid,
		SolarEnergy: total - grid,
	}
	if simDuration > 0 {
		s.DutyCycle = runSeconds / simDuration.Seconds()
	}
	if len(durations) > 0 {
		s.MeanRunSeconds = stat.Mean(durations, nil)
		s.MaxRunSeconds = floats.Max(durations)
	}
	return s
}
