// Package thermal simulates the air-conditioning duty cycle of a single
// building over one day of outdoor temperature readings.
//
// The model is steady-state conduction through the building envelope, an
// ideal air mass inside, and a two-threshold thermostat. Convection,
// radiation, latent heat and the thermal mass of the structure are ignored.
package thermal

import (
	"fmt"
	"time"

	"github.com/eggsactly/microgrid/internal/units"
)

// Face is one surface of the building envelope.
type Face struct {
	Area              float64 // m²
	ThermalResistance float64 // RSI, m²·K/W
}

func (f Face) Validate() error {
	if f.Area <= 0 {
		return fmt.Errorf("%w: face area must be positive, got %v", ErrParameterOutOfRange, f.Area)
	}
	if f.ThermalResistance <= 0 {
		return fmt.Errorf("%w: thermal resistance must be positive, got %v", ErrParameterOutOfRange, f.ThermalResistance)
	}
	return nil
}

// Conductance is the face's thermal conductance in W/K.
func (f Face) Conductance() float64 {
	return f.Area / f.ThermalResistance
}

// HeatFlowRate returns the conductive heat flow through the face in watts
// for the given indoor/outdoor temperature difference in Kelvin. Positive
// means heat entering the building.
func (f Face) HeatFlowRate(tempDiff float64) float64 {
	return tempDiff * f.Conductance()
}

// TemperatureSample is one outdoor temperature breakpoint, anchored to a
// time of day.
type TemperatureSample struct {
	Hour       int
	Minute     int
	Fahrenheit float64
}

// Seconds is the sample's offset from midnight.
func (s TemperatureSample) Seconds() int {
	return 60 * (60*s.Hour + s.Minute)
}

// State is the thermostat state.
type State int

const (
	StateIdle State = iota
	StateCooling
)

func (s State) Valid() bool {
	return s == StateIdle || s == StateCooling
}

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCooling:
		return "cooling"
	default:
		return "unknown"
	}
}

// ACInterval is one completed run of the air conditioner.
type ACInterval struct {
	Start    time.Duration // offset from simulation start
	Duration time.Duration
}

// Sample is one simulation step as seen by an observer, taken after the
// thermostat decision for that step.
type Sample struct {
	Time    time.Duration
	Indoor  float64 // Kelvin
	Outdoor float64 // Kelvin
	State   State
}

// Config describes one simulation run.
type Config struct {
	Faces  []Face
	Volume float64 // m³ of air in the building

	Temperatures []TemperatureSample // ascending by time of day

	TimeStep time.Duration // whole seconds; should evenly divide Duration (not validated)
	Duration time.Duration

	AirHeatCapacity float64 // J/(kg·K)
	AirDensity      float64 // kg/m³

	ACCapacity   float64 // W removed from the air while cooling
	Setpoint     float64 // °F
	Differential float64 // °F either side of the setpoint

	// KeepOpenInterval emits a truncated final interval when the run ends
	// while the AC is still on. Off by default: the unterminated interval
	// is dropped.
	KeepOpenInterval bool
}

func (c Config) Validate() error {
	if c.TimeStep <= 0 {
		return fmt.Errorf("%w: time step must be positive", ErrInvalidConfiguration)
	}
	// The loop advances in whole seconds; a fractional step would truncate.
	if c.TimeStep%time.Second != 0 {
		return fmt.Errorf("%w: time step must be a whole number of seconds, got %v", ErrInvalidConfiguration, c.TimeStep)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive", ErrInvalidConfiguration)
	}
	if c.Differential <= 0 {
		return fmt.Errorf("%w: thermostat differential must be positive", ErrInvalidConfiguration)
	}
	if c.Volume <= 0 {
		return fmt.Errorf("%w: building volume must be positive", ErrInvalidConfiguration)
	}
	if c.AirHeatCapacity <= 0 {
		return fmt.Errorf("%w: air heat capacity must be positive", ErrInvalidConfiguration)
	}
	if c.AirDensity <= 0 {
		return fmt.Errorf("%w: air density must be positive", ErrInvalidConfiguration)
	}
	if c.ACCapacity < 0 {
		return fmt.Errorf("%w: AC capacity must not be negative", ErrInvalidConfiguration)
	}
	if err := validateSeries(c.Temperatures); err != nil {
		return err
	}
	for i, f := range c.Faces {
		if err := f.Validate(); err != nil {
			return fmt.Errorf("face %d: %w", i, err)
		}
	}
	return nil
}

// AirMass is the mass of air in the building, kg.
func (c Config) AirMass() float64 {
	return c.Volume * c.AirDensity
}

// coolingThresholds returns the thermostat trip points on the absolute scale.
func (c Config) coolingThresholds() (on, off float64) {
	on = units.FahrenheitToKelvin(c.Setpoint + c.Differential)
	off = units.FahrenheitToKelvin(c.Setpoint - c.Differential)
	return on, off
}
