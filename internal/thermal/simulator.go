package thermal

import (
	"time"

	"github.com/eggsactly/microgrid/internal/units"
)

// Simulator steps a building through one day of outdoor temperatures and
// records when the thermostat had the air conditioner running.
//
// A run is a pure fold over duration/timeStep steps: no I/O, no retained
// state between runs. Identical configurations produce identical interval
// lists.
type Simulator struct {
	cfg Config

	conductance float64 // Σ area/resistance over all faces, W/K
	airMass     float64 // kg
	coolOn      float64 // Kelvin, Idle → Cooling above this
	coolOff     float64 // Kelvin, Cooling → Idle below this
}

// New validates cfg once; Run never fails after that.
func New(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	// The envelope does not change during a run, so its total conductance
	// can be summed up front.
	conductance := 0.0
	for _, f := range cfg.Faces {
		conductance += f.Conductance()
	}
	on, off := cfg.coolingThresholds()
	return &Simulator{
		cfg:         cfg,
		conductance: conductance,
		airMass:     cfg.AirMass(),
		coolOn:      on,
		coolOff:     off,
	}, nil
}

// Run returns the chronological list of completed AC intervals.
func (s *Simulator) Run() []ACInterval {
	return s.RunObserved(nil)
}

// RunObserved is Run with a per-step observer, called once per step after
// the thermostat decision for that step. A nil observer is allowed.
func (s *Simulator) RunObserved(observe func(Sample)) []ACInterval {
	// cfg was validated in New; NewCurve cannot fail here.
	curve, _ := NewCurve(s.cfg.Temperatures)

	step := int(s.cfg.TimeStep / time.Second)
	total := int(s.cfg.Duration / time.Second)

	// Indoor air starts at the setpoint, AC off.
	indoor := units.FahrenheitToKelvin(s.cfg.Setpoint)
	state := StateIdle
	startedAt := 0
	var intervals []ACInterval

	for t := 0; t < total; t += step {
		outdoor := curve.Kelvin(float64(t))

		// Conductive flow through the envelope over this step, then the
		// AC's removal while cooling, becomes a temperature change of the
		// indoor air mass.
		energy := (outdoor - indoor) * s.conductance * float64(step)
		if state == StateCooling {
			energy -= s.cfg.ACCapacity * float64(step)
		}
		indoor += energy / (s.airMass * s.cfg.AirHeatCapacity)

		// The thermostat reacts to the temperature it just produced; the
		// state decision lags the physical update by one step.
		switch state {
		case StateCooling:
			if indoor < s.coolOff {
				state = StateIdle
				intervals = append(intervals, ACInterval{
					Start:    time.Duration(startedAt) * time.Second,
					Duration: time.Duration(t-startedAt) * time.Second,
				})
			}
		case StateIdle:
			if indoor > s.coolOn {
				state = StateCooling
				startedAt = t
			}
		}

		if observe != nil {
			observe(Sample{
				Time:    time.Duration(t) * time.Second,
				Indoor:  indoor,
				Outdoor: outdoor,
				State:   state,
			})
		}
	}

	if state == StateCooling && s.cfg.KeepOpenInterval {
		intervals = append(intervals, ACInterval{
			Start:    time.Duration(startedAt) * time.Second,
			Duration: time.Duration(total-startedAt) * time.Second,
		})
	}
	return intervals
}
