package thermal

import (
	"fmt"
	"math"

	"github.com/eggsactly/microgrid/internal/units"
)

// Curve interpolates an outdoor temperature series piecewise-linearly.
// Queries must be made with non-decreasing times: the curve walks forward
// through its breakpoints and never rewinds. Past the last breakpoint the
// last temperature is held constant.
type Curve struct {
	samples []TemperatureSample
	next    int

	lastTime float64
	lastTemp float64 // Kelvin
	nextTime float64
	nextTemp float64 // Kelvin
	slope    float64 // K/s
}

// NewCurve validates the series and positions the curve before the first
// breakpoint.
func NewCurve(samples []TemperatureSample) (*Curve, error) {
	if err := validateSeries(samples); err != nil {
		return nil, err
	}
	first := units.FahrenheitToKelvin(samples[0].Fahrenheit)
	return &Curve{
		samples:  samples,
		next:     1,
		lastTemp: first,
		nextTime: float64(samples[0].Seconds()),
		nextTemp: first,
	}, nil
}

func validateSeries(samples []TemperatureSample) error {
	if len(samples) == 0 {
		return fmt.Errorf("%w: temperature series is empty", ErrInvalidConfiguration)
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Seconds() <= samples[i-1].Seconds() {
			return fmt.Errorf("%w: temperature series must be strictly ascending, sample %d is not", ErrInvalidConfiguration, i)
		}
	}
	return nil
}

// Kelvin returns the interpolated outdoor temperature at t seconds after
// midnight.
func (c *Curve) Kelvin(t float64) float64 {
	for t > c.nextTime {
		if c.next >= len(c.samples) {
			// Series exhausted: hold the last reading.
			c.lastTemp = units.FahrenheitToKelvin(c.samples[len(c.samples)-1].Fahrenheit)
			c.nextTemp = c.lastTemp
			c.slope = 0
			c.nextTime = math.Inf(1)
			break
		}
		s := c.samples[c.next]
		c.lastTime = c.nextTime
		c.lastTemp = c.nextTemp
		c.nextTime = float64(s.Seconds())
		c.nextTemp = units.FahrenheitToKelvin(s.Fahrenheit)
		c.slope = (c.nextTemp - c.lastTemp) / (c.nextTime - c.lastTime)
		c.next++
	}
	return c.slope*(t-c.lastTime) + c.lastTemp
}
