// Package solar provides a clear-sky photovoltaic array model.
//
// The model computes the solar position from the day of year and clock time
// (treated as local solar time; the equation of time and longitude
// correction are ignored), attenuates the extraterrestrial irradiance by air
// mass, and projects it onto an equator-facing tilted surface. Good enough
// for daily energy comparisons, not for metering.
package solar

import (
	"math"
	"time"
)

const (
	// Extraterrestrial normal irradiance, W/m².
	solarConstant = 1353.0
	// Empirical clear-sky attenuation: irradiance = E0 * 0.7^(AM^0.678).
	attenuationBase     = 0.7
	attenuationExponent = 0.678
)

// PanelParams describes a photovoltaic array.
type PanelParams struct {
	Area       float64 // m², total array surface
	Efficiency float64 // fraction of incident irradiance converted, (0, 1]
	Tilt       float64 // radians from horizontal, facing the equator
	Latitude   float64 // degrees, positive north
}

func (p *PanelParams) Validate() error {
	if p.Area <= 0 {
		return ErrInvalidArea
	}
	if p.Efficiency <= 0 || p.Efficiency > 1 {
		return ErrInvalidEfficiency
	}
	if p.Latitude < -90 || p.Latitude > 90 {
		return ErrInvalidLatitude
	}
	return nil
}

// Panel is a ports.PowerSource backed by the clear-sky model.
type Panel struct {
	params PanelParams
}

func NewPanel(params PanelParams) (*Panel, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Panel{params: params}, nil
}

// PowerAt returns the array's electrical output in watts at t. Zero when
// the sun is below the horizon or behind the panel.
func (p *Panel) PowerAt(t time.Time) float64 {
	delta := declination(t)
	omega := hourAngle(t)
	phi := p.params.Latitude * math.Pi / 180

	sinElevation := math.Sin(phi)*math.Sin(delta) + math.Cos(phi)*math.Cos(delta)*math.Cos(omega)
	if sinElevation <= 0 {
		return 0
	}

	airMass := 1 / sinElevation
	irradiance := solarConstant * math.Pow(attenuationBase, math.Pow(airMass, attenuationExponent))

	// Incidence on an equator-facing surface tilted by beta is the
	// elevation formula at an effective latitude of phi - beta.
	effective := phi - p.params.Tilt
	cosIncidence := math.Sin(delta)*math.Sin(effective) + math.Cos(delta)*math.Cos(effective)*math.Cos(omega)
	if cosIncidence <= 0 {
		return 0
	}

	return irradiance * cosIncidence * p.params.Area * p.params.Efficiency
}

// declination is the sun's declination angle in radians (Cooper's formula).
func declination(t time.Time) float64 {
	n := float64(t.YearDay())
	return 23.45 * math.Pi / 180 * math.Sin(2*math.Pi*(284+n)/365)
}

// hourAngle is the sun's hour angle in radians, zero at solar noon.
func hourAngle(t time.Time) float64 {
	h := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return 15 * math.Pi / 180 * (h - 12)
}
