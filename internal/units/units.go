// Package units holds the unit conversions shared by the calculators.
// Simulation code works in SI (Kelvin, meters); configuration and reporting
// speak Fahrenheit and feet.
package units

const feetPerMeter = 3.28084

// RToRSI converts an imperial R-value (as advertised on commercial
// insulation) to the SI RSI value used by the simulator. R is 5.8 times
// larger than RSI.
const RToRSI = 1.0 / 5.8

func FahrenheitToKelvin(f float64) float64 {
	return (f-32.0)*5.0/9.0 + 273.15
}

func KelvinToFahrenheit(k float64) float64 {
	return (k-273.15)*9.0/5.0 + 32.0
}

func FeetToMeters(ft float64) float64 {
	return ft / feetPerMeter
}

func MetersToFeet(m float64) float64 {
	return m * feetPerMeter
}

// InchesToMeters is used for panel datasheet dimensions.
func InchesToMeters(in float64) float64 {
	return in * 0.0254
}
