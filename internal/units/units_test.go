package units

import (
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestFahrenheitToKelvin(t *testing.T) {
	tests := []struct {
		name string
		f    float64
		want float64
	}{
		{"Freezing point", 32.0, 273.15},
		{"Boiling point", 212.0, 373.15},
		{"Absolute zero", -459.67, 0.0},
		{"Thermostat setpoint", 78.0, 298.7056},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FahrenheitToKelvin(tt.f)
			if !almostEqual(got, tt.want, 1e-3) {
				t.Errorf("FahrenheitToKelvin(%v) = %v, want %v", tt.f, got, tt.want)
			}
		})
	}
}

func TestKelvinToFahrenheitRoundTrip(t *testing.T) {
	for _, f := range []float64{-40, 0, 32, 78, 110} {
		got := KelvinToFahrenheit(FahrenheitToKelvin(f))
		if !almostEqual(got, f, 1e-9) {
			t.Errorf("round trip of %v°F = %v", f, got)
		}
	}
}

func TestFeetToMeters(t *testing.T) {
	got := FeetToMeters(100)
	if !almostEqual(got, 30.48, 1e-3) {
		t.Errorf("FeetToMeters(100) = %v, want ~30.48", got)
	}
}

func TestMetersToFeetRoundTrip(t *testing.T) {
	for _, ft := range []float64{1, 8, 32, 100} {
		got := MetersToFeet(FeetToMeters(ft))
		if !almostEqual(got, ft, 1e-9) {
			t.Errorf("round trip of %vft = %v", ft, got)
		}
	}
}

func TestInchesToMeters(t *testing.T) {
	if got := InchesToMeters(1); !almostEqual(got, 0.0254, 1e-12) {
		t.Errorf("InchesToMeters(1) = %v, want 0.0254", got)
	}
}
