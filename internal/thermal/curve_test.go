package thermal

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b, tolerance float64) bool {
	return math.Abs(a-b) <= tolerance
}

func TestNewCurveValidation(t *testing.T) {
	tests := []struct {
		name    string
		samples []TemperatureSample
		wantErr bool
	}{
		{"Empty series", nil, true},
		{"Single sample", []TemperatureSample{{0, 0, 80}}, false},
		{"Ascending", []TemperatureSample{{0, 53, 84}, {1, 53, 83}}, false},
		{"Duplicate time", []TemperatureSample{{1, 0, 84}, {1, 0, 83}}, true},
		{"Descending time", []TemperatureSample{{2, 0, 84}, {1, 0, 83}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCurve(tt.samples)
			if tt.wantErr != (err != nil) {
				t.Fatalf("NewCurve() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("error %v is not ErrInvalidConfiguration", err)
			}
		})
	}
}

func TestCurveMidpoint(t *testing.T) {
	// Two breakpoints an hour apart; the midpoint must interpolate exactly.
	curve, err := NewCurve([]TemperatureSample{
		{Hour: 0, Minute: 0, Fahrenheit: 80},
		{Hour: 1, Minute: 0, Fahrenheit: 100},
	})
	if err != nil {
		t.Fatalf("NewCurve() failed: %v", err)
	}

	got := curve.Kelvin(1800)
	want := fahrenheitToKelvin(90)
	if !almostEqual(got, want, 1e-9) {
		t.Errorf("Kelvin(1800) = %v, want %v (90°F)", got, want)
	}
}

func TestCurveBeforeFirstBreakpoint(t *testing.T) {
	curve, err := NewCurve([]TemperatureSample{
		{Hour: 2, Minute: 0, Fahrenheit: 84},
		{Hour: 3, Minute: 0, Fahrenheit: 90},
	})
	if err != nil {
		t.Fatalf("NewCurve() failed: %v", err)
	}

	// Before the first breakpoint the first reading is held.
	for _, sec := range []float64{0, 1800, 7200} {
		got := curve.Kelvin(sec)
		want := fahrenheitToKelvin(84)
		if !almostEqual(got, want, 1e-9) {
			t.Errorf("Kelvin(%v) = %v, want %v", sec, got, want)
		}
	}
}

func TestCurveHoldsLastTemperature(t *testing.T) {
	curve, err := NewCurve([]TemperatureSample{
		{Hour: 0, Minute: 0, Fahrenheit: 80},
		{Hour: 1, Minute: 0, Fahrenheit: 100},
	})
	if err != nil {
		t.Fatalf("NewCurve() failed: %v", err)
	}

	want := fahrenheitToKelvin(100)
	for _, sec := range []float64{3601, 7200, 86399} {
		got := curve.Kelvin(sec)
		if !almostEqual(got, want, 1e-9) {
			t.Errorf("Kelvin(%v) = %v, want held %v", sec, got, want)
		}
	}
}

func TestCurveWalksSegments(t *testing.T) {
	curve, err := NewCurve([]TemperatureSample{
		{Hour: 0, Minute: 0, Fahrenheit: 80},
		{Hour: 1, Minute: 0, Fahrenheit: 100},
		{Hour: 2, Minute: 0, Fahrenheit: 60},
	})
	if err != nil {
		t.Fatalf("NewCurve() failed: %v", err)
	}

	tests := []struct {
		sec  float64
		want float64 // °F
	}{
		{0, 80},
		{900, 85},
		{3600, 100},
		{5400, 80},
		{7200, 60},
		{10000, 60},
	}
	for _, tt := range tests {
		got := curve.Kelvin(tt.sec)
		want := fahrenheitToKelvin(tt.want)
		if !almostEqual(got, want, 1e-9) {
			t.Errorf("Kelvin(%v) = %v, want %v (%v°F)", tt.sec, got, want, tt.want)
		}
	}
}

// fahrenheitToKelvin mirrors the conversion used by the package without
// importing it into every expectation.
func fahrenheitToKelvin(f float64) float64 {
	return (f-32.0)*5.0/9.0 + 273.15
}
