package testutil

import "time"

// FakePowerSource is a reusable fake implementing ports.PowerSource.
// Put ONLY what multiple test packages need here.
type FakePowerSource struct {
	// Watts is returned for every query unless PowerFn is set.
	Watts   float64
	PowerFn func(t time.Time) float64

	Queries []time.Time
}

func (f *FakePowerSource) PowerAt(t time.Time) float64 {
	f.Queries = append(f.Queries, t)
	if f.PowerFn != nil {
		return f.PowerFn(t)
	}
	return f.Watts
}
