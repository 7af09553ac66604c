package ports

import "time"

// PowerSource yields the instantaneous electrical power, in watts, that a
// generation source produces at a point in time. The reporting layer treats
// it as a black box, which keeps the simulator decoupled from any particular
// generation model.
type PowerSource interface {
	PowerAt(t time.Time) float64
}

// PowerSourceFunc adapts a plain function to PowerSource.
type PowerSourceFunc func(t time.Time) float64

func (f PowerSourceFunc) PowerAt(t time.Time) float64 { return f(t) }
