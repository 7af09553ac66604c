// wirecalc sizes a copper feeder run: given a gauge, run length and supply
// voltage it prints the current the run would pass and, optionally, the
// voltage drop at a load current.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"github.com/eggsactly/microgrid/internal/units"
	"github.com/eggsactly/microgrid/internal/wire"
)

func main() {
	var (
		gauge    string
		lengthFt float64
		volts    float64
		loadAmps float64
	)
	flag.StringVar(&gauge, "gauge", "8", "AWG wire gauge ("+strings.Join(wire.Gauges(), ", ")+")")
	flag.Float64Var(&lengthFt, "length-ft", 100, "wire run length in feet")
	flag.Float64Var(&volts, "volts", 380, "supply voltage (DC)")
	flag.Float64Var(&loadAmps, "load-amps", 0, "load current for the voltage drop calculation")
	flag.Parse()

	ohms, err := wire.Resistance(gauge, units.FeetToMeters(lengthFt))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Resistance: %gΩ\n", ohms)
	fmt.Printf("Current: %gA\n", wire.Current(volts, ohms))
	if loadAmps > 0 {
		fmt.Printf("Drop at %gA: %gV\n", loadAmps, wire.Voltage(loadAmps, ohms))
	}
}
