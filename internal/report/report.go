package report

import (
	"fmt"
	"io"
	"time"
)

// WriteText renders the event log and daily totals.
func (s Summary) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintln(w, "Event log:"); err != nil {
		return err
	}
	for _, e := range s.Events {
		if _, err := fmt.Fprintf(w, "%s AC turned on for: %ds\n", ClockTime(e.Start), int(e.Duration.Seconds())); err != nil {
			return err
		}
	}

	if s.Starts > 0 {
		if _, err := fmt.Fprintf(w, "\nAC started %d times; mean run %.0fs, longest run %.0fs, duty cycle %.1f%%\n",
			s.Starts, s.MeanRunSeconds, s.MaxRunSeconds, s.DutyCycle*100); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "\nAC Power from solar panels: %.3f kWh\n", s.SolarEnergy/JoulesPerKWh); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\nEnergy pulled from the grid: %.3f kWh\n", s.GridEnergy/JoulesPerKWh); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nTotal energy used for the day: %.3f kWh\n", s.TotalEnergy/JoulesPerKWh)
	return err
}

// ClockTime renders an offset from midnight as wall-clock time, "3:07 pm".
func ClockTime(d time.Duration) string {
	sec := int(d / time.Second)
	hour := sec / 3600
	minute := (sec / 60) % 60

	daySide := "am"
	if hour >= 12 {
		daySide = "pm"
	}
	clockHour := (hour+11)%12 + 1
	return fmt.Sprintf("%d:%02d %s", clockHour, minute, daySide)
}
