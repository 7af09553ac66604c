package report

import (
	"encoding/csv"
	"os"
	"strconv"
)

// WriteIntervalsCSV writes the AC run intervals to path, one row per run.
func WriteIntervalsCSV(path string, events []Event) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write([]string{"start_seconds", "start_clock", "duration_seconds"}); err != nil {
		return err
	}
	for _, e := range events {
		row := []string{
			strconv.Itoa(int(e.Start.Seconds())),
			ClockTime(e.Start),
			strconv.Itoa(int(e.Duration.Seconds())),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}
