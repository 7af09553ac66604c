package weather

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eggsactly/microgrid/internal/thermal"
)

func TestRead(t *testing.T) {
	csv := strings.Join([]string{
		"hour,minute,temp_f",
		"0,53,84",
		"12,53,102",
		"23,53,92",
	}, "\n")

	samples, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, samples, 3)

	assert.Equal(t, thermal.TemperatureSample{Hour: 0, Minute: 53, Fahrenheit: 84}, samples[0])
	assert.Equal(t, thermal.TemperatureSample{Hour: 12, Minute: 53, Fahrenheit: 102}, samples[1])
	assert.Equal(t, thermal.TemperatureSample{Hour: 23, Minute: 53, Fahrenheit: 92}, samples[2])
}

func TestReadColumnOrderIndependent(t *testing.T) {
	csv := "temp_f,hour,minute\n84,0,53\n"

	samples, err := Read(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 84.0, samples[0].Fahrenheit)
	assert.Equal(t, 0, samples[0].Hour)
	assert.Equal(t, 53, samples[0].Minute)
}

func TestReadRejectsMalformedRows(t *testing.T) {
	csv := "hour,minute,temp_f\n0,53,not-a-number\n"

	_, err := Read(strings.NewReader(csv))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day.csv")
	require.NoError(t, os.WriteFile(path, []byte("hour,minute,temp_f\n6,0,79\n18,0,105\n"), 0o644))

	samples, err := Load(path)
	require.NoError(t, err)
	require.Len(t, samples, 2)
	assert.Equal(t, 79.0, samples[0].Fahrenheit)
	assert.Equal(t, 105.0, samples[1].Fahrenheit)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}
