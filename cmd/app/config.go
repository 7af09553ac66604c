// Package app loads and assembles the simulator configuration.
//
// Precedence: built-in defaults, then the config file (.yaml/.yml/.json),
// then MICROGRID_* environment variables. A scenario file referenced by
// scenario_file replaces the building/thermostat/weather block wholesale.
package app

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	kjson "github.com/knadh/koanf/parsers/json"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
	"gopkg.in/yaml.v3"

	"github.com/eggsactly/microgrid/internal/ports"
	"github.com/eggsactly/microgrid/internal/report"
	"github.com/eggsactly/microgrid/internal/solar"
	"github.com/eggsactly/microgrid/internal/thermal"
	"github.com/eggsactly/microgrid/internal/units"
	"github.com/eggsactly/microgrid/internal/weather"
)

const envPrefix = "MICROGRID_"

type Config struct {
	Scenario     ScenarioConfig `koanf:"scenario"`
	ScenarioFile string         `koanf:"scenario_file"`

	Simulation SimulationConfig `koanf:"simulation"`
	AC         ACConfig         `koanf:"ac"`
	Solar      SolarConfig      `koanf:"solar"`
	Output     OutputConfig     `koanf:"output"`
}

// ScenarioConfig is the building under test and the day's weather.
type ScenarioConfig struct {
	Building   BuildingConfig   `koanf:"building" yaml:"building"`
	Thermostat ThermostatConfig `koanf:"thermostat" yaml:"thermostat"`

	// WeatherCSV, when set, takes precedence over the inline table.
	WeatherCSV   string            `koanf:"weather_csv" yaml:"weather_csv"`
	Temperatures []TempPointConfig `koanf:"temperatures" yaml:"temperatures"`
}

// BuildingConfig describes a rectangular, windowless building the way a
// plan sheet would: feet and advertised R-values.
type BuildingConfig struct {
	LengthFt float64 `koanf:"length_ft" yaml:"length_ft"`
	WidthFt  float64 `koanf:"width_ft" yaml:"width_ft"`
	HeightFt float64 `koanf:"height_ft" yaml:"height_ft"`

	// WallR is the imperial R-value of the walls; it is divided by 5.8 to
	// obtain RSI. CeilingRSI is already an SI insulation value.
	WallR      float64 `koanf:"wall_r" yaml:"wall_r"`
	CeilingRSI float64 `koanf:"ceiling_rsi" yaml:"ceiling_rsi"`
}

type ThermostatConfig struct {
	SetpointF     float64 `koanf:"setpoint_f" yaml:"setpoint_f"`
	DifferentialF float64 `koanf:"differential_f" yaml:"differential_f"`
}

type TempPointConfig struct {
	Hour   int     `koanf:"hour" yaml:"hour"`
	Minute int     `koanf:"minute" yaml:"minute"`
	TempF  float64 `koanf:"temp_f" yaml:"temp_f"`
}

type SimulationConfig struct {
	TimeStep         time.Duration `koanf:"time_step"`
	Duration         time.Duration `koanf:"duration"`
	AirHeatCapacity  float64       `koanf:"air_heat_capacity"`
	AirDensity       float64       `koanf:"air_density"`
	KeepOpenInterval bool          `koanf:"keep_open_interval"`
}

type ACConfig struct {
	CapacityW           float64       `koanf:"capacity_w"`
	Volts               float64       `koanf:"volts"`
	CompressorStartAmps float64       `koanf:"compressor_start_amps"`
	CompressorRunAmps   float64       `koanf:"compressor_run_amps"`
	FanStartAmps        float64       `koanf:"fan_start_amps"`
	FanRunAmps          float64       `koanf:"fan_run_amps"`
	StartupTime         time.Duration `koanf:"startup_time"`
}

type SolarConfig struct {
	Enabled       bool    `koanf:"enabled"`
	PanelLengthIn float64 `koanf:"panel_length_in"`
	PanelWidthIn  float64 `koanf:"panel_width_in"`
	PanelCount    int     `koanf:"panel_count"`
	Efficiency    float64 `koanf:"efficiency"`
	TiltDegrees   float64 `koanf:"tilt_degrees"`
	Latitude      float64 `koanf:"latitude"`
	Date          string  `koanf:"date"` // YYYY-MM-DD, the day being simulated
}

type OutputConfig struct {
	IntervalsCSV string `koanf:"intervals_csv"`
}

// Default reproduces the reference scenario: a poorly insulated 1000 sq ft
// Tucson home with a 1.5 ton AC unit on July 27, 2023.
func Default() Config {
	return Config{
		Scenario: ScenarioConfig{
			Building: BuildingConfig{
				LengthFt:   32,
				WidthFt:    32,
				HeightFt:   8,
				WallR:      2.2,
				CeilingRSI: 13,
			},
			Thermostat: ThermostatConfig{
				SetpointF:     78,
				DifferentialF: 1,
			},
			// July 27, 2023 temperatures from Weather Underground.
			Temperatures: []TempPointConfig{
				{0, 53, 84}, {1, 53, 83}, {2, 53, 81}, {3, 53, 82},
				{4, 53, 80}, {5, 53, 81}, {6, 53, 79}, {7, 53, 86},
				{8, 53, 91}, {9, 53, 94}, {10, 53, 98}, {11, 53, 100},
				{12, 53, 102}, {13, 53, 105}, {14, 53, 106}, {15, 53, 106},
				{16, 53, 107}, {17, 53, 106}, {18, 53, 105}, {19, 53, 103},
				{20, 53, 99}, {20, 59, 98}, {21, 20, 93}, {21, 43, 93},
				{21, 53, 93}, {22, 14, 91}, {22, 24, 89}, {22, 39, 89},
				{22, 53, 89}, {23, 53, 92},
			},
		},
		Simulation: SimulationConfig{
			TimeStep:        time.Second,
			Duration:        24 * time.Hour,
			AirHeatCapacity: 700,
			AirDensity:      1.293,
		},
		// WA14AZ18AJ1 nameplate data.
		AC: ACConfig{
			CapacityW:           5200,
			Volts:               220,
			CompressorStartAmps: 43,
			CompressorRunAmps:   9,
			FanStartAmps:        1.5,
			FanRunAmps:          0.8,
			StartupTime:         time.Second,
		},
		// Ten 345 W panels at the typical AZ mounting angle.
		Solar: SolarConfig{
			Enabled:       true,
			PanelLengthIn: 68.82,
			PanelWidthIn:  41.50,
			PanelCount:    10,
			Efficiency:    0.187,
			TiltDegrees:   32,
			Latitude:      32.2540,
			Date:          "2023-07-27",
		},
	}
}

// Load reads the config at path. A missing file falls back to defaults.
func Load(path string) (Config, error) {
	var cfg Config

	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return cfg, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			parser, err := parserFor(path)
			if err != nil {
				return cfg, err
			}
			if err := k.Load(file.Provider(path), parser); err != nil {
				return cfg, fmt.Errorf("parse config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return cfg, fmt.Errorf("read config: %w", err)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix: envPrefix,
		TransformFunc: func(key, value string) (string, any) {
			return envKeyTransform(strings.TrimPrefix(key, envPrefix)), value
		},
	}), nil); err != nil {
		return cfg, fmt.Errorf("load env: %w", err)
	}

	if err := k.Unmarshal("", &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.ScenarioFile != "" {
		scenario, err := loadScenarioFile(resolvePath(path, cfg.ScenarioFile))
		if err != nil {
			return cfg, err
		}
		cfg.Scenario = scenario
	}
	return cfg, nil
}

func parserFor(path string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return kyaml.Parser(), nil
	case ".json":
		return kjson.Parser(), nil
	default:
		return nil, fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}
}

// envKeyTransform maps MICROGRID_-stripped environment keys to config paths:
// SIMULATION_TIME_STEP -> simulation.time_step,
// SCENARIO_BUILDING_WALL_R -> scenario.building.wall_r.
func envKeyTransform(s string) string {
	key := strings.ToLower(strings.TrimSpace(s))
	if key == "" {
		return ""
	}

	switch {
	case key == "scenario_file":
		return key
	case strings.HasPrefix(key, "scenario_building_"):
		return "scenario.building." + strings.TrimPrefix(key, "scenario_building_")
	case strings.HasPrefix(key, "scenario_thermostat_"):
		return "scenario.thermostat." + strings.TrimPrefix(key, "scenario_thermostat_")
	case strings.HasPrefix(key, "scenario_"):
		return "scenario." + strings.TrimPrefix(key, "scenario_")
	}

	if i := strings.IndexByte(key, '_'); i > 0 {
		switch section := key[:i]; section {
		case "simulation", "ac", "solar", "output":
			return section + "." + key[i+1:]
		}
	}
	return key
}

// resolvePath interprets ref relative to the config file's directory when it
// is not absolute, falling back to ref itself if nothing exists there.
func resolvePath(configPath, ref string) string {
	if filepath.IsAbs(ref) || configPath == "" {
		return ref
	}
	cand := filepath.Join(filepath.Dir(configPath), ref)
	if _, err := os.Stat(cand); err == nil {
		return cand
	}
	return ref
}

func loadScenarioFile(path string) (ScenarioConfig, error) {
	var s ScenarioConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("read scenario: %w", err)
	}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return s, fmt.Errorf("parse scenario: %w", err)
	}
	return s, nil
}

// Faces lays out the four walls and the roof as envelope faces in SI units.
func (b BuildingConfig) Faces() []thermal.Face {
	length := units.FeetToMeters(b.LengthFt)
	width := units.FeetToMeters(b.WidthFt)
	height := units.FeetToMeters(b.HeightFt)
	wallRSI := b.WallR * units.RToRSI

	return []thermal.Face{
		{Area: length * height, ThermalResistance: wallRSI}, // front
		{Area: width * height, ThermalResistance: wallRSI},  // side
		{Area: length * height, ThermalResistance: wallRSI}, // back
		{Area: width * height, ThermalResistance: wallRSI},  // side
		{Area: length * width, ThermalResistance: b.CeilingRSI},
	}
}

// Volume is the building's air volume in m³.
func (b BuildingConfig) Volume() float64 {
	return units.FeetToMeters(b.LengthFt) * units.FeetToMeters(b.WidthFt) * units.FeetToMeters(b.HeightFt)
}

// FloorAreaSqFt is used for the report header.
func (b BuildingConfig) FloorAreaSqFt() float64 {
	return b.LengthFt * b.WidthFt
}

// SimulatorConfig assembles the core simulation config, loading the weather
// CSV when one is referenced.
func (c Config) SimulatorConfig() (thermal.Config, error) {
	temps := make([]thermal.TemperatureSample, len(c.Scenario.Temperatures))
	for i, p := range c.Scenario.Temperatures {
		temps[i] = thermal.TemperatureSample{Hour: p.Hour, Minute: p.Minute, Fahrenheit: p.TempF}
	}
	if c.Scenario.WeatherCSV != "" {
		loaded, err := weather.Load(c.Scenario.WeatherCSV)
		if err != nil {
			return thermal.Config{}, err
		}
		temps = loaded
	}

	return thermal.Config{
		Faces:            c.Scenario.Building.Faces(),
		Volume:           c.Scenario.Building.Volume(),
		Temperatures:     temps,
		TimeStep:         c.Simulation.TimeStep,
		Duration:         c.Simulation.Duration,
		AirHeatCapacity:  c.Simulation.AirHeatCapacity,
		AirDensity:       c.Simulation.AirDensity,
		ACCapacity:       c.AC.CapacityW,
		Setpoint:         c.Scenario.Thermostat.SetpointF,
		Differential:     c.Scenario.Thermostat.DifferentialF,
		KeepOpenInterval: c.Simulation.KeepOpenInterval,
	}, nil
}

// ACUnit builds the electrical model for reporting.
func (c Config) ACUnit() report.ACUnit {
	return report.ACUnit{
		Volts:               c.AC.Volts,
		CompressorStartAmps: c.AC.CompressorStartAmps,
		CompressorRunAmps:   c.AC.CompressorRunAmps,
		FanStartAmps:        c.AC.FanStartAmps,
		FanRunAmps:          c.AC.FanRunAmps,
		StartupTime:         c.AC.StartupTime,
	}
}

// PowerSource builds the configured solar array, or a zero source when
// solar is disabled.
func (c Config) PowerSource() (ports.PowerSource, error) {
	if !c.Solar.Enabled {
		return ports.PowerSourceFunc(func(time.Time) float64 { return 0 }), nil
	}
	panelArea := units.InchesToMeters(c.Solar.PanelLengthIn) * units.InchesToMeters(c.Solar.PanelWidthIn)
	panel, err := solar.NewPanel(solar.PanelParams{
		Area:       panelArea * float64(c.Solar.PanelCount),
		Efficiency: c.Solar.Efficiency,
		Tilt:       c.Solar.TiltDegrees * math.Pi / 180,
		Latitude:   c.Solar.Latitude,
	})
	if err != nil {
		return nil, err
	}
	return panel, nil
}

// Day parses the simulated calendar day; the simulation's t=0 is its
// midnight.
func (c Config) Day() (time.Time, error) {
	day, err := time.Parse("2006-01-02", c.Solar.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse solar date: %w", err)
	}
	return day, nil
}
