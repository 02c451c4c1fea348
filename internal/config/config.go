package config

import (
	"context"
	"fmt"
	"os"

	"github.com/sethvargo/go-envconfig"
	"gopkg.in/yaml.v3"

	"CoinChart/internal/generator"
	"CoinChart/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Generator struct {
		StartPrice   float64 `yaml:"start_price"`
		StartVolume  float64 `yaml:"start_volume"`
		PointsPerDay int     `yaml:"points_per_day"`
		PriceFloor   float64 `yaml:"price_floor"`
		VolumeFloor  float64 `yaml:"volume_floor"`
		MaxStep      float64 `yaml:"max_step"`
		Seed         uint64  `yaml:"seed"` // 0 means seed from the clock
	} `yaml:"generator"`
	Dashboard struct {
		DefaultRange  string `yaml:"default_range"`
		DefaultTab    string `yaml:"default_tab"`
		DayMultiplier int    `yaml:"day_multiplier"`
		InitialDays   int    `yaml:"initial_days"`
		ChartWidth    int    `yaml:"chart_width"`
		MovingPeriod  int    `yaml:"moving_period"`
	} `yaml:"dashboard"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig selects level, format and destination of the log output.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text or json
	Output string `yaml:"output"` // stdout, stderr or a file path
}

// overrides are read from COINCHART_* environment variables.
type overrides struct {
	PointsPerDay  int     `env:"POINTS_PER_DAY"`
	DayMultiplier int     `env:"DAY_MULTIPLIER"`
	InitialDays   int     `env:"INITIAL_DAYS"`
	StartPrice    float64 `env:"START_PRICE"`
	PriceFloor    float64 `env:"PRICE_FLOOR"`
	Seed          uint64  `env:"SEED"`
	DefaultRange  string  `env:"DEFAULT_RANGE"`
	DefaultTab    string  `env:"DEFAULT_TAB"`
	RefreshCron   string  `env:"REFRESH_CRON"`
	LogLevel      string  `env:"LOG_LEVEL"`
	LogFormat     string  `env:"LOG_FORMAT"`
	LogOutput     string  `env:"LOG_OUTPUT"`
}

// EnvPrefix is prepended to every override variable.
const EnvPrefix = "COINCHART_"

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	return load(path, envconfig.PrefixLookuper(EnvPrefix, envconfig.OsLookuper()))
}

func load(path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	var env overrides
	if err := envconfig.ProcessWith(context.Background(), &envconfig.Config{
		Target:   &env,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	cfg.apply(&env)
	cfg.setDefaults()

	return cfg, nil
}

func (c *Config) apply(env *overrides) {
	if env.PointsPerDay != 0 {
		c.Generator.PointsPerDay = env.PointsPerDay
	}
	if env.DayMultiplier != 0 {
		c.Dashboard.DayMultiplier = env.DayMultiplier
	}
	if env.InitialDays != 0 {
		c.Dashboard.InitialDays = env.InitialDays
	}
	if env.StartPrice != 0 {
		c.Generator.StartPrice = env.StartPrice
	}
	if env.PriceFloor != 0 {
		c.Generator.PriceFloor = env.PriceFloor
	}
	if env.Seed != 0 {
		c.Generator.Seed = env.Seed
	}
	if env.DefaultRange != "" {
		c.Dashboard.DefaultRange = env.DefaultRange
	}
	if env.DefaultTab != "" {
		c.Dashboard.DefaultTab = env.DefaultTab
	}
	if env.RefreshCron != "" {
		c.Schedule.RefreshCron = env.RefreshCron
	}
	if env.LogLevel != "" {
		c.Logging.Level = env.LogLevel
	}
	if env.LogFormat != "" {
		c.Logging.Format = env.LogFormat
	}
	if env.LogOutput != "" {
		c.Logging.Output = env.LogOutput
	}
}

func (c *Config) setDefaults() {
	g := &c.Generator
	if g.StartPrice == 0 {
		g.StartPrice = generator.DefaultStartPrice
	}
	if g.StartVolume == 0 {
		g.StartVolume = generator.DefaultStartVolume
	}
	if g.PointsPerDay == 0 {
		g.PointsPerDay = generator.DefaultPointsPerDay
	}
	if g.PriceFloor == 0 {
		g.PriceFloor = generator.DefaultPriceFloor
	}
	if g.VolumeFloor == 0 {
		g.VolumeFloor = generator.DefaultVolumeFloor
	}
	if g.MaxStep == 0 {
		g.MaxStep = generator.DefaultMaxStep
	}

	d := &c.Dashboard
	if d.DefaultRange == "" {
		d.DefaultRange = string(model.DefaultRange)
	}
	if d.DefaultTab == "" {
		d.DefaultTab = string(model.DefaultTab)
	}
	if d.DayMultiplier == 0 {
		d.DayMultiplier = 7
	}
	if d.InitialDays == 0 {
		d.InitialDays = 7
	}
	if d.ChartWidth == 0 {
		d.ChartWidth = 60
	}
	if d.MovingPeriod == 0 {
		d.MovingPeriod = 20
	}

	if c.Schedule.RefreshCron == "" {
		c.Schedule.RefreshCron = "*/10 * * * * *"
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
}

// Validate checks that all fields hold usable values.
func (c *Config) Validate() error {
	if err := c.GeneratorConfig().Validate(); err != nil {
		return fmt.Errorf("generator: %w", err)
	}
	if c.Dashboard.DayMultiplier <= 0 || c.Dashboard.DayMultiplier > model.MaxDayMultiplier {
		return fmt.Errorf("dashboard.day_multiplier must be in 1..%d, got %d", model.MaxDayMultiplier, c.Dashboard.DayMultiplier)
	}
	if c.Dashboard.InitialDays < 0 || c.Dashboard.InitialDays > generator.MaxDays {
		return fmt.Errorf("dashboard.initial_days must be in 0..%d, got %d", generator.MaxDays, c.Dashboard.InitialDays)
	}
	if c.Dashboard.ChartWidth <= 0 {
		return fmt.Errorf("dashboard.chart_width must be positive")
	}
	if c.Dashboard.MovingPeriod <= 0 {
		return fmt.Errorf("dashboard.moving_period must be positive")
	}
	if _, err := model.ParseRange(c.Dashboard.DefaultRange); err != nil {
		return fmt.Errorf("dashboard.default_range: %w", err)
	}
	if _, err := model.ParseTab(c.Dashboard.DefaultTab); err != nil {
		return fmt.Errorf("dashboard.default_tab: %w", err)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// GeneratorConfig converts the generator section.
func (c *Config) GeneratorConfig() generator.Config {
	return generator.Config{
		StartPrice:   c.Generator.StartPrice,
		StartVolume:  c.Generator.StartVolume,
		PointsPerDay: c.Generator.PointsPerDay,
		PriceFloor:   c.Generator.PriceFloor,
		VolumeFloor:  c.Generator.VolumeFloor,
		MaxStep:      c.Generator.MaxStep,
	}
}
