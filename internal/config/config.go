package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/rhyrak/go-timetable/internal/scheduler"
)

// EnvPrefix marks environment overrides, e.g. TIMETABLE_SOURCE__DIR.
const EnvPrefix = "TIMETABLE_"

type Config struct {
	Server   ServerConfig   `json:"server"`
	Source   SourceConfig   `json:"source"`
	Schedule ScheduleConfig `json:"schedule"`
	Logging  LoggingConfig  `json:"logging"`
}

type ServerConfig struct {
	Addr string `json:"addr"`
}

// SourceConfig locates the course exports.
type SourceConfig struct {
	Dir     string `json:"dir"`
	Pattern string `json:"pattern"`
}

type ScheduleConfig struct {
	// Seed fixes room assignment; 0 picks a new seed per process.
	Seed      int64 `json:"seed"`
	RoomCount int   `json:"room_count"`
	// Placeholder fills grid cells without a class.
	Placeholder string `json:"placeholder"`
}

// Default returns the configuration used when no file or environment
// override is given.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":3001"},
		Source:   SourceConfig{Dir: ".", Pattern: "*.csv"},
		Schedule: ScheduleConfig{RoomCount: 8, Placeholder: "---"},
		Logging:  LoggingConfig{Level: "info", Format: "json"},
	}
}

// Load reads the optional config file at path and applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	if path != "" {
		ext := strings.ToLower(filepath.Ext(path))
		var parser koanf.Parser
		switch ext {
		case ".yaml", ".yml":
			parser = yaml.Parser()
		case ".json":
			parser = json.Parser()
		default:
			return nil, fmt.Errorf("unsupported config format: %s", ext)
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Default()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills fields left empty by the sources.
func (c *Config) SetDefaults() {
	def := Default()
	if c.Server.Addr == "" {
		c.Server.Addr = def.Server.Addr
	}
	if c.Source.Dir == "" {
		c.Source.Dir = def.Source.Dir
	}
	if c.Source.Pattern == "" {
		c.Source.Pattern = def.Source.Pattern
	}
	if c.Schedule.Placeholder == "" {
		c.Schedule.Placeholder = def.Schedule.Placeholder
	}
	c.Logging.SetDefaults()
}

func (c *Config) Validate() error {
	if c.Schedule.RoomCount <= 0 || c.Schedule.RoomCount > scheduler.MaxRoomCount {
		return fmt.Errorf("schedule.room_count must be between 1 and %d, got %d", scheduler.MaxRoomCount, c.Schedule.RoomCount)
	}
	if _, err := filepath.Match(c.Source.Pattern, ""); err != nil {
		return fmt.Errorf("source.pattern %q: %w", c.Source.Pattern, err)
	}
	return c.Logging.Validate()
}

// SchedulerConfiguration converts the schedule section for the scheduler.
func (c *Config) SchedulerConfiguration() *scheduler.Configuration {
	sc := scheduler.NewDefaultConfiguration()
	sc.RoomCount = c.Schedule.RoomCount
	sc.Seed = c.Schedule.Seed
	return sc
}
