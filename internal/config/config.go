package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the variable holding the config file path.
const EnvConfigPath = "SKILLGROWTH_CONFIG"

// DefaultConfigPath is used when EnvConfigPath is unset.
const DefaultConfigPath = "config/skillsim.yaml"

// Simulator holds all configuration for the skill simulator.
type Simulator struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	Locale   string `yaml:"locale"    env:"LOCALE"    validate:"required"`

	// 0 picks a random seed at startup.
	Seed int64 `yaml:"seed" env:"SEED"`

	MetricsAddr string `yaml:"metrics_addr" env:"METRICS_ADDR" validate:"omitempty,hostname_port"`

	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
	Growth   GrowthConfig   `yaml:"growth"   envPrefix:"GROWTH_"`
	Cache    CacheConfig    `yaml:"cache"    envPrefix:"CACHE_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"     env:"HOST"     validate:"required"`
	Port     int    `yaml:"port"     env:"PORT"     validate:"min=1,max=65535"`
	User     string `yaml:"user"     env:"USER"     validate:"required"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname"   env:"NAME"     validate:"required"`
	SSLMode  string `yaml:"sslmode"  env:"SSLMODE"  validate:"oneof=disable allow prefer require verify-ca verify-full"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// GrowthConfig tunes the skill engine.
type GrowthConfig struct {
	// Related-attribute recursion limit.
	MaxPropagationDepth int `yaml:"max_propagation_depth" env:"MAX_PROPAGATION_DEPTH" validate:"min=1,max=16"`
	// Gains are divided by 5 while set.
	LowYieldArea bool `yaml:"low_yield_area" env:"LOW_YIELD_AREA"`
	DungeonLevel int  `yaml:"dungeon_level"  env:"DUNGEON_LEVEL" validate:"min=0"`
	Overworld    bool `yaml:"overworld"      env:"OVERWORLD"`
}

// CacheConfig configures the skill table cache.
type CacheConfig struct {
	Size int           `yaml:"size" env:"SIZE" validate:"min=0"`
	TTL  time.Duration `yaml:"ttl"  env:"TTL"`
}

// DefaultSimulator returns Simulator config with sensible defaults.
func DefaultSimulator() Simulator {
	return Simulator{
		LogLevel: "info",
		Locale:   "en",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "skillgrowth",
			Password: "skillgrowth",
			DBName:   "skillgrowth",
			SSLMode:  "disable",
		},
		Growth: GrowthConfig{
			MaxPropagationDepth: 4,
			Overworld:           true,
		},
		Cache: CacheConfig{
			Size: 1024,
			TTL:  10 * time.Minute,
		},
	}
}

// LoadSimulator loads simulator config from a YAML file, then applies
// SKILLGROWTH_* environment overrides and validates the result.
// If the file doesn't exist, defaults are used.
func LoadSimulator(path string) (Simulator, error) {
	cfg := DefaultSimulator()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "SKILLGROWTH_"}); err != nil {
		return cfg, fmt.Errorf("parsing env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field constraints.
func (s Simulator) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validating config: %w", err)
	}
	return nil
}

// Path returns the config path from EnvConfigPath or DefaultConfigPath.
func Path() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	return DefaultConfigPath
}
