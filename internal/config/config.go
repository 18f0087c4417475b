package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"

	"github.com/mitchelldurbincs/BattleshipMonteCarlo/internal/game/core"
)

// AppName names the XDG config directory and the system config directory suffix
const AppName = "battleship-mc"

// Config holds all configuration for the application
type Config struct {
	Game        GameConfig        `mapstructure:"game"`
	MonteCarlo  MonteCarloConfig  `mapstructure:"montecarlo"`
	Server      ServerConfig      `mapstructure:"server"`
	Store       StoreConfig       `mapstructure:"store"`
	Development DevelopmentConfig `mapstructure:"development"`
}

// GameConfig holds game rules configuration
type GameConfig struct {
	Fleet    []int `mapstructure:"fleet"`
	MaxTurns int   `mapstructure:"max_turns"`
}

// MonteCarloConfig holds shot-selection tuning
type MonteCarloConfig struct {
	Simulations          int `mapstructure:"simulations"`
	ShotsPerSimulation   int `mapstructure:"shots_per_simulation"`
	MaxPlacementAttempts int `mapstructure:"max_placement_attempts"`
	Workers              int `mapstructure:"workers"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Advisor AdvisorServerConfig `mapstructure:"advisor"`
}

// AdvisorServerConfig holds gRPC advisor server configuration
type AdvisorServerConfig struct {
	Host                  string `mapstructure:"host"`
	Port                  int    `mapstructure:"port"`
	LogLevel              string `mapstructure:"log_level"`
	EnableReflection      bool   `mapstructure:"enable_reflection"`
	GracefulShutdownDelay int    `mapstructure:"graceful_shutdown_delay"`
}

// StoreConfig holds game record persistence settings
type StoreConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	DSN          string `mapstructure:"dsn"`
	MaxOpenConns int    `mapstructure:"max_open_conns"`
}

// DevelopmentConfig holds development/debug settings
type DevelopmentConfig struct {
	VerboseLogging bool `mapstructure:"verbose_logging"`
	ShowBoards     bool `mapstructure:"show_boards"`
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault
func setViperDefaults(v *viper.Viper) {
	// Game defaults
	v.SetDefault("game.fleet", core.DefaultFleet())
	v.SetDefault("game.max_turns", 1000)

	// Monte-Carlo defaults
	v.SetDefault("montecarlo.simulations", 1000)
	v.SetDefault("montecarlo.shots_per_simulation", 100)
	v.SetDefault("montecarlo.max_placement_attempts", 100)
	v.SetDefault("montecarlo.workers", 1)

	// Advisor server defaults
	v.SetDefault("server.advisor.host", "0.0.0.0")
	v.SetDefault("server.advisor.port", 50061)
	v.SetDefault("server.advisor.log_level", "info")
	v.SetDefault("server.advisor.enable_reflection", true)
	v.SetDefault("server.advisor.graceful_shutdown_delay", 2)

	// Store defaults
	v.SetDefault("store.enabled", false)
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.max_open_conns", 10)

	// Development defaults
	v.SetDefault("development.verbose_logging", false)
	v.SetDefault("development.show_boards", false)
}

// Init initializes the configuration
func Init(configPath string) error {
	v = viper.New()

	// Set defaults before loading any config
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		v.AddConfigPath(filepath.Join("/etc", AppName))
	}

	// Set environment variable prefix
	v.SetEnvPrefix("BSMC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing explicit file falls back to defaults; for the search
		// path only ConfigFileNotFoundError is tolerated.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && configPath == "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	return nil
}

// Get returns the global config instance
func Get() *Config {
	if cfg == nil {
		// Initialize with defaults if not already initialized
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// GetViper returns the viper instance for advanced usage
func GetViper() *viper.Viper {
	if v == nil {
		panic("config not initialized - call Init() first")
	}
	return v
}

// LoadEnvironmentConfig merges config.<env>.yaml from the working directory,
// if it exists
func LoadEnvironmentConfig(env string) error {
	if env == "" {
		return nil
	}

	envFile := fmt.Sprintf("config.%s.yaml", env)
	if _, err := os.Stat(envFile); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(envFile)
	if err := v.MergeInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error merging environment config %s: %w", envFile, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode merged config into struct: %w", err)
	}

	return Validate(cfg)
}

// Set allows runtime config updates
func Set(key string, value interface{}) {
	v.Set(key, value)
	// Re-unmarshal to update struct
	_ = v.Unmarshal(cfg)
}

// GetString gets a string value from config
func GetString(key string) string {
	return v.GetString(key)
}

// GetInt gets an int value from config
func GetInt(key string) int {
	return v.GetInt(key)
}

// GetBool gets a bool value from config
func GetBool(key string) bool {
	return v.GetBool(key)
}

// ConfigFilePath returns the path of the loaded config file
func ConfigFilePath() string {
	return v.ConfigFileUsed()
}

// WatchConfig enables hot-reloading of the config file. Reloads that fail
// validation are reported to onChange and leave the previous values in place.
func WatchConfig(onChange func(*Config, error)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		next := &Config{}
		err := v.Unmarshal(next)
		if err == nil {
			err = Validate(next)
		}
		if err == nil {
			*cfg = *next
		}
		if onChange != nil {
			onChange(cfg, err)
		}
	})
	v.WatchConfig()
}

// Validate validates the configuration values
func Validate(c *Config) error {
	if err := core.ValidateFleet(c.Game.Fleet); err != nil {
		return fmt.Errorf("game.fleet: %w", err)
	}
	if c.Game.MaxTurns < 1 {
		return fmt.Errorf("game.max_turns must be positive")
	}

	if c.MonteCarlo.Simulations < 1 {
		return fmt.Errorf("montecarlo.simulations must be at least 1")
	}
	if c.MonteCarlo.ShotsPerSimulation < 1 {
		return fmt.Errorf("montecarlo.shots_per_simulation must be at least 1")
	}
	if c.MonteCarlo.MaxPlacementAttempts < 1 {
		return fmt.Errorf("montecarlo.max_placement_attempts must be at least 1")
	}
	if c.MonteCarlo.Workers < 1 {
		return fmt.Errorf("montecarlo.workers must be at least 1")
	}

	if c.Server.Advisor.Port <= 0 || c.Server.Advisor.Port > 65535 {
		return fmt.Errorf("server.advisor.port must be between 1 and 65535")
	}
	if c.Server.Advisor.GracefulShutdownDelay < 0 {
		return fmt.Errorf("server.advisor.graceful_shutdown_delay must be non-negative")
	}

	if c.Store.Enabled && c.Store.DSN == "" {
		return fmt.Errorf("store.dsn is required when store.enabled is set")
	}
	if c.Store.MaxOpenConns < 0 {
		return fmt.Errorf("store.max_open_conns must be non-negative")
	}

	return nil
}
