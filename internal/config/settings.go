package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/llm-d/llm-d-quantity-canon/internal/logging"
	"github.com/llm-d/llm-d-quantity-canon/internal/prime"
)

// EnvPrefix prefixes every environment override, as in CANON_CACHE_SIZE.
const EnvPrefix = "CANON"

// Setting keys, shared by flags, environment and config file.
const (
	KeyLogLevel               = "log-level"
	KeyCacheSize              = "cache-size"
	KeyMetricsEnabled         = "metrics-enabled"
	KeyProbablePrimeThreshold = "probable-prime-threshold"
	KeyFactorizer             = "factorizer"
	KeyCatalog                = "catalog"
)

// Defaults
const (
	DefaultLogLevel  = "info"
	DefaultCacheSize = 4096
)

var errNegativeCacheSize = errors.New("cache-size must be >= 0")

// Settings tunes the build pass and the query layer.
type Settings struct {
	LogLevel       string `mapstructure:"log-level"`
	CacheSize      int    `mapstructure:"cache-size"`
	MetricsEnabled bool   `mapstructure:"metrics-enabled"`
	// ProbablePrimeThreshold is the smallest integer checked with a
	// probable-prime test before factorization. Zero disables the test.
	ProbablePrimeThreshold uint64 `mapstructure:"probable-prime-threshold"`
	Factorizer             string `mapstructure:"factorizer"`
	CatalogPath            string `mapstructure:"catalog"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		LogLevel:               DefaultLogLevel,
		CacheSize:              DefaultCacheSize,
		MetricsEnabled:         true,
		ProbablePrimeThreshold: prime.DefaultPrimalityThreshold,
		Factorizer:             prime.WheelWithPrimalityTest.String(),
	}
}

// BindFlags registers the settings flags on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := DefaultSettings()
	fs.String(KeyLogLevel, d.LogLevel, "Log verbosity: info, debug or trace")
	fs.Int(KeyCacheSize, d.CacheSize, "Entries kept in the convertibility memo cache, 0 disables it")
	fs.Bool(KeyMetricsEnabled, d.MetricsEnabled, "Record build and query metrics")
	fs.Uint64(KeyProbablePrimeThreshold, d.ProbablePrimeThreshold,
		"Smallest integer tested for primality before factorization, 0 disables the test")
	fs.String(KeyFactorizer, d.Factorizer, "Factorization strategy: trial-division, wheel or wheel-with-primality-test")
	fs.String(KeyCatalog, d.CatalogPath, "Path of the quantity catalog manifest")
}

// LoadSettings merges, by increasing precedence, the defaults, the optional
// YAML file at path, CANON_* environment variables and the flags set on fs.
func LoadSettings(fs *pflag.FlagSet, path string) (Settings, error) {
	v := viper.New()
	d := DefaultSettings()
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyCacheSize, d.CacheSize)
	v.SetDefault(KeyMetricsEnabled, d.MetricsEnabled)
	v.SetDefault(KeyProbablePrimeThreshold, d.ProbablePrimeThreshold)
	v.SetDefault(KeyFactorizer, d.Factorizer)
	v.SetDefault(KeyCatalog, d.CatalogPath)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Settings{}, fmt.Errorf("binding flags: %w", err)
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading settings file %s: %w", path, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks for invalid setting values.
func (s Settings) Validate() error {
	if _, err := logging.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyLogLevel, err)
	}
	if s.CacheSize < 0 {
		return fmt.Errorf("%w, got %d", errNegativeCacheSize, s.CacheSize)
	}
	if _, err := prime.ParseStrategy(s.Factorizer); err != nil {
		return fmt.Errorf("invalid %s: %w", KeyFactorizer, err)
	}
	return nil
}

// Level returns the logr verbosity of LogLevel.
func (s Settings) Level() int {
	level, err := logging.ParseLevel(s.LogLevel)
	if err != nil {
		return logging.INFO
	}
	return level
}

// NewFactorizer builds the configured factorizer.
func (s Settings) NewFactorizer() (prime.Factorizer, error) {
	strategy, err := prime.ParseStrategy(s.Factorizer)
	if err != nil {
		return nil, err
	}
	if strategy == prime.WheelWithPrimalityTest {
		return prime.NewWheelFactorizer(s.ProbablePrimeThreshold), nil
	}
	return prime.NewFactorizer(strategy)
}
