package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"

	"github.com/Snickdx/project-graph/internal/types"
)

// Loader handles loading configuration from files.
type Loader interface {
	Load(path string) (*Config, error)
	LoadWithDefaults(path string) (*Config, error)
}

// viperLoader implements Loader using Viper.
type viperLoader struct {
	validator Validator
}

// NewLoader creates a new Loader instance.
func NewLoader(validator Validator) Loader {
	return &viperLoader{validator: validator}
}

// Load loads configuration from the specified file path.
// Returns an error if the file doesn't exist or cannot be parsed.
func (l *viperLoader) Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to read config file", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "failed to unmarshal config", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadWithDefaults loads configuration from path, layered over
// DefaultConfig. A missing file is not an error; defaults (plus
// environment overrides) are returned instead.
func (l *viperLoader) LoadWithDefaults(path string) (*Config, error) {
	cfg := DefaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); notFound || isNotExist(err) {
			cfg.ApplyEnvironmentOverrides()
			if verr := l.validator.Validate(cfg); verr != nil {
				return nil, verr
			}
			return cfg, nil
		}
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, "failed to read config file", err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, "failed to unmarshal config", err)
	}

	cfg.ApplyEnvironmentOverrides()

	if err := l.validator.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// isNotExist reports whether err indicates a missing config file. Viper
// returns ConfigFileNotFoundError only for search-path lookups; explicit
// SetConfigFile paths surface the underlying fs error instead.
func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
