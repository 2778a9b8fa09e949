// Package config loads scimctl's configuration from an optional YAML file
// and SCIMCTL_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config is the scimctl runtime configuration.
type Config struct {
	Logging struct {
		LogLevel       string        `json:"log_level"`
		LogLevelParsed zerolog.Level `json:"-"`
	} `json:"logging"`

	Output struct {
		// Indent pretty-prints emitted documents.
		Indent bool `json:"indent"`
	} `json:"output"`

	Validate struct {
		// Kind overrides resource kind sniffing ("User", "Group", ...).
		Kind string `json:"kind"`
	} `json:"validate"`
}

// NewConfig reads the config file at configPath, or scimctl.yaml in the
// working directory when empty, and applies environment overrides.
func NewConfig(configPath string) (*Config, error) {
	file := "scimctl.yaml"
	v := viper.New()

	if configPath != "" {
		exists, err := fileExists(configPath)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to determine if config file '%s' exists", configPath)
		}

		if !exists {
			return nil, errors.Errorf("config file '%s' doesn't exist", configPath)
		}

		file = configPath
	}

	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetConfigFile(file)
	v.SetEnvPrefix("SCIMCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("logging.log_level", "info")
	v.SetDefault("output.indent", true)
	v.SetDefault("validate.kind", "")

	configExists, err := fileExists(file)
	if err != nil {
		return nil, errors.Wrap(err, "filesystem error")
	}

	if configExists {
		if err = v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file '%s'", file)
		}
	}
	v.AutomaticEnv()

	cfg := new(Config)

	err = v.UnmarshalExact(cfg, func(dc *mapstructure.DecoderConfig) {
		dc.TagName = "json"
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config file")
	}

	cfg.Logging.LogLevelParsed, err = zerolog.ParseLevel(cfg.Logging.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "logging.log_level failed to parse")
	}

	return cfg, nil
}

func fileExists(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return true, nil
	} else if os.IsNotExist(err) {
		return false, nil
	} else {
		return false, errors.Wrapf(err, "failed to stat file '%s'", path)
	}
}
