package core

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

const DefaultProductName = "powershell"

type Config struct {
	// ProductName is the subdirectory used below every resolved base directory
	ProductName string `yaml:"product_name" validate:"required,excludesall=/\\"`

	LogLevel string `yaml:"log_level" validate:"omitempty,oneof=debug info warn error"`

	// Account database files used for uid/gid name lookups
	PasswdFile string `yaml:"passwd_file" validate:"required"`
	GroupFile  string `yaml:"group_file" validate:"required"`

	// TempRoot is where the per-process temporary directory is created.
	// Empty means os.TempDir().
	TempRoot string `yaml:"temp_root"`
}

func DefaultConfig() *Config {
	return &Config{
		ProductName: DefaultProductName,
		LogLevel:    "info",
		PasswdFile:  "/etc/passwd",
		GroupFile:   "/etc/group",
	}
}

// LoadConfig reads a YAML file over the defaults. A missing file
// is not an error: the defaults are returned.
func LoadConfig(fname string) (*Config, error) {
	cfg := DefaultConfig()

	b, err := os.ReadFile(fname)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		log.Debugf("Config file %s not found, using defaults", fname)
		return cfg, nil
	default:
		return nil, err
	}

	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse %s: %w", fname, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return validationFailed("invalid configuration: %s", err)
	}

	return nil
}

// Level returns the logrus level matching LogLevel.
func (c *Config) Level() log.Level {
	if lvl, err := log.ParseLevel(c.LogLevel); err == nil {
		return lvl
	}

	return log.InfoLevel
}
