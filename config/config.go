/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/clientregistry/storagemodels"
)

// Supported storage backends.
const (
	BackendDynamoDB = "dynamodb"
	BackendSQLite   = "sqlite"
)

// Environment variables read by Load. AWS_ACCESS_KEY, AWS_SECRET_KEY and
// AWS_DDB_TABLE keep the names used by existing deployments.
const (
	EnvConfigFile      = "CLIENTREGISTRY_CONFIG"
	EnvBackend         = "CLIENTREGISTRY_BACKEND"
	EnvTableName       = "AWS_DDB_TABLE"
	EnvKeyAttribute    = "CLIENTREGISTRY_KEY_ATTRIBUTE"
	EnvRegion          = "AWS_REGION"
	EnvAccessKey       = "AWS_ACCESS_KEY"
	EnvSecretKey       = "AWS_SECRET_KEY"
	EnvEndpoint        = "AWS_DDB_ENDPOINT"
	EnvSQLitePath      = "CLIENTREGISTRY_SQLITE_PATH"
	EnvLegacyResponses = "CLIENTREGISTRY_LEGACY_RESPONSES"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
)

// AWSConfig holds DynamoDB connection settings. Empty credentials mean the
// default AWS credential chain (the Lambda execution role in production).
type AWSConfig struct {
	Region    string `yaml:"region"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Endpoint  string `yaml:"endpoint"`
}

// LogConfig selects the log level and output format ("json" or "text").
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config is the process configuration of the register function.
type Config struct {
	Backend      string    `yaml:"backend"`
	TableName    string    `yaml:"table_name"`
	KeyAttribute string    `yaml:"key_attribute"`
	AWS          AWSConfig `yaml:"aws"`
	SQLitePath   string    `yaml:"sqlite_path"`

	// LegacyResponses reproduces the legacy response contract: always
	// status 200, storage errors reported inside status_message, and parse
	// failures returned as a raw error.
	LegacyResponses bool `yaml:"legacy_responses"`

	Log LogConfig `yaml:"log"`
}

// LookupFunc reports the value of an environment variable.
type LookupFunc func(key string) (string, bool)

// Default returns the configuration used when nothing is set.
func Default() *Config {
	return &Config{
		Backend:      BackendDynamoDB,
		TableName:    storagemodels.ClientTableName,
		KeyAttribute: storagemodels.ClientKeyAttribute,
		AWS:          AWSConfig{Region: "us-east-1"},
		SQLitePath:   "clientregistry.db",
		Log:          LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads a .env file from the working directory if there is one, then
// builds the configuration from the process environment.
func Load() (*Config, error) {
	// A missing .env file is normal in Lambda.
	_ = godotenv.Load()
	return LoadFrom(os.LookupEnv)
}

// LoadFrom builds the configuration from defaults, then the YAML file named
// by CLIENTREGISTRY_CONFIG (if any), then the environment.
func LoadFrom(lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if path, ok := lookup(EnvConfigFile); ok && path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.mergeEnv(lookup); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) mergeEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		EnvBackend:      &c.Backend,
		EnvTableName:    &c.TableName,
		EnvKeyAttribute: &c.KeyAttribute,
		EnvRegion:       &c.AWS.Region,
		EnvAccessKey:    &c.AWS.AccessKey,
		EnvSecretKey:    &c.AWS.SecretKey,
		EnvEndpoint:     &c.AWS.Endpoint,
		EnvSQLitePath:   &c.SQLitePath,
		EnvLogLevel:     &c.Log.Level,
		EnvLogFormat:    &c.Log.Format,
	}
	for key, dst := range strs {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}

	if v, ok := lookup(EnvLegacyResponses); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s value %q: %w", EnvLegacyResponses, v, err)
		}
		c.LegacyResponses = b
	}
	return nil
}

// Validate checks that the configuration can build a working store.
func (c *Config) Validate() error {
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))

	switch c.Backend {
	case BackendDynamoDB:
		if c.AWS.Region == "" {
			return errors.New("aws region is required for the dynamodb backend")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return errors.New("sqlite path is required for the sqlite backend")
		}
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}

	if c.TableName == "" {
		return errors.New("table name is required")
	}
	// ClientRecord is always marshaled with its key in "id".
	if c.KeyAttribute != storagemodels.ClientKeyAttribute {
		return fmt.Errorf("key attribute must be %q, got %q", storagemodels.ClientKeyAttribute, c.KeyAttribute)
	}
	return nil
}
