package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres.address"`
	PostgresPort     string `koanf:"postgres.port"`
	PostgresDB       string `koanf:"postgres.db"`
	PostgresUsername string `koanf:"postgres.username"`
	PostgresPassword string `koanf:"postgres.password"`

	HTTPPort        string `koanf:"http.port"`
	LogLevel        string `koanf:"log.level"`
	OperatorWorkers int    `koanf:"operator.workers"`
	RunMigrations   bool   `koanf:"migrations.run"`
}

// envKeys maps the supported environment variables onto koanf keys.
var envKeys = map[string]string{
	"POSTGRES_ADDRESS":  "postgres.address",
	"POSTGRES_PORT":     "postgres.port",
	"POSTGRES_DB":       "postgres.db",
	"POSTGRES_USERNAME": "postgres.username",
	"POSTGRES_PASSWORD": "postgres.password",
	"HTTP_PORT":         "http.port",
	"LOG_LEVEL":         "log.level",
	"OPERATOR_WORKERS":  "operator.workers",
	"RUN_MIGRATIONS":    "migrations.run",
}

func defaults() map[string]interface{} {
	// In all cases the default behavior should be for the docker compose setup
	return map[string]interface{}{
		"postgres.address":  "localhost",
		"postgres.port":     "5433",
		"postgres.db":       "postgres",
		"postgres.username": "postgres",
		"postgres.password": "testpassword",
		"http.port":         "9446",
		"log.level":         "info",
		"operator.workers":  4,
		"migrations.run":    true,
	}
}

// ProcessEnvironmentVariables builds the config from defaults, the optional
// YAML file named by CONFIG_FILE, and finally the environment.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load(os.Getenv("CONFIG_FILE"))
}

func Load(configFile string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if configFile != "" {
		if err := k.Load(file.Provider(configFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", configFile, err)
		}
	}

	err := k.Load(env.Provider("", ".", func(s string) string {
		return envKeys[s]
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := Config{}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{FlatPaths: true}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	if c.PostgresDB == "" {
		errs = append(errs, errors.New("postgres db must not be empty"))
	}
	if _, err := strconv.Atoi(c.PostgresPort); err != nil {
		errs = append(errs, fmt.Errorf("invalid postgres port %q", c.PostgresPort))
	}
	if port, err := strconv.Atoi(c.HTTPPort); err != nil || port < 1 || port > 65535 {
		errs = append(errs, fmt.Errorf("invalid http port %q", c.HTTPPort))
	}
	if c.OperatorWorkers < 1 {
		errs = append(errs, fmt.Errorf("operator workers must be at least 1, got %d", c.OperatorWorkers))
	}

	return errors.Join(errs...)
}

// PostgresURL returns the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
