package config

import (
	"errors"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultSecret = "default-secret"

var ErrDatabaseURLRequired = errors.New("database URL is required")

type Config struct {
	Debug            bool          `yaml:"debug"`
	Host             string        `yaml:"host"`
	Port             string        `yaml:"port"`
	Secret           string        `yaml:"secret"`
	DatabaseURL      string        `yaml:"database_url"`
	MigrationSource  string        `yaml:"migration_source"`
	OtelCollectorUrl string        `yaml:"otel_collector_url"`
	AllowOrigins     []string      `yaml:"allow_origins"`
	TokenExpiration  time.Duration `yaml:"token_expiration"`
}

func defaultConfig() Config {
	return Config{
		Debug:           false,
		Host:            "localhost",
		Port:            "8080",
		Secret:          DefaultSecret,
		DatabaseURL:     "",
		MigrationSource: "file://internal/database/migrations",
		TokenExpiration: 12 * time.Hour,
	}
}

func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return ErrDatabaseURLRequired
	}
	return nil
}

// Load resolves configuration with precedence flags > env > .env > config.yaml
// > defaults. Messages produced before the logger exists are buffered in the
// returned Log and flushed once zap is up.
func Load() (Config, *Log) {
	logger := newLog()
	config := defaultConfig()

	config = config.loadYamlFile("config.yaml", logger)
	config = config.loadEnv(logger)
	config = config.loadFlags(logger)

	return config, logger
}

func (c Config) loadYamlFile(path string, logger *Log) Config {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.debug("No config file found, skipping: " + path)
			return c
		}
		logger.warn("Failed to read config file " + path + ": " + err.Error())
		return c
	}

	var fileConfig Config
	if err := yaml.Unmarshal(content, &fileConfig); err != nil {
		logger.warn("Failed to parse config file " + path + ": " + err.Error())
		return c
	}

	logger.info("Loaded config file: " + path)
	return c.merge(fileConfig)
}

func (c Config) loadEnv(logger *Log) Config {
	if err := godotenv.Load(); err == nil {
		logger.info("Loaded .env file")
	}

	envConfig := Config{
		Debug:            os.Getenv("DEBUG") == "true",
		Host:             os.Getenv("HOST"),
		Port:             os.Getenv("PORT"),
		Secret:           os.Getenv("SECRET"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		MigrationSource:  os.Getenv("MIGRATION_SOURCE"),
		OtelCollectorUrl: os.Getenv("OTEL_COLLECTOR_URL"),
	}

	if origins := os.Getenv("ALLOW_ORIGINS"); origins != "" {
		for _, origin := range strings.Split(origins, ",") {
			if trimmed := strings.TrimSpace(origin); trimmed != "" {
				envConfig.AllowOrigins = append(envConfig.AllowOrigins, trimmed)
			}
		}
	}

	if expiration := os.Getenv("TOKEN_EXPIRATION"); expiration != "" {
		parsed, err := time.ParseDuration(expiration)
		if err != nil {
			logger.warn("Invalid TOKEN_EXPIRATION, using default: " + err.Error())
		} else {
			envConfig.TokenExpiration = parsed
		}
	}

	return c.merge(envConfig)
}

func (c Config) loadFlags(logger *Log) Config {
	if flag.Parsed() {
		logger.warn("Flags already parsed, skipping flag configuration")
		return c
	}

	flagConfig := Config{}
	flag.BoolVar(&flagConfig.Debug, "debug", false, "enable debug mode")
	flag.StringVar(&flagConfig.Host, "host", "", "server host")
	flag.StringVar(&flagConfig.Port, "port", "", "server port")
	flag.StringVar(&flagConfig.Secret, "secret", "", "embed token signing secret")
	flag.StringVar(&flagConfig.DatabaseURL, "database-url", "", "database connection URL")
	flag.StringVar(&flagConfig.MigrationSource, "migration-source", "", "database migration source")
	flag.StringVar(&flagConfig.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector URL")
	flag.Parse()

	return c.merge(flagConfig)
}

func (c Config) merge(override Config) Config {
	if override.Debug {
		c.Debug = true
	}
	if override.Host != "" {
		c.Host = override.Host
	}
	if override.Port != "" {
		c.Port = override.Port
	}
	if override.Secret != "" {
		c.Secret = override.Secret
	}
	if override.DatabaseURL != "" {
		c.DatabaseURL = override.DatabaseURL
	}
	if override.MigrationSource != "" {
		c.MigrationSource = override.MigrationSource
	}
	if override.OtelCollectorUrl != "" {
		c.OtelCollectorUrl = override.OtelCollectorUrl
	}
	if len(override.AllowOrigins) > 0 {
		c.AllowOrigins = override.AllowOrigins
	}
	if override.TokenExpiration != 0 {
		c.TokenExpiration = override.TokenExpiration
	}
	return c
}
