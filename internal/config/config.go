// Package config loads application settings from an optional app.env file,
// a .env file and the process environment, and validates them before use.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
type Config struct {
	GoogleMapsAPIKey string `mapstructure:"GOOGLE_MAPS_API_KEY"`
	MapID            string `mapstructure:"MAP_ID"`

	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBScheme    string `mapstructure:"DB_SCHEME"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      string `mapstructure:"DB_PORT"`
	DBName      string `mapstructure:"DB_NAME"`

	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`
	GinMode            string `mapstructure:"GIN_MODE"`
	LogLevel           string `mapstructure:"LOG_LEVEL"`
	LogFormat          string `mapstructure:"LOG_FORMAT"`
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// DBSource is the normalized, ASCII-only connection string.
	DBSource string `mapstructure:"-"`
}

var defaults = map[string]string{
	"GOOGLE_MAPS_API_KEY":  "",
	"MAP_ID":               "",
	"DATABASE_URL":         "",
	"DB_SCHEME":            "postgresql",
	"DB_USER":              "",
	"DB_PASSWORD":          "",
	"DB_HOST":              "",
	"DB_PORT":              "",
	"DB_NAME":              "",
	"SERVER_ADDRESS":       ":8000",
	"GIN_MODE":             "release",
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "json",
	"CORS_ALLOWED_ORIGINS": "",
}

// LoadConfig reads configuration from path/app.env (optional), .env files in
// path and the working directory (optional, never overriding the
// environment) and the environment, then validates the result.
func LoadConfig(path string) (Config, error) {
	cfg, err := LoadDatabaseConfig(path)
	if err != nil {
		return Config{}, err
	}

	cfg.GoogleMapsAPIKey = clean(cfg.GoogleMapsAPIKey)
	if cfg.GoogleMapsAPIKey == "" {
		return Config{}, errors.New("config: GOOGLE_MAPS_API_KEY is not set or empty after cleanup")
	}
	if !isASCII(cfg.GoogleMapsAPIKey) {
		return Config{}, errors.New("config: GOOGLE_MAPS_API_KEY contains non-ASCII characters")
	}

	cfg.MapID = clean(cfg.MapID)
	if cfg.MapID == "" {
		return Config{}, errors.New("config: MAP_ID is not set or empty after cleanup")
	}

	return cfg, nil
}

// LoadDatabaseConfig is LoadConfig without the map settings, for tools that
// only talk to the database.
func LoadDatabaseConfig(path string) (Config, error) {
	for _, f := range []string{filepath.Join(path, ".env"), ".env"} {
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")
	v.AutomaticEnv()
	for k, d := range defaults {
		v.SetDefault(k, d)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("config: failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: failed to decode config: %w", err)
	}

	dsn, err := cfg.databaseSource()
	if err != nil {
		return Config{}, err
	}
	cfg.DBSource = dsn

	return cfg, nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c Config) AllowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}

func (c Config) databaseSource() (string, error) {
	var (
		dsn string
		err error
	)
	if raw := clean(c.DatabaseURL); raw != "" {
		dsn, err = NormalizeDatabaseURL(raw)
	} else {
		dsn, err = BuildDatabaseURL(DatabaseParts{
			Scheme:   c.DBScheme,
			User:     c.DBUser,
			Password: c.DBPassword,
			Host:     c.DBHost,
			Port:     c.DBPort,
			Name:     c.DBName,
		})
	}
	if err != nil {
		return "", err
	}
	if !isASCII(dsn) {
		return "", errors.New("config: DATABASE_URL still contains non-ASCII characters after normalization")
	}
	return dsn, nil
}

// CleanAPIKey strips the whitespace and byte order mark that invalidate
// otherwise correct keys pasted into URLs or env files.
func CleanAPIKey(raw string) string {
	return clean(raw)
}

// clean trims whitespace and a leading byte order mark.
func clean(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "\ufeff"))
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
