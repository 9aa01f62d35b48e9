package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server ServerConfig
	Log    LogConfig
	Google GoogleConfig
	Naver  NaverConfig
	App    AppConfig
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port    int
	GinMode string // debug, release, test
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // json, text
}

// GoogleConfig holds the Google Maps / Places credential. An empty key is
// valid and puts the service into demo (mock data) mode.
type GoogleConfig struct {
	APIKey string
}

// NaverConfig holds the Naver local-search credential pair. Both values must
// be present for the local provider to be attempted.
type NaverConfig struct {
	ClientID     string
	ClientSecret string
}

// Configured reports whether the Naver credential pair is usable.
func (n NaverConfig) Configured() bool {
	return n.ClientID != "" && n.ClientSecret != ""
}

// AppConfig holds application-specific configuration
type AppConfig struct {
	MaxPages    int // Maximum nearby-search pages to fetch per request
	PageDelayMs int // Wait between pages while the continuation token becomes valid
	// CategoryLabels maps provider place types to display categories used by
	// the mock dataset filter.
	CategoryLabels map[string]string
}

// PageDelay returns the inter-page pagination delay as a duration.
func (a AppConfig) PageDelay() time.Duration {
	return time.Duration(a.PageDelayMs) * time.Millisecond
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	// Set config file name and paths
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	viper.AddConfigPath("$HOME/.matzip-radar")

	// Set defaults
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.ginmode", "release")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "text")
	viper.SetDefault("google.apikey", "")
	viper.SetDefault("naver.clientid", "")
	viper.SetDefault("naver.clientsecret", "")
	viper.SetDefault("app.maxpages", 3)
	viper.SetDefault("app.pagedelayms", 2000)
	viper.SetDefault("app.categorylabels", defaultCategoryLabels())

	// Read from environment variables
	viper.SetEnvPrefix("MATZIP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// The deployment historically configures credentials under these names,
	// so keep honoring them alongside the prefixed form.
	_ = viper.BindEnv("google.apikey", "MATZIP_GOOGLE_APIKEY", "GOOGLE_PLACES_API_KEY")
	_ = viper.BindEnv("naver.clientid", "MATZIP_NAVER_CLIENTID", "NAVER_SEARCH_CLIENT_ID")
	_ = viper.BindEnv("naver.clientsecret", "MATZIP_NAVER_CLIENTSECRET", "NAVER_SEARCH_CLIENT_SECRET")

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if config file doesn't exist, we have defaults
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Unmarshal into config struct
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// defaultCategoryLabels is the canonical place-type to category table. The
// western_restaurant entry was missing from one of the historical call sites;
// this table is the single source of truth now.
func defaultCategoryLabels() map[string]string {
	return map[string]string{
		"korean_restaurant":   "한식",
		"japanese_restaurant": "일식",
		"chinese_restaurant":  "중식",
		"western_restaurant":  "양식",
		"cafe":                "카페",
	}
}

// GetServerAddr returns the server address in the format ":port"
func (c *Config) GetServerAddr() string {
	return fmt.Sprintf(":%d", c.Server.Port)
}

// NewLogger creates a new slog.Logger based on the configuration
func (c *Config) NewLogger() *slog.Logger {
	// Parse log level
	var level slog.Level
	switch strings.ToLower(c.Log.Level) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	// Create handler options
	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Choose handler based on format
	var handler slog.Handler
	switch strings.ToLower(c.Log.Format) {
	case "json":
		handler = slog.NewJSONHandler(os.Stdout, opts)
	default: // "text" or anything else
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}
