package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server    ServerConfig
	Upload    UploadConfig
	Extract   ExtractConfig
	Parser    ParserConfig
	RateLimit RateLimitConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Port           string   `mapstructure:"port"`
	Environment    string   `mapstructure:"environment"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// UploadConfig bounds what a single review request may carry
type UploadConfig struct {
	MaxFileSizeMB   int `mapstructure:"max_file_size_mb"`
	MaxFilesPerSide int `mapstructure:"max_files_per_side"`
}

// ExtractConfig holds extraction-related configuration
type ExtractConfig struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// ParserConfig holds member parser configuration
type ParserConfig struct {
	// BareAngleSuffix is the angle family assumed for bare "L" notation,
	// "UA" or "EA"
	BareAngleSuffix string `mapstructure:"bare_angle_suffix"`
	DebugLogging    bool   `mapstructure:"debug_logging"`
}

// RateLimitConfig holds per-client rate limiting configuration
type RateLimitConfig struct {
	PerMinute int `mapstructure:"per_minute"`
	Burst     int `mapstructure:"burst"`
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/steelcheck/")

	// Environment variable settings
	v.SetEnvPrefix("STEELCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Set default values
	setDefaults(v)

	// Read config file (optional - will use env vars if file doesn't exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found; using environment variables and defaults
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	// Validate configuration
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.environment", "development")
	v.SetDefault("server.allowed_origins", []string{"http://localhost:*"})

	// Upload defaults
	v.SetDefault("upload.max_file_size_mb", 32)
	v.SetDefault("upload.max_files_per_side", 10)

	// Extraction defaults
	v.SetDefault("extract.cache_ttl", "1h")

	// Parser defaults
	v.SetDefault("parser.bare_angle_suffix", "UA")
	v.SetDefault("parser.debug_logging", false)

	// Rate limit defaults
	v.SetDefault("ratelimit.per_minute", 60)
	v.SetDefault("ratelimit.burst", 10)
}

// validate validates the configuration
func validate(config *Config) error {
	if config.Upload.MaxFileSizeMB <= 0 {
		return fmt.Errorf("upload max file size must be positive, got: %d", config.Upload.MaxFileSizeMB)
	}

	if config.Upload.MaxFilesPerSide <= 0 {
		return fmt.Errorf("upload max files per side must be positive, got: %d", config.Upload.MaxFilesPerSide)
	}

	if suffix := config.Parser.BareAngleSuffix; suffix != "UA" && suffix != "EA" {
		return fmt.Errorf("parser bare angle suffix must be 'UA' or 'EA', got: %s", suffix)
	}

	if config.RateLimit.PerMinute <= 0 {
		return fmt.Errorf("rate limit per minute must be positive, got: %d", config.RateLimit.PerMinute)
	}

	if config.RateLimit.Burst < 1 {
		return fmt.Errorf("rate limit burst must be at least 1, got: %d", config.RateLimit.Burst)
	}

	return nil
}
