package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	// Clean up environment before tests
	cleanupEnv := func() {
		os.Unsetenv("STEELCHECK_SERVER_PORT")
		os.Unsetenv("STEELCHECK_SERVER_ENVIRONMENT")
		os.Unsetenv("STEELCHECK_SERVER_ALLOWED_ORIGINS")
		os.Unsetenv("STEELCHECK_UPLOAD_MAX_FILE_SIZE_MB")
		os.Unsetenv("STEELCHECK_UPLOAD_MAX_FILES_PER_SIDE")
		os.Unsetenv("STEELCHECK_EXTRACT_CACHE_TTL")
		os.Unsetenv("STEELCHECK_PARSER_BARE_ANGLE_SUFFIX")
		os.Unsetenv("STEELCHECK_PARSER_DEBUG_LOGGING")
		os.Unsetenv("STEELCHECK_RATELIMIT_PER_MINUTE")
		os.Unsetenv("STEELCHECK_RATELIMIT_BURST")
	}

	t.Run("loads with defaults when no env vars set", func(t *testing.T) {
		cleanupEnv()
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		// Check defaults
		if cfg.Server.Port != "8080" {
			t.Errorf("Server.Port = %s, want 8080", cfg.Server.Port)
		}
		if cfg.Server.Environment != "development" {
			t.Errorf("Server.Environment = %s, want development", cfg.Server.Environment)
		}
		if len(cfg.Server.AllowedOrigins) != 1 || cfg.Server.AllowedOrigins[0] != "http://localhost:*" {
			t.Errorf("Server.AllowedOrigins = %v, want [http://localhost:*]", cfg.Server.AllowedOrigins)
		}
		if cfg.Upload.MaxFileSizeMB != 32 {
			t.Errorf("Upload.MaxFileSizeMB = %d, want 32", cfg.Upload.MaxFileSizeMB)
		}
		if cfg.Upload.MaxFilesPerSide != 10 {
			t.Errorf("Upload.MaxFilesPerSide = %d, want 10", cfg.Upload.MaxFilesPerSide)
		}
		if cfg.Extract.CacheTTL != time.Hour {
			t.Errorf("Extract.CacheTTL = %v, want 1h", cfg.Extract.CacheTTL)
		}
		if cfg.Parser.BareAngleSuffix != "UA" {
			t.Errorf("Parser.BareAngleSuffix = %s, want UA", cfg.Parser.BareAngleSuffix)
		}
		if cfg.Parser.DebugLogging {
			t.Error("Parser.DebugLogging = true, want false")
		}
		if cfg.RateLimit.PerMinute != 60 {
			t.Errorf("RateLimit.PerMinute = %d, want 60", cfg.RateLimit.PerMinute)
		}
		if cfg.RateLimit.Burst != 10 {
			t.Errorf("RateLimit.Burst = %d, want 10", cfg.RateLimit.Burst)
		}
	})

	t.Run("loads custom values from environment variables", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STEELCHECK_SERVER_PORT", "9090")
		os.Setenv("STEELCHECK_SERVER_ENVIRONMENT", "production")
		os.Setenv("STEELCHECK_UPLOAD_MAX_FILE_SIZE_MB", "8")
		os.Setenv("STEELCHECK_UPLOAD_MAX_FILES_PER_SIDE", "3")
		os.Setenv("STEELCHECK_EXTRACT_CACHE_TTL", "30m")
		os.Setenv("STEELCHECK_PARSER_BARE_ANGLE_SUFFIX", "EA")
		os.Setenv("STEELCHECK_PARSER_DEBUG_LOGGING", "true")
		os.Setenv("STEELCHECK_RATELIMIT_PER_MINUTE", "120")
		os.Setenv("STEELCHECK_RATELIMIT_BURST", "5")
		defer cleanupEnv()

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v, want nil", err)
		}

		if cfg.Server.Port != "9090" {
			t.Errorf("Server.Port = %s, want 9090", cfg.Server.Port)
		}
		if cfg.Server.Environment != "production" {
			t.Errorf("Server.Environment = %s, want production", cfg.Server.Environment)
		}
		if cfg.Upload.MaxFileSizeMB != 8 {
			t.Errorf("Upload.MaxFileSizeMB = %d, want 8", cfg.Upload.MaxFileSizeMB)
		}
		if cfg.Upload.MaxFilesPerSide != 3 {
			t.Errorf("Upload.MaxFilesPerSide = %d, want 3", cfg.Upload.MaxFilesPerSide)
		}
		if cfg.Extract.CacheTTL != 30*time.Minute {
			t.Errorf("Extract.CacheTTL = %v, want 30m", cfg.Extract.CacheTTL)
		}
		if cfg.Parser.BareAngleSuffix != "EA" {
			t.Errorf("Parser.BareAngleSuffix = %s, want EA", cfg.Parser.BareAngleSuffix)
		}
		if !cfg.Parser.DebugLogging {
			t.Error("Parser.DebugLogging = false, want true")
		}
		if cfg.RateLimit.PerMinute != 120 {
			t.Errorf("RateLimit.PerMinute = %d, want 120", cfg.RateLimit.PerMinute)
		}
		if cfg.RateLimit.Burst != 5 {
			t.Errorf("RateLimit.Burst = %d, want 5", cfg.RateLimit.Burst)
		}
	})

	t.Run("fails validation for zero max file size", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STEELCHECK_UPLOAD_MAX_FILE_SIZE_MB", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero max file size")
		}
	})

	t.Run("fails validation for invalid bare angle suffix", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STEELCHECK_PARSER_BARE_ANGLE_SUFFIX", "XX")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for invalid bare angle suffix")
		}
	})

	t.Run("fails validation for zero rate limit burst", func(t *testing.T) {
		cleanupEnv()
		os.Setenv("STEELCHECK_RATELIMIT_BURST", "0")
		defer cleanupEnv()

		_, err := Load()
		if err == nil {
			t.Error("Load() error = nil, want error for zero burst")
		}
	})
}

func TestValidate(t *testing.T) {
	// validConfig mirrors the defaults set by Load
	validConfig := func() *Config {
		return &Config{
			Server: ServerConfig{
				Port:        "8080",
				Environment: "development",
			},
			Upload: UploadConfig{
				MaxFileSizeMB:   32,
				MaxFilesPerSide: 10,
			},
			Extract: ExtractConfig{
				CacheTTL: time.Hour,
			},
			Parser: ParserConfig{
				BareAngleSuffix: "UA",
			},
			RateLimit: RateLimitConfig{
				PerMinute: 60,
				Burst:     10,
			},
		}
	}

	t.Run("validates successfully with all required fields", func(t *testing.T) {
		err := validate(validConfig())
		if err != nil {
			t.Errorf("validate() error = %v, want nil", err)
		}
	})

	t.Run("accepts EA as bare angle suffix", func(t *testing.T) {
		cfg := validConfig()
		cfg.Parser.BareAngleSuffix = "EA"

		err := validate(cfg)
		if err != nil {
			t.Errorf("validate() error = %v, want nil for EA suffix", err)
		}
	})

	t.Run("fails for negative max file size", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upload.MaxFileSizeMB = -1

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for negative max file size")
		}
	})

	t.Run("fails for zero max files per side", func(t *testing.T) {
		cfg := validConfig()
		cfg.Upload.MaxFilesPerSide = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero max files per side")
		}
	})

	t.Run("fails for lowercase bare angle suffix", func(t *testing.T) {
		cfg := validConfig()
		cfg.Parser.BareAngleSuffix = "ua"

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for lowercase suffix")
		}
	})

	t.Run("fails for zero rate limit per minute", func(t *testing.T) {
		cfg := validConfig()
		cfg.RateLimit.PerMinute = 0

		err := validate(cfg)
		if err == nil {
			t.Error("validate() error = nil, want error for zero per minute")
		}
	})
}
