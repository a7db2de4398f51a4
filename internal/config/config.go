package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds runtime configuration values for the assessment service.
type Config struct {
	AppName         string
	AppEnv          string
	AppPort         string
	ModelPath       string
	RateLimitMax    int
	RateLimitWindow time.Duration
	NoticeHTML      string
	LogLevel        zerolog.Level
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("RISKCHECK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "Student Depression Risk Assessment")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("model.path", "models/student_depression_model.json")
	v.SetDefault("rate_limit.max", 30)
	v.SetDefault("rate_limit.window", "1m")
	v.SetDefault("ui.notice_html", "")
	v.SetDefault("log.level", "info")

	window, err := time.ParseDuration(v.GetString("rate_limit.window"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid rate limit window: %w", err)
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(v.GetString("log.level"))))
	if err != nil {
		return Config{}, fmt.Errorf("invalid log level: %w", err)
	}

	cfg := Config{
		AppName:         v.GetString("app.name"),
		AppEnv:          v.GetString("app.env"),
		AppPort:         v.GetString("app.port"),
		ModelPath:       strings.TrimSpace(v.GetString("model.path")),
		RateLimitMax:    v.GetInt("rate_limit.max"),
		RateLimitWindow: window,
		NoticeHTML:      v.GetString("ui.notice_html"),
		LogLevel:        level,
	}

	if cfg.ModelPath == "" {
		return Config{}, fmt.Errorf("model path must be provided")
	}

	if cfg.RateLimitMax <= 0 {
		cfg.RateLimitMax = 30
	}

	if cfg.RateLimitWindow <= 0 {
		cfg.RateLimitWindow = time.Minute
	}

	return cfg, nil
}
