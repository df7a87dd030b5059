package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig
	CORS       CORSConfig

	// Remote to-do list
	TaskStore TaskStoreConfig

	// Chat adapters
	Telegram TelegramConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// TaskStoreConfig configures the one-list API client.
type TaskStoreConfig struct {
	URL         string
	AccessToken string // default credential, used when a request carries none
	AuthMode    string // "query" (access_token param) or "bearer"
	Timeout     time.Duration
}

type TelegramConfig struct {
	BotToken   string
	WebhookURL string
}

type RateLimitConfig struct {
	PerMin int // 0 disables the limiter
}

type CORSConfig struct {
	AllowedOrigins []string
}

const (
	AuthModeQuery  = "query"
	AuthModeBearer = "bearer"
)

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/todo-chat/
func Load() (*Config, error) {
	return LoadFile("")
}

// LoadFile is Load with an explicit config file path. An empty path falls
// back to the default search locations.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/todo-chat/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")
	cfg.CORS.AllowedOrigins = splitList(v.GetString("cors.allowed_origins"))

	// Task store
	cfg.TaskStore.URL = strings.TrimRight(v.GetString("task_store.url"), "/")
	cfg.TaskStore.AccessToken = v.GetString("task_store.access_token")
	cfg.TaskStore.AuthMode = strings.ToLower(v.GetString("task_store.auth_mode"))
	// Flat env names used by existing deployments
	if token := v.GetString("access_token"); token != "" {
		cfg.TaskStore.AccessToken = token
	}
	if storeURL := v.GetString("task_store_url"); storeURL != "" {
		cfg.TaskStore.URL = strings.TrimRight(storeURL, "/")
	}

	timeout, err := time.ParseDuration(v.GetString("task_store.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid task_store.timeout: %w", err)
	}
	cfg.TaskStore.Timeout = timeout

	// Telegram
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)
	v.SetDefault("cors.allowed_origins", "*")

	v.SetDefault("task_store.url", "https://one-list-api.herokuapp.com")
	v.SetDefault("task_store.auth_mode", AuthModeQuery)
	v.SetDefault("task_store.timeout", "15s")
}

func validate(cfg *Config) error {
	switch cfg.TaskStore.AuthMode {
	case AuthModeQuery, AuthModeBearer:
	default:
		return fmt.Errorf("task_store.auth_mode must be %q or %q, got %q", AuthModeQuery, AuthModeBearer, cfg.TaskStore.AuthMode)
	}
	if cfg.TaskStore.URL == "" {
		return fmt.Errorf("task_store.url is required")
	}
	if cfg.TaskStore.Timeout <= 0 {
		return fmt.Errorf("task_store.timeout must be positive")
	}
	if cfg.RateLimit.PerMin < 0 {
		return fmt.Errorf("rate_limit.per_min must not be negative")
	}
	return nil
}

// splitList splits a comma separated value; viper does not parse arrays
// from env vars.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
