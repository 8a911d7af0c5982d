package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/shewell/maternity-api/internal/repository/postgres"
	"github.com/shewell/maternity-api/pkg/genai"
	"github.com/shewell/maternity-api/pkg/sms"
)

type ServerConfig struct {
	Port           int           `mapstructure:"port"`
	ReadTimeout    time.Duration `mapstructure:"read_timeout"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout"`
	MaxHeaderBytes int           `mapstructure:"max_header_bytes"`
}

type SessionConfig struct {
	Secret   string        `mapstructure:"secret"`
	Lifetime time.Duration `mapstructure:"lifetime"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
}

type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  postgres.Config `mapstructure:"database"`
	Session   SessionConfig   `mapstructure:"session"`
	Redis     RedisConfig     `mapstructure:"redis"`
	GenAI     genai.Config    `mapstructure:"genai"`
	Twilio    sms.Config      `mapstructure:"twilio"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Monitoring struct {
		PrometheusEnabled bool `mapstructure:"prometheus_enabled"`
	} `mapstructure:"monitoring"`
	Translation struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"translation"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvPrefix("SHEWELL")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// env-only configuration is fine
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", 15*time.Second)
	viper.SetDefault("server.write_timeout", 30*time.Second)
	viper.SetDefault("session.lifetime", 7*24*time.Hour)
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", 5432)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests_per_second", 20.0)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("cors.allowed_origins", []string{"http://localhost:3000"})
	viper.SetDefault("monitoring.prometheus_enabled", true)
	viper.SetDefault("translation.enabled", true)
}

// Validate enforces the secrets that must never fall back silently. Twilio
// credentials are deliberately optional: without them the dispatcher
// degrades to a no-op.
func (c *Config) Validate() error {
	if c.Session.Secret == "" {
		return errors.New("session.secret is required (SHEWELL_SESSION_SECRET)")
	}
	if c.GenAI.APIKey == "" {
		return errors.New("genai.api_key is required (SHEWELL_GENAI_API_KEY)")
	}
	return nil
}
