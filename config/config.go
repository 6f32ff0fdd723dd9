package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Parser         ParserConfig
	RateLimit      RateLimitConfig
	DefaultUser    DefaultUserConfig
	GoogleCalendar GoogleCalendarConfig
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

// ParserConfig configures natural language extraction.
type ParserConfig struct {
	Timezone string // IANA name, e.g. "America/Sao_Paulo"
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// DefaultUserConfig identifies the task owner assumed when requests carry
// no X-User-Email header. Useful for single-user deployments.
type DefaultUserConfig struct {
	Email string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Parser.Timezone = viper.GetString("parser.timezone")
	if tz := viper.GetString("parser_timezone"); tz != "" {
		cfg.Parser.Timezone = tz
	}

	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	cfg.DefaultUser.Email = viper.GetString("default_user.email")
	if email := viper.GetString("default_user_email"); email != "" {
		cfg.DefaultUser.Email = email
	}

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("parser.timezone", "America/Sao_Paulo")
	viper.SetDefault("rate_limit.requests_per_min", 120)
	viper.SetDefault("default_user.email", "")
}
