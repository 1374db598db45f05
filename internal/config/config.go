package config

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
)

// DefaultUserAgent is the default User-Agent string sent with all catalog requests.
const DefaultUserAgent = "ShowFinder/2 (+https://github.com/Belphemur/ShowFinder)"

// DefaultCatalogBaseURL is the catalog service queried when catalog_base_url is not set.
const DefaultCatalogBaseURL = "https://api.tvmaze.com"

// DefaultFallbackImageURL is used for shows the catalog returns without an image.
const DefaultFallbackImageURL = "https://tinyurl.com/tv-missing"

type Config struct {
	CatalogBaseURL        string `mapstructure:"catalog_base_url"`
	FallbackImageURL      string `mapstructure:"fallback_image_url"`
	ProxyConnectionString string `mapstructure:"proxy_connection_string"`
	ClientTimeout         string `mapstructure:"client_timeout"` // Go duration string like "30s", "1m", etc.
	UserAgent             string `mapstructure:"user_agent"`
	Server                struct {
		Port    int    `mapstructure:"port"`
		Address string `mapstructure:"address"`
	} `mapstructure:"server"`
	Web struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"web"`
	Metrics struct {
		Enabled bool `mapstructure:"enabled"`
		Port    int  `mapstructure:"port"`
	} `mapstructure:"metrics"`
	LogLevel string `mapstructure:"log_level"`
	Log      struct {
		File       string `mapstructure:"file"`
		MaxSize    int    `mapstructure:"max_size"` // megabytes
		MaxBackups int    `mapstructure:"max_backups"`
		MaxAge     int    `mapstructure:"max_age"` // days
		Compress   bool   `mapstructure:"compress"`
	} `mapstructure:"log"`
	Sentry struct {
		DSN         string `mapstructure:"dsn"`
		Environment string `mapstructure:"environment"`
	} `mapstructure:"sentry"`
}

var (
	globalConfig *Config
	logger       zerolog.Logger
)

func init() {
	// Console logger until the configuration says otherwise
	logger = newLogger(os.Stdout)

	config, err := LoadConfig()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	if config.Log.File != "" {
		logger = newLogger(io.MultiWriter(
			zerolog.ConsoleWriter{Out: os.Stdout},
			&lumberjack.Logger{
				Filename:   config.Log.File,
				MaxSize:    config.Log.MaxSize,
				MaxBackups: config.Log.MaxBackups,
				MaxAge:     config.Log.MaxAge,
				Compress:   config.Log.Compress,
			},
		))
	}

	level := ParseLevel(config.LogLevel)
	zerolog.SetGlobalLevel(level)
	logger = logger.Level(level)

	logger.Info().Str("level", level.String()).Msg("Logging configured")
	globalConfig = config
	logger.Info().Msg("Configuration loaded successfully")
}

func newLogger(out io.Writer) zerolog.Logger {
	if _, ok := out.(*os.File); ok {
		out = zerolog.ConsoleWriter{Out: out, NoColor: false}
	}
	return zerolog.New(out).With().Timestamp().Logger()
}

// ParseLevel converts a configured level name into a zerolog level, defaulting to info.
func ParseLevel(name string) zerolog.Level {
	if name == "" {
		return zerolog.InfoLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		logger.Warn().Str("invalid_level", name).Msg("Invalid log level, using default 'info'")
		return zerolog.InfoLevel
	}
	return level
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variable support
	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	_ = v.BindEnv("log_level", "LOG_LEVEL")

	v.SetDefault("catalog_base_url", DefaultCatalogBaseURL)
	v.SetDefault("fallback_image_url", DefaultFallbackImageURL)
	v.SetDefault("client_timeout", "30s")
	v.SetDefault("server.address", "localhost")
	v.SetDefault("server.port", 8080)
	v.SetDefault("web.enabled", true)
	v.SetDefault("web.port", 8081)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9090)
	v.SetDefault("proxy_connection_string", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("log_level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.compress", false)
	v.SetDefault("log.max_size", 50)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 28)
	v.SetDefault("sentry.dsn", "")
	v.SetDefault("sentry.environment", "")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}
	if config.UserAgent == "" {
		config.UserAgent = DefaultUserAgent
	}
	if config.FallbackImageURL == "" {
		config.FallbackImageURL = DefaultFallbackImageURL
	}

	return &config, nil
}

func GetConfig() *Config {
	return globalConfig
}

func GetLogger() zerolog.Logger {
	return logger
}
