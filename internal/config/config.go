package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
	"golang.org/x/text/encoding"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/restlog/internal/charset"
	"github.com/oshokin/restlog/internal/constants"
	"github.com/oshokin/restlog/internal/logger"
	http_transport "github.com/oshokin/restlog/internal/transport/http"
	"github.com/oshokin/restlog/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// LogLevel specifies the logging verbosity level. Request/response lines need "debug".
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	// DefaultCharset is the charset used to decode bodies that declare none.
	DefaultCharset string `mapstructure:"default_charset" yaml:"default_charset"`
	// MaxBodyLogLength caps the logged body text (e.g., "1MB", "64KB", "0" for no limit).
	MaxBodyLogLength string `mapstructure:"max_body_log_length" yaml:"max_body_log_length"`
	// DecodeContentEncoding indicates whether compressed bodies are logged decompressed.
	DecodeContentEncoding bool `mapstructure:"decode_content_encoding" yaml:"decode_content_encoding"`
	// UserAgent is sent with requests that do not set one.
	UserAgent string `mapstructure:"user_agent" yaml:"user_agent"`
	// RequestTimeout limits a whole request (e.g., "30s").
	RequestTimeout string `mapstructure:"request_timeout" yaml:"request_timeout"`
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level `yaml:"-"`
	// ParsedDefaultCharset is the resolved default charset.
	ParsedDefaultCharset encoding.Encoding `yaml:"-"`
	// ParsedMaxBodyLogLength is the parsed body length cap in bytes.
	ParsedMaxBodyLogLength uint64 `yaml:"-"`
	// ParsedRequestTimeout is the parsed request timeout.
	ParsedRequestTimeout time.Duration `yaml:"-"`
}

const (
	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".restlog.yaml"

	// DefaultLogLevel is the log level used when none is configured.
	DefaultLogLevel = "debug"

	// DefaultMaxBodyLogLength is the default maximum size of a logged body.
	DefaultMaxBodyLogLength = "1MB"

	// envPrefix prefixes environment variables overriding configuration keys.
	envPrefix = "RESTLOG"
)

// Static error definitions for better error handling.
var (
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
	// ErrInvalidRequestTimeout indicates that the request timeout is invalid.
	ErrInvalidRequestTimeout = errors.New("request_timeout must be positive")
	// ErrConfigFileExists indicates that WriteDefaultConfig would overwrite a file.
	ErrConfigFileExists = errors.New("config file already exists")
)

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	return &Config{
		LogLevel:              DefaultLogLevel,
		DefaultCharset:        charset.DefaultName,
		MaxBodyLogLength:      DefaultMaxBodyLogLength,
		DecodeContentEncoding: false,
		UserAgent:             utils.DefaultUserAgent(),
		RequestTimeout:        http_transport.DefaultTimeout.String(),
	}
}

// LoadConfig loads configuration settings from a YAML file and RESTLOG_* environment variables.
// A missing file is only an error when its name was given explicitly.
func LoadConfig(configFilename string) (*Config, error) {
	isExplicit := configFilename != ""
	if !isExplicit {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	v.SetConfigFile(configFilename)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := Default()
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("default_charset", defaults.DefaultCharset)
	v.SetDefault("max_body_log_length", defaults.MaxBodyLogLength)
	v.SetDefault("decode_content_encoding", defaults.DecodeContentEncoding)
	v.SetDefault("user_agent", defaults.UserAgent)
	v.SetDefault("request_timeout", defaults.RequestTimeout)

	if err := v.ReadInConfig(); err != nil {
		if isExplicit || !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config from file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	cfg.ParsedDefaultCharset = charset.Default
	if defaultCharset := strings.TrimSpace(cfg.DefaultCharset); defaultCharset != "" {
		enc, err := charset.Lookup(defaultCharset)
		if err != nil {
			return fmt.Errorf("invalid default charset: %w", err)
		}

		cfg.ParsedDefaultCharset = enc
	}

	cfg.ParsedMaxBodyLogLength = 0
	if maxBodyLogLength := strings.TrimSpace(cfg.MaxBodyLogLength); maxBodyLogLength != "" && maxBodyLogLength != "0" {
		parsed, err := humanize.ParseBytes(maxBodyLogLength)
		if err != nil {
			return fmt.Errorf("failed to parse max body log length: %w", err)
		}

		cfg.ParsedMaxBodyLogLength = parsed
	}

	cfg.ParsedRequestTimeout = http_transport.DefaultTimeout
	if requestTimeout := strings.TrimSpace(cfg.RequestTimeout); requestTimeout != "" {
		parsed, err := time.ParseDuration(requestTimeout)
		if err != nil {
			return fmt.Errorf("failed to parse request timeout: %w", err)
		}

		if parsed <= 0 {
			return ErrInvalidRequestTimeout
		}

		cfg.ParsedRequestTimeout = parsed
	}

	if strings.TrimSpace(cfg.UserAgent) == "" {
		cfg.UserAgent = utils.DefaultUserAgent()
	}

	return nil
}

// WriteDefaultConfig writes the default configuration to path as YAML.
// An existing file is never overwritten.
func WriteDefaultConfig(path string) error {
	if path == "" {
		path = DefaultConfigFilename
	}

	content, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, constants.DefaultFilePermissions)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return fmt.Errorf("%w: %s", ErrConfigFileExists, path)
		}

		return fmt.Errorf("failed to create config file: %w", err)
	}

	defer file.Close() //nolint:errcheck // The write error below is the one that matters.

	if _, err = file.Write(content); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
