package config

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/go-playground/validator/v10"
	"github.com/leighmacdonald/srinfo/internal/mihomo"
)

var (
	errConfigRead    = errors.New("failed to read config file")
	errConfigInvalid = errors.New("invalid config")
	errLoggerInit    = errors.New("failed to initialize logger")
)

const (
	ConfigDirName      = "srinfo"
	DefaultConfigName  = "srinfo"
	EnvPrefix          = "srinfo"
	DefaultHTTPTimeout = 15 * time.Second
	DefaultLanguage    = "en"
	DefaultConcurrency = 4
)

type Config struct {
	APIBaseURL string `mapstructure:"api_base_url" validate:"required,url"`
	// Language is an api code (en, jp, cht, ...) or a BCP 47 tag matched against the
	// supported languages.
	Language string `mapstructure:"language" validate:"required"`
	// HTTPTimeout bounds a whole request. Zero leaves the transport defaults in place.
	HTTPTimeout time.Duration `mapstructure:"http_timeout" validate:"gte=0"`
	UserAgent   string        `mapstructure:"user_agent"`
	LogLevel    string        `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	// LogFile is relative to $XDG_STATE_HOME/srinfo. Empty logs to stderr.
	LogFile string `mapstructure:"log_file"`
	// Concurrency is the number of profiles fetched at once by the cli.
	Concurrency int `mapstructure:"concurrency" validate:"min=1,max=16"`
}

// Lang resolves the configured language.
func (c Config) Lang() (mihomo.Language, error) {
	return mihomo.ParseLanguage(c.Language)
}

// SlogLevel maps LogLevel onto slog, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}

	return level
}

var validate = validator.New(validator.WithRequiredStructEnabled()) //nolint:gochecknoglobals

// Validate checks field constraints and that the language is one the api supports.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return errors.Join(err, errConfigInvalid)
	}

	if _, err := c.Lang(); err != nil {
		return errors.Join(err, errConfigInvalid)
	}

	return nil
}

// Path generates a path pointing to the filename under this apps defined $XDG_CONFIG_HOME.
func Path(name string) string {
	fullPath, errFullPath := xdg.ConfigFile(path.Join(ConfigDirName, name))
	if errFullPath != nil {
		panic(errFullPath)
	}

	return fullPath
}

// LoggerInit sets up the slog default handler writing to writer.
func LoggerInit(writer io.Writer, level slog.Level) {
	logger := slog.New(slog.NewTextHandler(writer, &slog.HandlerOptions{
		AddSource: false,
		Level:     level,
	}))

	slog.SetDefault(logger)
}

// LoggerInitFile is LoggerInit for a log file under $XDG_STATE_HOME/srinfo. The caller closes
// the returned file.
func LoggerInitFile(logPath string, level slog.Level) (io.Closer, error) {
	fullPath, errPath := xdg.StateFile(path.Join(ConfigDirName, logPath))
	if errPath != nil {
		return nil, errors.Join(errPath, errLoggerInit)
	}

	logFile, errLogFile := os.OpenFile(fullPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if errLogFile != nil {
		return nil, errors.Join(errLogFile, errLoggerInit)
	}

	LoggerInit(logFile, level)

	return logFile, nil
}
