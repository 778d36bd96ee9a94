package config

import (
	"errors"

	"github.com/leighmacdonald/srinfo/internal/mihomo"
	"github.com/spf13/viper"
)

// Loader handles setting up viper and loading configuration from files and the environment.
type Loader struct {
	*viper.Viper
}

// NewLoader creates a loader. When configFile is empty the srinfo.yaml config is searched for in
// $XDG_CONFIG_HOME/srinfo and the working directory, a missing file is not an error.
func NewLoader(configFile string) *Loader {
	loader := Loader{Viper: viper.New()}
	loader.SetDefault("api_base_url", mihomo.DefaultBaseURL)
	loader.SetDefault("language", DefaultLanguage)
	loader.SetDefault("http_timeout", DefaultHTTPTimeout)
	loader.SetDefault("user_agent", mihomo.DefaultUserAgent)
	loader.SetDefault("log_level", "info")
	loader.SetDefault("log_file", "")
	loader.SetDefault("concurrency", DefaultConcurrency)
	loader.SetEnvPrefix(EnvPrefix)
	loader.AutomaticEnv()

	if configFile != "" {
		loader.SetConfigFile(configFile)
	} else {
		loader.SetConfigName(DefaultConfigName)
		loader.SetConfigType("yaml")
		loader.AddConfigPath(Path(""))
		loader.AddConfigPath(".")
	}

	return &loader
}

func (cl *Loader) Path() string {
	return cl.ConfigFileUsed()
}

// Read loads, decodes and validates the configuration.
func (cl *Loader) Read() (Config, error) {
	if err := cl.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return Config{}, errors.Join(err, errConfigRead)
		}
	}

	var config Config
	if err := cl.Unmarshal(&config); err != nil {
		return Config{}, errors.Join(err, errConfigRead)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}
