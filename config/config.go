package config

import (
	"github.com/spf13/viper"

	"github.com/goto/chrono/internal/errors"
)

const (
	EntityConfig = "config"

	// EmptyPath is the sentinel for "no explicit config file given".
	EmptyPath = ""

	// DefaultConfigName is looked up in the working directory when no
	// explicit path is given.
	DefaultConfigName = ".chrono"
)

type LogLevel string

const (
	LogLevelDebug   LogLevel = "DEBUG"
	LogLevelInfo    LogLevel = "INFO"
	LogLevelWarning LogLevel = "WARNING"
	LogLevelError   LogLevel = "ERROR"
)

func (l LogLevel) String() string {
	return string(l)
}

type LogConfig struct {
	Level LogLevel `mapstructure:"level"`
}

type ActivityConfig struct {
	Path string `mapstructure:"path"` // activity document location
}

// ClientConfig covers client level configuration read from an optional
// .chrono.yaml file.
type ClientConfig struct {
	Log      LogConfig      `mapstructure:"log"`
	Timezone string         `mapstructure:"timezone"` // default display zone, IANA name
	Activity ActivityConfig `mapstructure:"activity"`
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		Log: LogConfig{Level: LogLevelInfo},
	}
}

// LoadClientConfig reads the client configuration. With EmptyPath the
// default file is looked up in the working directory and its absence is not
// an error; an explicit path must exist.
func LoadClientConfig(filePath string) (*ClientConfig, error) {
	cfg := defaultClientConfig()

	v := viper.New()
	v.SetConfigType("yaml")

	if filePath == EmptyPath {
		v.SetConfigName(DefaultConfigName)
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if errors.As(err, &notFound) {
				return cfg, nil
			}
			return nil, errors.InternalError(EntityConfig, "unable to read client config", err)
		}
	} else {
		v.SetConfigFile(filePath)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.InternalError(EntityConfig, "unable to read client config "+filePath, err)
		}
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.InternalError(EntityConfig, "unable to unmarshal client config", err)
	}
	return cfg, nil
}
