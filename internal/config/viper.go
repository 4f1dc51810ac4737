package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config is the application configuration. Values come from (highest
// precedence first) environment variables with the PFGEN prefix, a
// config.yaml in $HOME/.pfgen, .pfgen or the working directory, then the
// defaults below.
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Output struct {
		Format    string `mapstructure:"format" yaml:"format"`
		Directory string `mapstructure:"directory" yaml:"directory"`
	} `mapstructure:"output" yaml:"output"`

	Address struct {
		DefaultCountry string `mapstructure:"default_country" yaml:"default_country"`
	} `mapstructure:"address" yaml:"address"`

	Tables struct {
		UseAddressForLocName bool `mapstructure:"use_address_for_locname" yaml:"use_address_for_locname"`
	} `mapstructure:"tables" yaml:"tables"`
}

// InitializeConfig loads the configuration with hierarchical precedence.
// A missing config file is not an error; defaults and environment
// variables still apply.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.pfgen")
	v.AddConfigPath(".pfgen")
	v.AddConfigPath(".")

	v.SetEnvPrefix("PFGEN")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("csv.delimiter", ",")
	v.SetDefault("output.format", "xlsx")
	v.SetDefault("output.directory", ".")
	v.SetDefault("address.default_country", "FR")
	v.SetDefault("tables.use_address_for_locname", false)
}

// Delimiter returns the configured CSV delimiter as a rune, defaulting to
// a comma when the value is empty.
func (c *Config) Delimiter() rune {
	if c.CSV.Delimiter == "" {
		return ','
	}
	return []rune(c.CSV.Delimiter)[0]
}
