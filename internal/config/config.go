package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/signadot/jsonml/format"
)

// Config holds defaults for the jml tool. Command line options override it.
type Config struct {
	InputFormat  string `mapstructure:"input_format"`
	OutputFormat string `mapstructure:"output_format"`
	// Color is one of auto, always, never.
	Color  string `mapstructure:"color"`
	Wire   bool   `mapstructure:"wire"`
	Indent int    `mapstructure:"indent"`
}

var ErrBadConfig = errors.New("bad config")

// Load reads configuration from file and env. Env var overrides use prefix
// JSONML_. A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("input_format", "json")
	v.SetDefault("output_format", "json")
	v.SetDefault("color", "auto")
	v.SetDefault("wire", false)
	v.SetDefault("indent", 2)

	v.SetConfigType("yaml")

	cfgPath := os.Getenv("JSONML_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "jsonml"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("JSONML")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	if _, _, err := c.Formats(); err != nil {
		return err
	}
	switch c.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("%w: color must be auto, always or never, got %q", ErrBadConfig, c.Color)
	}
	if c.Indent < 0 {
		return fmt.Errorf("%w: negative indent %d", ErrBadConfig, c.Indent)
	}
	return nil
}

func (c Config) Formats() (in, out format.Format, err error) {
	in, err = format.ParseFormat(c.InputFormat)
	if err != nil {
		return in, out, fmt.Errorf("%w: input_format: %w", ErrBadConfig, err)
	}
	out, err = format.ParseFormat(c.OutputFormat)
	if err != nil {
		return in, out, fmt.Errorf("%w: output_format: %w", ErrBadConfig, err)
	}
	return in, out, nil
}
