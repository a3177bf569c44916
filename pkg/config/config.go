// Package config loads the optional per-project .plugset.toml, which sets
// default install options and overrides the web-asset roots.
package config

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/plugset/pkg/errors"
	"github.com/arthur-debert/plugset/pkg/logging"
	"github.com/arthur-debert/plugset/pkg/types"
)

// ConfigFile is the per-project configuration file name.
const ConfigFile = ".plugset.toml"

// Config represents the per-project configuration.
type Config struct {
	Link           bool `toml:"link"`
	Force          bool `toml:"force"`
	UsePlatformWww bool `toml:"use_platform_www"`

	Dirs DirsConfig `toml:"dirs"`
}

// DirsConfig overrides the web-asset roots, relative to the project root.
type DirsConfig struct {
	Www         string `toml:"www"`
	PlatformWww string `toml:"platform_www"`
}

// Load reads projectDir/.plugset.toml. A missing file yields the zero
// config without error; a malformed one is a hard failure.
func Load(projectDir string) (Config, error) {
	path := filepath.Join(projectDir, ConfigFile)
	logger := logging.GetLogger("config").With().Str("configPath", path).Logger()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %q", path)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return Config{}, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %q", path)
	}

	logger.Debug().
		Bool("link", config.Link).
		Bool("use_platform_www", config.UsePlatformWww).
		Msg("project config loaded")

	return config, nil
}

// Options converts the config's defaults into install options.
func (c Config) Options() types.Options {
	return types.Options{
		Force:          c.Force,
		Link:           c.Link,
		UsePlatformWww: c.UsePlatformWww,
	}
}
