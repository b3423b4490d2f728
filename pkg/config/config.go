// Package config loads runtime settings from layered sources: embedded
// defaults, an optional outstanding.toml file, then OUTSTANDING_*
// environment variables, each layer overriding the previous one.
package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"

	"github.com/arthur-debert/outstanding/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// envPrefix is the environment variable namespace,
// e.g. OUTSTANDING_OUTPUT_WIDTH=120.
const envPrefix = "OUTSTANDING_"

// Settings is the resolved configuration.
type Settings struct {
	Output  OutputSettings  `koanf:"output"`
	Logging LoggingSettings `koanf:"logging"`
}

// OutputSettings controls rendering.
type OutputSettings struct {
	// Width is the total render width; 0 means detect the terminal.
	Width int `koanf:"width"`
	// Border names a border style: none, ascii, light, heavy, double
	// or rounded.
	Border string `koanf:"border"`
	// Color is auto, always or never.
	Color string `koanf:"color"`
	// Stylesheet is a path to a custom styles YAML file.
	Stylesheet string `koanf:"stylesheet"`
}

// LoggingSettings controls diagnostics.
type LoggingSettings struct {
	Verbosity int `koanf:"verbosity"`
}

// configFilenames are probed in order inside the search directory; the
// first one found wins.
var configFilenames = []string{
	".outstanding.toml", "outstanding.toml",
	".outstanding.yaml", "outstanding.yaml",
}

func parserFor(path string) koanf.Parser {
	if strings.HasSuffix(path, ".yaml") {
		return kyaml.Parser()
	}
	return toml.Parser()
}

// Load resolves settings with dir as the config file search directory.
// An empty dir searches the working directory.
func Load(dir string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(rawbytes.Provider(defaultConfig), toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load default configuration")
	}

	if dir == "" {
		dir = "."
	}
	for _, name := range configFilenames {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), parserFor(path)); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to load configuration from %s", path)
		}
		break
	}

	if err := k.Load(env.Provider(envPrefix, ".", envToKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment configuration")
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode configuration")
	}
	if err := settings.validate(); err != nil {
		return nil, err
	}
	return &settings, nil
}

// envToKey maps OUTSTANDING_OUTPUT_WIDTH to output.width.
func envToKey(s string) string {
	s = strings.TrimPrefix(s, envPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "_", ".")
}

func (s *Settings) validate() error {
	switch s.Output.Color {
	case "auto", "always", "never":
	default:
		return errors.Newf(errors.ErrConfigParse,
			"output.color must be auto, always or never, got %q", s.Output.Color)
	}
	if s.Output.Width < 0 {
		return errors.New(errors.ErrConfigParse, "output.width must not be negative")
	}
	return nil
}
