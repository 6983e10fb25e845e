package config

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"sigs.k8s.io/yaml"
)

const (
	DefaultMessageBoxX      = "width / 10"
	DefaultMessageBoxY      = "height / 10"
	DefaultMessageBoxWidth  = "width * 8 / 10"
	DefaultMessageBoxHeight = "height * 8 / 10"
	DefaultPageIndicator    = "Page: {{ add1 .Page }}/{{ .Total }}"
	DefaultCatalogFile      = "items.yaml"
)

// MessageBox holds the placement expressions of the message viewer. Each one
// is evaluated against the current screen size in cells.
type MessageBox struct {
	X      string `json:"x"`
	Y      string `json:"y"`
	Width  string `json:"width"`
	Height string `json:"height"`
}

// Config is the startup configuration shared by the application components.
type Config struct {
	MessageBox    MessageBox `json:"messageBox"`
	PageIndicator string     `json:"pageIndicator"`
	Sound         bool       `json:"sound"`
	Catalog       string     `json:"catalog"`
	LogFile       string     `json:"logFile"`
	LogLevel      int        `json:"logLevel"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		MessageBox: MessageBox{
			X:      DefaultMessageBoxX,
			Y:      DefaultMessageBoxY,
			Width:  DefaultMessageBoxWidth,
			Height: DefaultMessageBoxHeight,
		},
		PageIndicator: DefaultPageIndicator,
		Sound:         true,
		Catalog:       DefaultCatalogFile,
		LogFile:       filepath.Join(os.TempDir(), "msgitem.log"),
	}
}

// Load reads a YAML configuration file on top of the defaults. A relative
// catalog path is resolved against the directory of the configuration file.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := Parse(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if cfg.Catalog != "" && !filepath.IsAbs(cfg.Catalog) {
		cfg.Catalog = filepath.Join(filepath.Dir(path), cfg.Catalog)
	}
	return cfg, nil
}

// Parse decodes YAML into cfg, leaving fields absent from data untouched and
// restoring defaults for expressions set to the empty string.
func Parse(data []byte, cfg *Config) error {
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return err
	}
	fillDefaults(cfg)
	return nil
}

func fillDefaults(cfg *Config) {
	def := Default()
	if cfg.MessageBox.X == "" {
		cfg.MessageBox.X = def.MessageBox.X
	}
	if cfg.MessageBox.Y == "" {
		cfg.MessageBox.Y = def.MessageBox.Y
	}
	if cfg.MessageBox.Width == "" {
		cfg.MessageBox.Width = def.MessageBox.Width
	}
	if cfg.MessageBox.Height == "" {
		cfg.MessageBox.Height = def.MessageBox.Height
	}
	if cfg.PageIndicator == "" {
		cfg.PageIndicator = def.PageIndicator
	}
}
