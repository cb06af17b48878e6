package app

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/ui/text"
	"github.com/pelletier/go-toml/v2"
)

// ErrInvalidConfig is wrapped by configuration errors that are not TOML
// syntax errors.
var ErrInvalidConfig = errors.New("app: invalid config")

// Config is the loop configuration, usually read from a TOML file:
//
//	driver = "headless"
//	log_level = "debug"
//	queue_capacity = 128
//
//	[control_font]
//	family = "Go"
//	size = 11.0
//	weight = 400
//	italic = "normal"
//	stretch = "normal"
type Config struct {
	// Driver names the registered Driver to use.
	Driver string `toml:"driver"`
	// LogLevel, when set, installs a text logger on stderr at that level:
	// debug, info, warn or error.
	LogLevel string `toml:"log_level"`
	// QueueCapacity preallocates room in the QueueMain queue.
	QueueCapacity int `toml:"queue_capacity"`
	// ControlFont is the font controls use by default.
	ControlFont FontConfig `toml:"control_font"`
}

// FontConfig describes a font in configuration files.
type FontConfig struct {
	Family  string  `toml:"family"`
	Size    float64 `toml:"size"`
	Weight  int     `toml:"weight"`
	Italic  string  `toml:"italic"`
	Stretch string  `toml:"stretch"`
}

// DefaultConfig returns the configuration used when none is given.
func DefaultConfig() Config {
	return Config{
		Driver:        HeadlessDriver,
		QueueCapacity: 64,
		ControlFont: FontConfig{
			Family:  text.FamilyGo,
			Size:    12,
			Weight:  int(text.WeightNormal),
			Italic:  "normal",
			Stretch: "normal",
		},
	}
}

// ParseConfig decodes TOML over DefaultConfig. Unknown keys are errors.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("app: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// LoadConfig reads and parses a TOML configuration file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("app: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks field values that TOML decoding cannot.
func (c Config) Validate() error {
	if c.Driver == "" {
		return fmt.Errorf("%w: empty driver", ErrInvalidConfig)
	}
	if c.QueueCapacity < 0 {
		return fmt.Errorf("%w: negative queue_capacity %d", ErrInvalidConfig, c.QueueCapacity)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if _, err := c.ControlFont.Descriptor(); err != nil {
		return err
	}
	return nil
}

func (c Config) level() (slog.Level, error) {
	var l slog.Level
	if c.LogLevel == "" {
		return l, nil
	}
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Logger returns the logger LogLevel asks for, or nil when LogLevel is
// empty.
func (c Config) Logger() (*slog.Logger, error) {
	if c.LogLevel == "" {
		return nil, nil
	}
	l, err := c.level()
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})), nil
}

var italics = map[string]text.TextItalic{
	"normal":  text.ItalicNormal,
	"oblique": text.ItalicOblique,
	"italic":  text.ItalicItalic,
}

var stretches = map[string]text.TextStretch{
	"ultra-condensed": text.StretchUltraCondensed,
	"extra-condensed": text.StretchExtraCondensed,
	"condensed":       text.StretchCondensed,
	"semi-condensed":  text.StretchSemiCondensed,
	"normal":          text.StretchNormal,
	"semi-expanded":   text.StretchSemiExpanded,
	"expanded":        text.StretchExpanded,
	"extra-expanded":  text.StretchExtraExpanded,
	"ultra-expanded":  text.StretchUltraExpanded,
}

// Descriptor converts f to a font descriptor. Empty style names mean
// normal.
func (f FontConfig) Descriptor() (text.FontDescriptor, error) {
	d := text.FontDescriptor{Family: f.Family, Size: f.Size, Weight: text.TextWeight(f.Weight)}
	if d.Family == "" {
		return d, fmt.Errorf("%w: control_font.family is empty", ErrInvalidConfig)
	}
	if !(d.Size > 0) {
		return d, fmt.Errorf("%w: control_font.size %v is not positive", ErrInvalidConfig, f.Size)
	}
	if d.Weight < text.WeightMinimum || d.Weight > text.WeightMaximum {
		return d, fmt.Errorf("%w: control_font.weight %d outside [0, 1000]", ErrInvalidConfig, f.Weight)
	}
	var ok bool
	if d.Italic, ok = italics[orNormal(f.Italic)]; !ok {
		return d, fmt.Errorf("%w: control_font.italic %q", ErrInvalidConfig, f.Italic)
	}
	if d.Stretch, ok = stretches[orNormal(f.Stretch)]; !ok {
		return d, fmt.Errorf("%w: control_font.stretch %q", ErrInvalidConfig, f.Stretch)
	}
	return d, nil
}

func orNormal(s string) string {
	if s == "" {
		return "normal"
	}
	return strings.ToLower(s)
}
