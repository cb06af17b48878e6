package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/ui/text"
	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, HeadlessDriver, cfg.Driver)

	f, err := cfg.ControlFont.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, text.DefaultFont(), f)

	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.Nil(t, l)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
driver = "headless"
log_level = "debug"
queue_capacity = 8

[control_font]
family = "Go Mono"
size = 10.5
weight = 700
italic = "Oblique"
stretch = "condensed"
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 8, cfg.QueueCapacity)

	f, err := cfg.ControlFont.Descriptor()
	require.NoError(t, err)
	assert.Equal(t, text.FontDescriptor{
		Family:  text.FamilyGoMono,
		Size:    10.5,
		Weight:  text.WeightBold,
		Italic:  text.ItalicOblique,
		Stretch: text.StretchCondensed,
	}, f)

	l, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, l)
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("queue_capacity = 2\n"))
	require.NoError(t, err)
	assert.Equal(t, HeadlessDriver, cfg.Driver)
	assert.Equal(t, 12.0, cfg.ControlFont.Size)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		invalid bool
	}{
		{"unknown key", "colour = \"red\"\n", false},
		{"unknown font key", "[control_font]\nslant = 1\n", false},
		{"syntax", "driver = \n", false},
		{"empty driver", "driver = \"\"\n", true},
		{"negative queue", "queue_capacity = -1\n", true},
		{"bad level", "log_level = \"loud\"\n", true},
		{"zero size", "[control_font]\nsize = 0.0\n", true},
		{"heavy weight", "[control_font]\nweight = 1200\n", true},
		{"bad italic", "[control_font]\nitalic = \"slanted\"\n", true},
		{"bad stretch", "[control_font]\nstretch = \"wide\"\n", true},
		{"empty family", "[control_font]\nfamily = \"\"\n", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Equal(t, tt.invalid, errors.Is(err, ErrInvalidConfig), err.Error())
		})
	}
}

func TestParseConfigStrictError(t *testing.T) {
	_, err := ParseConfig([]byte("colour = \"red\"\n"))
	var strict *toml.StrictMissingError
	require.ErrorAs(t, err, &strict)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ui.toml")
	require.NoError(t, os.WriteFile(path, []byte("[control_font]\nsize = 14.0\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 14.0, cfg.ControlFont.Size)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(path, []byte("driver = \"\"\n"), 0o600))
	_, err = LoadConfig(path)
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ui.toml")
}
