package blitz

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config configures the window, the game loop and the SpriteBatch that Run
// creates.
type Config struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
	// TPS is the fixed update rate. Zero keeps ebiten's default of 60.
	TPS int `yaml:"tps"`

	BatchCapacity int        `yaml:"batch_capacity"`
	StreamMode    StreamMode `yaml:"stream_mode"`
	ClearColor    Color      `yaml:"clear_color"`

	// ShowDiagnostics overlays the draw-call counter every frame.
	ShowDiagnostics bool `yaml:"show_diagnostics"`
	// Debug logs batch stats for every frame at debug level.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used for fields a file omits.
func DefaultConfig() Config {
	return Config{
		Title:         "blitz",
		Width:         800,
		Height:        600,
		VSync:         true,
		BatchCapacity: DefaultBatchCapacity,
		StreamMode:    StreamTransient,
		ClearColor:    Color{0, 0, 0, 1},
	}
}

// ParseConfig decodes YAML over DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("blitz: parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and decodes a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("blitz: read config: %w", err)
	}
	return ParseConfig(data)
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("blitz: config: invalid size %dx%d", c.Width, c.Height)
	}
	if c.BatchCapacity < 0 {
		return fmt.Errorf("blitz: config: negative batch_capacity %d", c.BatchCapacity)
	}
	if c.StreamMode == StreamStatic {
		return fmt.Errorf("blitz: config: stream_mode %q cannot drive a sprite batch", c.StreamMode)
	}
	if c.TPS < 0 {
		return fmt.Errorf("blitz: config: negative tps %d", c.TPS)
	}
	return nil
}

// UnmarshalText parses a stream mode name.
func (m *StreamMode) UnmarshalText(text []byte) error {
	switch string(text) {
	case "static":
		*m = StreamStatic
	case "dynamic":
		*m = StreamDynamic
	case "transient", "stream":
		*m = StreamTransient
	default:
		return fmt.Errorf("blitz: unknown stream mode %q", text)
	}
	return nil
}

// MarshalText returns the stream mode name.
func (m StreamMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText parses a sort mode name.
func (m *SortMode) UnmarshalText(text []byte) error {
	for mode := SortDeferred; mode <= SortBackToFront; mode++ {
		if mode.String() == string(text) {
			*m = mode
			return nil
		}
	}
	return fmt.Errorf("blitz: unknown sort mode %q", text)
}

// MarshalText returns the sort mode name.
func (m SortMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}
