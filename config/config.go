// Package config provides configuration loading and access for the display.
package config

import (
	_ "embed"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all display configuration parameters.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	Mapper    MapperConfig    `yaml:"mapper"`
	Particles ParticlesConfig `yaml:"particles"`
	Camera    CameraConfig    `yaml:"camera"`
	Scene     SceneConfig     `yaml:"scene"`
	Backdrop  BackdropConfig  `yaml:"backdrop"`
	Carousel  CarouselConfig  `yaml:"carousel"`
	Images    ImagesConfig    `yaml:"images"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// ScreenConfig holds window settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// CanvasConfig is the fixed offscreen sampling canvas.
type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// MapperConfig holds sample-to-target mapping parameters.
type MapperConfig struct {
	Scale      float64 `yaml:"scale"`
	JitterSpan float64 `yaml:"jitter_span"` // uniform jitter width per axis
	JitterBias float64 `yaml:"jitter_bias"` // constant subtracted along with the jitter
	DepthMin   float64 `yaml:"depth_min"`
	DepthSpan  float64 `yaml:"depth_span"`
}

// ParticlesConfig holds per-particle look and motion.
type ParticlesConfig struct {
	Radius         float64  `yaml:"radius"`
	WidthSegments  int      `yaml:"width_segments"`
	HeightSegments int      `yaml:"height_segments"`
	ShapeJitter    float64  `yaml:"shape_jitter"` // vertex jitter half-width
	MaxSpin        float64  `yaml:"max_spin"`     // radians per tick
	Ease           float64  `yaml:"ease"`         // fraction of remaining distance per tick
	Palette        []string `yaml:"palette"`
}

// CameraConfig holds projection and follow parameters.
type CameraConfig struct {
	FOV           float64 `yaml:"fov"`
	Near          float64 `yaml:"near"`
	Far           float64 `yaml:"far"`
	Distance      float64 `yaml:"distance"`
	Ease          float64 `yaml:"ease"`
	PointerFactor float64 `yaml:"pointer_factor"`
}

// LightConfig is one directional light.
type LightConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Z         float64 `yaml:"z"`
	Intensity float64 `yaml:"intensity"`
}

// SceneConfig holds background and lighting.
type SceneConfig struct {
	Background string        `yaml:"background"`
	Shaded     bool          `yaml:"shaded"`
	Lights     []LightConfig `yaml:"lights"`
}

// BackdropConfig holds the decorative background spheres.
type BackdropConfig struct {
	Count     int     `yaml:"count"`
	Radius    float64 `yaml:"radius"`
	Segments  int     `yaml:"segments"`
	Color     string  `yaml:"color"`
	DepthMin  float64 `yaml:"depth_min"`
	DepthSpan float64 `yaml:"depth_span"`
}

// CarouselConfig holds slide selection behaviour.
type CarouselConfig struct {
	SettleDelay   time.Duration `yaml:"settle_delay"`
	WrapAround    bool          `yaml:"wrap_around"`
	CancelPending bool          `yaml:"cancel_pending"` // newer selection cancels the pending reconcile
	Autoplay      time.Duration `yaml:"autoplay"`       // 0 = manual only
}

// ImagesConfig holds the image source location.
type ImagesConfig struct {
	Dir   string `yaml:"dir"` // empty = built-in procedural images
	Watch bool   `yaml:"watch"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	PerfWindow  int `yaml:"perf_window"`
	LogInterval int `yaml:"log_interval"` // ticks between perf log lines (0 = off)
}

// DerivedConfig holds computed values derived from the loaded config.
type DerivedConfig struct {
	Palette       []color.RGBA
	Background    color.RGBA
	BackdropColor color.RGBA
	CanvasOffsetX float64 // Canvas.Width / 2
	CanvasOffsetY float64 // Canvas.Height / 4
	ScreenW32     float32
	ScreenH32     float32
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.computeDerived(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if len(c.Particles.Palette) == 0 {
		return fmt.Errorf("particles.palette must not be empty")
	}

	c.Derived.Palette = make([]color.RGBA, len(c.Particles.Palette))
	for i, hex := range c.Particles.Palette {
		col, err := ParseHexColor(hex)
		if err != nil {
			return fmt.Errorf("particles.palette[%d]: %w", i, err)
		}
		c.Derived.Palette[i] = col
	}

	var err error
	if c.Derived.Background, err = ParseHexColor(c.Scene.Background); err != nil {
		return fmt.Errorf("scene.background: %w", err)
	}
	if c.Derived.BackdropColor, err = ParseHexColor(c.Backdrop.Color); err != nil {
		return fmt.Errorf("backdrop.color: %w", err)
	}

	c.Derived.CanvasOffsetX = float64(c.Canvas.Width) / 2
	c.Derived.CanvasOffsetY = float64(c.Canvas.Height) / 4
	c.Derived.ScreenW32 = float32(c.Screen.Width)
	c.Derived.ScreenH32 = float32(c.Screen.Height)
	return nil
}

// ParseHexColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
