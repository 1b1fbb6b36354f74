package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/vstick/internal/joystick"
)

const (
	DefaultBackgroundSize = 120.0
	DefaultScale          = 2.0
	DefaultTheme          = "mono"
	DefaultDataDir        = ".vstick"
)

type Config struct {
	Joystick JoystickConfig `yaml:"joystick"`
	Display  DisplayConfig  `yaml:"display"`
	Session  SessionConfig  `yaml:"session"`
}

type JoystickConfig struct {
	BoundSize      float64 `yaml:"bound_size"`
	HandleSize     float64 `yaml:"handle_size"`
	MinAxis        float64 `yaml:"min_axis"`
	MaxAxis        float64 `yaml:"max_axis"`
	Step           float64 `yaml:"step"`
	StickOnXAxis   bool    `yaml:"stick_on_x_axis"`
	StickOnYAxis   bool    `yaml:"stick_on_y_axis"`
	ReturnToCenter bool    `yaml:"return_to_center"`
}

// DisplayConfig only affects presentation layers.
type DisplayConfig struct {
	BackgroundSize float64 `yaml:"background_size"`
	Scale          float64 `yaml:"scale"` // host units per braille dot
	Theme          string  `yaml:"theme"`
}

type SessionConfig struct {
	DataDir string `yaml:"data_dir"`
	Record  bool   `yaml:"record"`
}

func DefaultConfig() *Config {
	def := joystick.DefaultConfig()
	return &Config{
		Joystick: JoystickConfig{
			BoundSize:      def.BoundSize,
			HandleSize:     def.HandleSize,
			MinAxis:        def.MinAxis,
			MaxAxis:        def.MaxAxis,
			Step:           def.Step,
			StickOnXAxis:   def.StickOnXAxis,
			StickOnYAxis:   def.StickOnYAxis,
			ReturnToCenter: def.ReturnToCenter,
		},
		Display: DisplayConfig{
			BackgroundSize: DefaultBackgroundSize,
			Scale:          DefaultScale,
			Theme:          DefaultTheme,
		},
		Session: SessionConfig{
			DataDir: DefaultDataDir,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Resolve turns the joystick section into an engine configuration.
func (c *Config) Resolve(onChange joystick.ChangeFunc) joystick.Config {
	j := c.Joystick
	return joystick.Resolve(joystick.Overrides{
		BoundSize:      joystick.Float(j.BoundSize),
		HandleSize:     joystick.Float(j.HandleSize),
		MinAxis:        joystick.Float(j.MinAxis),
		MaxAxis:        joystick.Float(j.MaxAxis),
		Step:           joystick.Float(j.Step),
		StickOnXAxis:   joystick.Bool(j.StickOnXAxis),
		StickOnYAxis:   joystick.Bool(j.StickOnYAxis),
		ReturnToCenter: joystick.Bool(j.ReturnToCenter),
		OnChange:       onChange,
	})
}

// BackgroundSize never returns less than the bound, so the travel circle
// always fits in the container.
func (c *Config) BackgroundSize() float64 {
	if c.Display.BackgroundSize < c.Joystick.BoundSize {
		return c.Joystick.BoundSize
	}
	return c.Display.BackgroundSize
}
