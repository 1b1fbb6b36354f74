package config

import "sort"

func preset(mutate func(j *JoystickConfig)) *Config {
	cfg := DefaultConfig()
	mutate(&cfg.Joystick)
	return cfg
}

var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"throttle": preset(func(j *JoystickConfig) {
		j.StickOnXAxis = true
		j.ReturnToCenter = false
	}),
	"steering": preset(func(j *JoystickConfig) {
		j.StickOnYAxis = true
	}),
	"dpad": preset(func(j *JoystickConfig) {
		j.Step = 100
	}),
	"analog": preset(func(j *JoystickConfig) {
		j.MinAxis, j.MaxAxis, j.Step = -1, 1, 0.01
	}),
	"sticky": preset(func(j *JoystickConfig) {
		j.ReturnToCenter = false
	}),
	"large": preset(func(j *JoystickConfig) {
		j.BoundSize, j.HandleSize = 160, 24
	}),
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *cfg
	return &c
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
