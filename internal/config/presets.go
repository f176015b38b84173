package config

import "sort"

var Presets = map[string]*Config{
	"freefall": {
		Name: "freefall", StartSpeed: 0, Acceleration: -StandardGravity,
		Dt: 0.01, Duration: 3.0,
	},
	"braking": {
		Name: "braking", StartSpeed: 27.8, Acceleration: -7.0,
		Dt: 0.01, Duration: 4.0,
	},
	"launch": {
		Name: "launch", StartSpeed: 0, Acceleration: 4.5,
		Dt: 0.01, Duration: 10.0,
	},
	"projectile": {
		Name: "projectile", StartSpeed: 20, Acceleration: -StandardGravity,
		Dt: 0.01, Duration: 4.1,
	},
	"cruise": {
		Name: "cruise", StartSpeed: 13.9, Acceleration: 0,
		Dt: 0.1, Duration: 60.0,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	c := *p
	return &c
}

// ListPresets returns the preset names in sorted order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
