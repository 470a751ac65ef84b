package config

// Presets are named configurations for common scenarios.
var Presets = map[string]*Config{
	"default": DefaultConfig(),
	"calm": {
		Gravity: 0.05, Friction: DefaultFriction, BounceFriction: 0.9, Drag: 0.999,
		MaxObjects: 10, AngularVelocityFactor: 0.02, ObjectCount: 3,
		UserImages:    []string{"placeholder"},
		ViewportWidth: 800, ViewportHeight: 600,
		Ticks: DefaultTicks, FrameRate: DefaultFrameRate,
	},
	"crowded": {
		Gravity: DefaultGravity, Friction: DefaultFriction, BounceFriction: DefaultBounceFriction, Drag: DefaultDrag,
		MaxObjects: 50, AngularVelocityFactor: DefaultAngularVelocityFactor, ObjectCount: 25,
		UserImages:    []string{"placeholder"},
		ViewportWidth: 800, ViewportHeight: 600,
		Ticks: DefaultTicks, FrameRate: DefaultFrameRate,
	},
	"zerog": {
		Gravity: 0, Friction: DefaultFriction, BounceFriction: 1, Drag: 1,
		MaxObjects: 20, AngularVelocityFactor: 0.1, ObjectCount: 8,
		UserImages:    []string{"placeholder"},
		ViewportWidth: 800, ViewportHeight: 600,
		Ticks: DefaultTicks, FrameRate: DefaultFrameRate,
	},
}

// GetPreset returns a copy of the named preset, or nil when it does
// not exist.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	cp.UserImages = append([]string(nil), p.UserImages...)
	return &cp
}

// ListPresets returns the available preset names.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
