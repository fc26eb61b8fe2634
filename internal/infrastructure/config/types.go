package config

// GameConfig holds all loaded configuration.
type GameConfig struct {
	Display    DisplayConfig    `yaml:"display"`
	Transition TransitionConfig `yaml:"transition"`
}

// DisplayConfig configures the window and tick rate.
type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screenWidth"`
	ScreenHeight int    `yaml:"screenHeight"`
	Scale        int    `yaml:"scale"`
	Framerate    int    `yaml:"framerate"`
	Title        string `yaml:"title"`
}

// TransitionConfig configures scene transitions.
type TransitionConfig struct {
	// FadeDuration is the default fade length in seconds, used by
	// transitions that do not carry their own duration.
	FadeDuration float64 `yaml:"fadeDuration"`
}

// StageConfig describes a single stage.
type StageConfig struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Background RGB    `yaml:"background"`
}

// RGB is a color triple as written in stage files.
type RGB struct {
	R uint8 `yaml:"r"`
	G uint8 `yaml:"g"`
	B uint8 `yaml:"b"`
}
