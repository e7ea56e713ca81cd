package config

import "time"

// fileSchema is the on-disk shape; durations are written as Go duration
// strings so the file stays readable.
type fileSchema struct {
	State  stateSchema  `toml:"state"`
	Timing timingSchema `toml:"timing"`
	Clock  clockSchema  `toml:"clock"`
	Log    logSchema    `toml:"log"`
}

type stateSchema struct {
	Dir string `toml:"dir"`
	Key string `toml:"key"`
}

type timingSchema struct {
	Splash     string `toml:"splash"`
	Allocation string `toml:"allocation"`
	Toast      string `toml:"toast"`
}

type clockSchema struct {
	Layout string `toml:"layout"`
}

type logSchema struct {
	Path  string `toml:"path"`
	Level string `toml:"level"`
}

func toSchema(cfg Config) fileSchema {
	return fileSchema{
		State: stateSchema{Dir: cfg.State.Dir, Key: cfg.State.Key},
		Timing: timingSchema{
			Splash:     formatDuration(cfg.Timing.Splash),
			Allocation: formatDuration(cfg.Timing.Allocation),
			Toast:      formatDuration(cfg.Timing.Toast),
		},
		Clock: clockSchema{Layout: cfg.Clock.Layout},
		Log:   logSchema{Path: cfg.Log.Path, Level: cfg.Log.Level},
	}
}

func formatDuration(d time.Duration) string {
	return d.String()
}
