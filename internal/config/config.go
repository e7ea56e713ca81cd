package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	configName = "config"
	configType = "toml"
	configDir  = ".smstemp"
	envPrefix  = "SMSTEMP"

	keyStateDir     = "state.dir"
	keyStateKey     = "state.key"
	keySplash       = "timing.splash"
	keyAllocation   = "timing.allocation"
	keyToast        = "timing.toast"
	keyClockLayout  = "clock.layout"
	keyLogPath      = "log.path"
	keyLogLevel     = "log.level"
	defaultStateKey = "sms_temp_state_v3"
	defaultLogFile  = "smstemp.log"
	defaultLayout   = "15:04"
)

type Config struct {
	State  StateConfig
	Timing TimingConfig
	Clock  ClockConfig
	Log    LogConfig
}

type StateConfig struct {
	Dir string
	Key string
}

type TimingConfig struct {
	Splash     time.Duration
	Allocation time.Duration
	Toast      time.Duration
}

type ClockConfig struct {
	Layout string
}

type LogConfig struct {
	Path  string
	Level string
}

// DefaultDir is where the config file and state live unless overridden.
func DefaultDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, configDir), nil
}

// DefaultPath is the config file location inside DefaultDir.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, configName+"."+configType), nil
}

func Defaults(dir string) Config {
	return Config{
		State:  StateConfig{Dir: dir, Key: defaultStateKey},
		Timing: TimingConfig{Splash: 2200 * time.Millisecond, Allocation: 2 * time.Second, Toast: 3 * time.Second},
		Clock:  ClockConfig{Layout: defaultLayout},
		Log:    LogConfig{Path: filepath.Join(dir, defaultLogFile), Level: "info"},
	}
}

// Load reads the config file at path (or the default location when empty).
// A missing file is fine; values then come from defaults and SMSTEMP_* env.
func Load(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = viper.New()
	}

	dir, err := DefaultDir()
	if err != nil {
		return Config{}, err
	}

	defaults := Defaults(dir)
	v.SetDefault(keyStateDir, defaults.State.Dir)
	v.SetDefault(keyStateKey, defaults.State.Key)
	v.SetDefault(keySplash, defaults.Timing.Splash)
	v.SetDefault(keyAllocation, defaults.Timing.Allocation)
	v.SetDefault(keyToast, defaults.Timing.Toast)
	v.SetDefault(keyClockLayout, defaults.Clock.Layout)
	v.SetDefault(keyLogPath, defaults.Log.Path)
	v.SetDefault(keyLogLevel, defaults.Log.Level)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) && !(path != "" && errors.Is(err, os.ErrNotExist)) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		State: StateConfig{
			Dir: expandHome(v.GetString(keyStateDir)),
			Key: strings.TrimSpace(v.GetString(keyStateKey)),
		},
		Timing: TimingConfig{
			Splash:     v.GetDuration(keySplash),
			Allocation: v.GetDuration(keyAllocation),
			Toast:      v.GetDuration(keyToast),
		},
		Clock: ClockConfig{Layout: v.GetString(keyClockLayout)},
		Log: LogConfig{
			Path:  expandHome(v.GetString(keyLogPath)),
			Level: strings.ToLower(strings.TrimSpace(v.GetString(keyLogLevel))),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.State.Dir) == "" {
		errs = append(errs, errors.New("state.dir is empty"))
	}
	if c.State.Key == "" {
		errs = append(errs, errors.New("state.key is empty"))
	}
	durations := []struct {
		key   string
		value time.Duration
	}{
		{keySplash, c.Timing.Splash},
		{keyAllocation, c.Timing.Allocation},
		{keyToast, c.Timing.Toast},
	}
	for _, d := range durations {
		if d.value <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %s", d.key, d.value))
		}
	}
	if strings.TrimSpace(c.Clock.Layout) == "" {
		errs = append(errs, errors.New("clock.layout is empty"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	switch l.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log.level %q", l.Level)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			return filepath.Join(homeDir, strings.TrimPrefix(path, "~"))
		}
	}

	return path
}
