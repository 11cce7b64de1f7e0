// Package config loads runtime settings from an optional TOML file and command-line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/glyphcast/camera"
	"github.com/lixenwraith/glyphcast/constant"
)

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Backend names
const (
	BackendANSI  = "ansi"
	BackendTcell = "tcell"
)

// Duration decodes TOML strings such as "500ms"
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Camera struct {
	Autoresize bool    `toml:"autoresize"`
	Stretch    bool    `toml:"stretch"`
	Width      float64 `toml:"width"`
	Height     float64 `toml:"height"`
	X          float64 `toml:"x"`
	Y          float64 `toml:"y"`
}

type Log struct {
	Debug bool   `toml:"debug"`
	Dir   string `toml:"dir"`
}

type Config struct {
	TickRate    int      `toml:"tick_rate"`
	PollTimeout Duration `toml:"poll_timeout"`
	Backend     string   `toml:"backend"`
	Scene       string   `toml:"scene"`
	Camera      Camera   `toml:"camera"`
	Log         Log      `toml:"log"`
}

// Default returns the built-in settings
func Default() Config {
	settings := camera.DefaultSettings()
	return Config{
		TickRate:    constant.TickRate,
		PollTimeout: Duration{constant.InputPollTimeout},
		Backend:     BackendANSI,
		Camera: Camera{
			Autoresize: settings.Autoresize,
			Stretch:    settings.Stretch,
		},
		Log: Log{Dir: constant.LogDir},
	}
}

// Load decodes path over the defaults and validates the result
// Keys the config does not define are an error
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > constant.MaxTickRate {
		return fmt.Errorf("%w: tick_rate %d not in (0, %d]", ErrInvalid, c.TickRate, constant.MaxTickRate)
	}
	if c.PollTimeout.Duration <= 0 {
		return fmt.Errorf("%w: poll_timeout %s must be positive", ErrInvalid, c.PollTimeout)
	}
	switch c.Backend {
	case BackendANSI, BackendTcell:
	default:
		return fmt.Errorf("%w: backend %q", ErrInvalid, c.Backend)
	}
	if c.Camera.Width < 0 || c.Camera.Height < 0 {
		return fmt.Errorf("%w: camera size %gx%g", ErrInvalid, c.Camera.Width, c.Camera.Height)
	}
	return nil
}

// TickInterval is the host loop period
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}

// CameraSettings converts the camera section to camera mode flags
func (c Config) CameraSettings() camera.Settings {
	return camera.Settings{Stretch: c.Camera.Stretch, Autoresize: c.Camera.Autoresize}
}

// Flags are the command-line overrides
type Flags struct {
	Config   string
	Debug    bool
	Backend  string
	Scene    string
	Stretch  bool
	TickRate int
}

// RegisterFlags binds the overrides to fs
func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{}
	fs.StringVar(&f.Config, "config", "", "TOML config file")
	fs.BoolVar(&f.Debug, "debug", false, "Write debug log to the log directory")
	fs.StringVar(&f.Backend, "backend", "", "Terminal backend: ansi, tcell")
	fs.StringVar(&f.Scene, "scene", "", "TOML scene file (default: demo scene)")
	fs.BoolVar(&f.Stretch, "stretch", false, "Stretch the camera viewport over the terminal")
	fs.IntVar(&f.TickRate, "tick-rate", 0, "Ticks per second")
	return f
}

// Resolve loads the config file (if any) and applies flags explicitly set on fs
func Resolve(fs *flag.FlagSet, f *Flags) (Config, error) {
	cfg := Default()
	if f.Config != "" {
		var err error
		if cfg, err = Load(f.Config); err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "debug":
			cfg.Log.Debug = f.Debug
		case "backend":
			cfg.Backend = f.Backend
		case "scene":
			cfg.Scene = f.Scene
		case "stretch":
			cfg.Camera.Stretch = f.Stretch
		case "tick-rate":
			cfg.TickRate = f.TickRate
		}
	})

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
