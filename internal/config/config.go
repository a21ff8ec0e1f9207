package config

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	WindowWidth  = 1280
	WindowHeight = 720

	// Particle field
	ParticleCount = 60
	MaxSpeed      = 0.2 // per axis, pixels per tick
	MinRadius     = 0.5
	MaxRadius     = 2.5
	MinOpacity    = 0.1
	MaxOpacity    = 0.6
	AccentRatio   = 0.3

	// Proximity links
	LinkDistance = 120.0
	LinkAlpha    = 0.08
	LinkWidth    = 0.5

	// Debug overlay
	FrameRingSize = 120
)

var (
	PrimaryColor = color.RGBA{R: 245, G: 245, B: 245, A: 255}
	AccentColor  = color.RGBA{R: 251, G: 98, B: 63, A: 255}
)

// Settings are the runtime knobs of the desktop host. The particle constants
// above are not configurable.
type Settings struct {
	Width       int    `mapstructure:"width" yaml:"width"`
	Height      int    `mapstructure:"height" yaml:"height"`
	Title       string `mapstructure:"title" yaml:"title"`
	TPS         int    `mapstructure:"tps" yaml:"tps"`
	Seed        uint64 `mapstructure:"seed" yaml:"seed"`
	Background  string `mapstructure:"background" yaml:"background"`
	Debug       bool   `mapstructure:"debug" yaml:"debug"`
	SnapshotDir string `mapstructure:"snapshot-dir" yaml:"snapshot-dir"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("width", WindowWidth)
	v.SetDefault("height", WindowHeight)
	v.SetDefault("title", "Hero particles")
	v.SetDefault("tps", 60)
	v.SetDefault("seed", 0)
	v.SetDefault("background", "#0a0a0a")
	v.SetDefault("debug", false)
	v.SetDefault("snapshot-dir", "")
}

// Load reads settings from defaults, an optional config file, HERO_*
// environment variables and flags, in increasing precedence.
func Load(v *viper.Viper, file string, flags *pflag.FlagSet) (Settings, error) {
	setDefaults(v)

	v.SetEnvPrefix("hero")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Settings{}, errors.Wrap(err, "bind flags")
		}
	}

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, errors.Wrapf(err, "read config %s", file)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, errors.Wrap(err, "decode settings")
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return errors.Errorf("window size must be positive, got %dx%d", s.Width, s.Height)
	}
	if s.TPS <= 0 {
		return errors.Errorf("tps must be positive, got %d", s.TPS)
	}
	if _, err := ParseHex(s.Background); err != nil {
		return errors.Wrap(err, "background")
	}
	return nil
}

// ParseHex parses #rgb or #rrggbb into an opaque color.
func ParseHex(s string) (color.RGBA, error) {
	c := color.RGBA{A: 255}
	h := strings.TrimPrefix(s, "#")
	switch len(h) {
	case 3:
		var r, g, b uint8
		if _, err := fmt.Sscanf(h, "%1x%1x%1x", &r, &g, &b); err != nil {
			return c, errors.Wrapf(err, "invalid color %q", s)
		}
		c.R, c.G, c.B = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(h, "%02x%02x%02x", &c.R, &c.G, &c.B); err != nil {
			return c, errors.Wrapf(err, "invalid color %q", s)
		}
	default:
		return c, errors.Errorf("invalid color %q", s)
	}
	return c, nil
}
