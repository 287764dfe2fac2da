// Package config loads the pitchtool configuration from an optional config
// file and the environment.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/james-see/pitchtypes/pkg/pitch"
)

type Config struct {
	Notation NotationConfig
	MIDI     MIDIConfig
}

type NotationConfig struct {
	// Accidentals selects sharp or flat spellings for enharmonic output.
	Accidentals string
}

type MIDIConfig struct {
	Tempo           float64
	Velocity        int
	TicksPerQuarter int
}

func Load() (*Config, error) {
	viper.SetConfigName("pitchtool")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME/.config/pitchtool")

	viper.SetEnvPrefix("pitchtool")
	viper.AutomaticEnv()

	viper.SetDefault("notation.accidentals", "sharp")
	viper.SetDefault("midi.tempo", 120.0)
	viper.SetDefault("midi.velocity", 100)
	viper.SetDefault("midi.ticks_per_quarter", 480)

	// the config file is optional
	_ = viper.ReadInConfig()

	cfg := &Config{
		Notation: NotationConfig{
			Accidentals: viper.GetString("notation.accidentals"),
		},
		MIDI: MIDIConfig{
			Tempo:           viper.GetFloat64("midi.tempo"),
			Velocity:        viper.GetInt("midi.velocity"),
			TicksPerQuarter: viper.GetInt("midi.ticks_per_quarter"),
		},
	}
	if _, err := cfg.NameStyle(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// NameStyle maps the configured accidental preference to a pitch.NameStyle.
func (c *Config) NameStyle() (pitch.NameStyle, error) {
	switch c.Notation.Accidentals {
	case "sharp", "sharps", "":
		return pitch.Sharps, nil
	case "flat", "flats":
		return pitch.Flats, nil
	default:
		return pitch.Sharps, fmt.Errorf("notation.accidentals must be \"sharp\" or \"flat\", got %q", c.Notation.Accidentals)
	}
}
