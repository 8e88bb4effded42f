package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// EngineSettings controls the simulation driver.
type EngineSettings struct {
	TickRate int   `mapstructure:"tick_rate"`
	Seed     int64 `mapstructure:"seed"` // 0 picks a time-based seed
}

// ArenaSettings overrides the default arena size.
type ArenaSettings struct {
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	GroundOffset float64 `mapstructure:"ground_offset"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AudioSettings holds sound settings for the windowed client.
type AudioSettings struct {
	Dir    string  `mapstructure:"dir"`
	Volume float64 `mapstructure:"volume"`
}

// Settings is the file/env configurable part of the configuration. Everything
// else stays at the compiled-in defaults.
type Settings struct {
	Engine      EngineSettings `mapstructure:"engine"`
	Arena       ArenaSettings  `mapstructure:"arena"`
	Logging     LoggingConfig  `mapstructure:"logging"`
	Audio       AudioSettings  `mapstructure:"audio"`
	WeaponsFile string         `mapstructure:"weapons_file"`
}

// Validate checks all settings and reports every problem at once.
func (s Settings) Validate() error {
	var errs []string
	if s.Engine.TickRate < 1 || s.Engine.TickRate > 240 {
		errs = append(errs, fmt.Sprintf("engine.tick_rate must be 1-240, got %d", s.Engine.TickRate))
	}
	if s.Arena.Width < 200 || s.Arena.Height < 200 {
		errs = append(errs, fmt.Sprintf("arena must be at least 200x200, got %dx%d", s.Arena.Width, s.Arena.Height))
	}
	if s.Arena.GroundOffset < 0 || s.Arena.GroundOffset >= float64(s.Arena.Height) {
		errs = append(errs, fmt.Sprintf("arena.ground_offset must be in [0, height), got %v", s.Arena.GroundOffset))
	}
	if err := validateLogging(s.Logging); err != nil {
		errs = append(errs, err.Error())
	}
	if s.Audio.Volume < 0 || s.Audio.Volume > 1 {
		errs = append(errs, fmt.Sprintf("audio.volume must be 0-1, got %v", s.Audio.Volume))
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

func validateLogging(l LoggingConfig) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[l.Level] {
		return fmt.Errorf("logging.level must be one of [debug, info, warn, error], got %q", l.Level)
	}
	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[l.Format] {
		return fmt.Errorf("logging.format must be one of [json, console], got %q", l.Format)
	}
	return nil
}

// Load reads settings from the given file path (optional), applies
// STICKBRAWL_ environment overrides and validates the result.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetEnvPrefix("STICKBRAWL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("engine.tick_rate", Match.TickRate)
	v.SetDefault("engine.seed", 0)

	v.SetDefault("arena.width", Arena.Width)
	v.SetDefault("arena.height", Arena.Height)
	v.SetDefault("arena.ground_offset", Arena.GroundOffset)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("audio.dir", Audio.Dir)
	v.SetDefault("audio.volume", Audio.DefaultSFXVol)

	v.SetDefault("weapons_file", "")
}

// Apply copies the settings into the package-level configuration and loads
// the weapon override file when one is named. Call once at startup.
func (s Settings) Apply() error {
	if s.WeaponsFile != "" {
		f, err := os.Open(s.WeaponsFile)
		if err != nil {
			return fmt.Errorf("opening weapons file: %w", err)
		}
		defer f.Close()

		table, err := LoadWeapons(f)
		if err != nil {
			return fmt.Errorf("loading %s: %w", s.WeaponsFile, err)
		}
		Weapons = table
	}

	Match.TickRate = s.Engine.TickRate
	Arena.Width = s.Arena.Width
	Arena.Height = s.Arena.Height
	Arena.GroundOffset = s.Arena.GroundOffset
	Audio.Dir = s.Audio.Dir
	Audio.DefaultSFXVol = s.Audio.Volume
	return nil
}

type weaponFile struct {
	Weapons map[string]struct {
		Basic  AttackStats `yaml:"basic"`
		Skill1 AttackStats `yaml:"skill1"`
		Skill2 AttackStats `yaml:"skill2"`
	} `yaml:"weapons"`
}

// LoadWeapons parses a YAML weapon table. Weapons missing from the file keep
// their default stats; unknown weapon names fail with ErrUnknownWeapon.
//
//	weapons:
//	  katana:
//	    basic: {damage: 8, cooldown: 30, knockback: 8, windup: 4, active: 6,
//	            recovery: 8, height: high, reach: 60, hitbox_height: 40}
func LoadWeapons(r io.Reader) (WeaponTable, error) {
	var wf weaponFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&wf); err != nil {
		return nil, fmt.Errorf("decoding weapons: %w", err)
	}

	table := DefaultWeapons()
	names := make([]string, 0, len(wf.Weapons))
	for name := range wf.Weapons {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		w, err := ParseWeapon(name)
		if err != nil {
			return nil, err
		}
		entry := wf.Weapons[name]
		wc := table[w]
		wc.Attacks = [TierCount]AttackStats{entry.Basic, entry.Skill1, entry.Skill2}
		table[w] = wc
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}
