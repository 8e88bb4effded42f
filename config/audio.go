package config

// CueID represents a logical sound cue emitted by the simulation
type CueID int

const (
	CueNone CueID = iota
	CueCountdownTick
	CueFight
	CueAttack
	CueHit
	CueDodge
	CueJump
	CueMatchEnd
)

var cueNames = map[CueID]string{
	CueCountdownTick: "countdown_tick",
	CueFight:         "fight",
	CueAttack:        "attack",
	CueHit:           "hit",
	CueDodge:         "dodge",
	CueJump:          "jump",
	CueMatchEnd:      "match_end",
}

func (c CueID) String() string {
	if name, ok := cueNames[c]; ok {
		return name
	}
	return "none"
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
	Dir           string // directory the sound files are read from
}

// SoundConfig maps cues to file paths relative to AudioConfig.Dir
type SoundConfig struct {
	SFXPaths          map[CueID]string
	VolumeMultipliers map[CueID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 1.0,
		Dir:           "assets/audio",
	}

	Sound = SoundConfig{
		SFXPaths: map[CueID]string{
			CueCountdownTick: "sfx/beep.wav",
			CueFight:         "sfx/fight.wav",
			CueAttack:        "sfx/swing.wav",
			CueHit:           "sfx/hit.wav",
			CueDodge:         "sfx/dodge.wav",
			CueJump:          "sfx/jump.wav",
			CueMatchEnd:      "sfx/ko.wav",
		},
		VolumeMultipliers: map[CueID]float64{
			CueHit:   1.5,
			CueFight: 1.2,
		},
	}
}
