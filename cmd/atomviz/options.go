package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/atomviz/internal/atom"
	"github.com/vovakirdan/atomviz/internal/audio"
	"github.com/vovakirdan/atomviz/internal/config"
	"github.com/vovakirdan/atomviz/internal/input"
	"github.com/vovakirdan/atomviz/internal/scene"
	"github.com/vovakirdan/atomviz/internal/session"
	"github.com/vovakirdan/atomviz/internal/storage"
)

// viewerFlags are shared by every command that opens a viewer.
type viewerFlags struct {
	element string
	motion  string
	policy  string
	speed   string
	noOrbit bool
	sound   bool
}

func (f *viewerFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.element, "element", "", "Starting element: atomic number, symbol or name")
	cmd.Flags().StringVar(&f.motion, "motion", "", "Electron motion: rotating or stationary")
	cmd.Flags().StringVar(&f.policy, "policy", "", "Out-of-range numbers: clamp or reject")
	cmd.Flags().StringVar(&f.speed, "speed", "", "Speed preset: frozen, slow, normal, fast")
	cmd.Flags().BoolVar(&f.noOrbit, "no-orbits", false, "Hide orbit rings")
	cmd.Flags().BoolVar(&f.sound, "sound", false, "Play a chime when an element is selected")
}

// viewerSetup is the resolved configuration of one viewer.
type viewerSetup struct {
	cfg     config.AtomConfig
	session session.Options
	params  scene.Params
}

// resolve loads the configuration and applies the command line on top.
func (f *viewerFlags) resolve() (viewerSetup, error) {
	cfg, err := loadConfig(f.speed)
	if err != nil {
		return viewerSetup{}, err
	}
	if f.motion != "" {
		if _, err := atom.ParseMotionMode(f.motion); err != nil {
			return viewerSetup{}, err
		}
		cfg.Motion.Mode = f.motion
	}
	if f.policy != "" {
		if _, err := input.ParsePolicy(f.policy); err != nil {
			return viewerSetup{}, err
		}
		cfg.Input.InvalidPolicy = f.policy
	}
	if f.noOrbit {
		cfg.Visual.ShowOrbits = false
	}
	if f.sound {
		cfg.Sound.Enabled = true
	}
	if f.element != "" {
		e, err := atom.Find(f.element)
		if err != nil {
			return viewerSetup{}, err
		}
		cfg.Input.DefaultElement = e.Number
	}

	opts := session.DefaultOptions()
	opts.Input = cfg.InputConfig()
	opts.Motion = cfg.MotionMode()
	opts.ShowOrbits = cfg.Visual.ShowOrbits
	opts.DefaultElement = cfg.Input.DefaultElement

	return viewerSetup{
		cfg:     cfg,
		session: opts,
		params:  scene.ParamsFromConfig(cfg),
	}, nil
}

// loadConfig reads the atom configuration and applies a speed preset.
func loadConfig(speed string) (config.AtomConfig, error) {
	cfg, err := config.LoadAtom(flagConfig)
	if err != nil {
		return config.AtomConfig{}, err
	}
	preset, err := config.ParseSpeedPreset(speed)
	if err != nil {
		return config.AtomConfig{}, err
	}
	config.ApplySpeedPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return config.AtomConfig{}, err
	}
	return cfg, nil
}

// recorder returns store as a session recorder, or nil without a store.
func recorder(store *storage.Store) session.Recorder {
	if store == nil {
		return nil
	}
	return store
}

// startChime opens the speaker when sound is enabled. It returns nil when
// sound is off or the audio device cannot be opened.
func startChime(cfg config.AtomConfig, logger *log.Logger) *audio.Chime {
	if !cfg.Sound.Enabled {
		return nil
	}
	chime := audio.NewChime(cfg.Sound)
	if err := chime.Initialize(); err != nil {
		logger.Warn("sound disabled", "error", err)
		return nil
	}
	return chime
}

// chimer avoids handing a typed nil to the session.
func chimer(c *audio.Chime) session.Chimer {
	if c == nil {
		return nil
	}
	return c
}
