package archipelago

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// ErrNoLetters is returned when the glyph character set is empty.
var ErrNoLetters = errors.New("archipelago: letter set is empty")

// DefaultLetters is the glyph pool spelled out at startup, one glyph per rune.
const DefaultLetters = "filianca"

// Environment variables read by LoadConfig.
const (
	EnvSeed      = "ARCHIPELAGO_SEED"
	EnvLinksFile = "ARCHIPELAGO_LINKS_FILE"
	EnvLetters   = "ARCHIPELAGO_LETTERS"
	EnvWidth     = "ARCHIPELAGO_WIDTH"
	EnvHeight    = "ARCHIPELAGO_HEIGHT"
	EnvDebug     = "ARCHIPELAGO_DEBUG"
	EnvMute      = "ARCHIPELAGO_MUTE"
)

// Config holds the startup parameters of a Simulation.
type Config struct {
	// Initial canvas size in world units. Frontends resize it later.
	Width, Height float64

	// Links is the ordered round-robin list assigned to new bodies.
	Links []string

	// Letters defines the glyph pool, one glyph per rune.
	Letters string

	// Seed drives the noise field and every random draw (glyph placement,
	// noise offsets). Equal seeds give equal simulations.
	Seed int64

	// FrameTime is the duration one Step represents. Used for the spawn pop
	// animation and by FrameClock.
	FrameTime time.Duration

	// Debug enables per-step timing output on stderr.
	Debug bool

	// Mute disables sound cues in frontends that have them.
	Mute bool
}

// DefaultConfig returns the built-in links and letters on a 1280x720 canvas.
func DefaultConfig() Config {
	return Config{
		Width:     1280,
		Height:    720,
		Links:     DefaultLinks,
		Letters:   DefaultLetters,
		Seed:      1,
		FrameTime: DefaultFrameTime,
	}
}

func (c Config) validate() error {
	if len(c.Links) == 0 {
		return ErrNoLinks
	}
	if len([]rune(c.Letters)) == 0 {
		return ErrNoLetters
	}
	return nil
}

// LoadConfig starts from DefaultConfig and applies ARCHIPELAGO_* variables.
// envFile, if non-empty and present, is read with godotenv; variables already
// set in the process environment take precedence over the file. A missing
// envFile is not an error.
func LoadConfig(envFile string) (Config, error) {
	vars := map[string]string{}
	if envFile != "" {
		fileVars, err := godotenv.Read(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("archipelago: load %s: %w", envFile, err)
		}
		for k, v := range fileVars {
			vars[k] = v
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := vars[key]
		return v, ok
	}

	cfg := DefaultConfig()

	if v, ok := lookup(EnvSeed); ok {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("archipelago: %s: %w", EnvSeed, err)
		}
		cfg.Seed = seed
	} else {
		cfg.Seed = time.Now().UnixNano()
	}
	if v, ok := lookup(EnvWidth); ok {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("archipelago: %s: %w", EnvWidth, err)
		}
		cfg.Width = w
	}
	if v, ok := lookup(EnvHeight); ok {
		h, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("archipelago: %s: %w", EnvHeight, err)
		}
		cfg.Height = h
	}
	if v, ok := lookup(EnvLetters); ok {
		cfg.Letters = v
	}
	if v, ok := lookup(EnvLinksFile); ok && v != "" {
		f, err := os.Open(v)
		if err != nil {
			return Config{}, fmt.Errorf("archipelago: open links file: %w", err)
		}
		links, err := ReadLinks(f)
		_ = f.Close()
		if err != nil {
			return Config{}, err
		}
		cfg.Links = links
	}
	if v, ok := lookup(EnvDebug); ok {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("archipelago: %s: %w", EnvDebug, err)
		}
		cfg.Debug = debug
	}
	if v, ok := lookup(EnvMute); ok {
		mute, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("archipelago: %s: %w", EnvMute, err)
		}
		cfg.Mute = mute
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
