package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/apex/log"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
)

const (
	RendererText   = "text"
	RendererScreen = "screen"
)

// Config holds the configuration for a run
type Config struct {
	Size             int           `json:"size"`
	MaxEpoch         int           `json:"max_epoch"`
	FrameRate        time.Duration `json:"frame_rate"`
	DisplayLimit     int           `json:"display_limit"`
	Color            bool          `json:"color"`
	ClearScreen      bool          `json:"clear_screen"`
	Pattern          string        `json:"pattern"`
	OffsetX          int           `json:"offset_x"` // -1 centers the pattern
	OffsetY          int           `json:"offset_y"`
	Workers          int           `json:"workers"`
	UseBoundedGrid   bool          `json:"use_bounded_grid"`
	Renderer         string        `json:"renderer"`
	StopOnStagnation bool          `json:"stop_on_stagnation"`
	HistoryDepth     int           `json:"history_depth"`
	LogLevel         string        `json:"log_level"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Size:             60,
		MaxEpoch:         500,
		FrameRate:        75 * time.Millisecond,
		DisplayLimit:     37,
		Color:            true,
		ClearScreen:      true,
		Pattern:          "tumbler",
		OffsetX:          -1,
		OffsetY:          -1,
		Workers:          0, // one per CPU
		UseBoundedGrid:   true,
		Renderer:         RendererText,
		StopOnStagnation: false,
		HistoryDepth:     model.DefaultHistoryDepth,
		LogLevel:         "info",
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Validate reports the first unusable setting
func (c Config) Validate() error {
	switch {
	case c.Size <= 0:
		return errors.Wrapf(model.ErrInvalidSize, "[Validate] size must be positive, got %d", c.Size)
	case c.MaxEpoch < 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] max_epoch must be non-negative, got %d", c.MaxEpoch)
	case c.FrameRate < 0:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] frame_rate must be non-negative, got %v", c.FrameRate)
	case c.Renderer != RendererText && c.Renderer != RendererScreen:
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] unknown renderer %q", c.Renderer)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(model.ErrInvalidConfig, "[Validate] unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Level returns the parsed log level, falling back to info
func (c Config) Level() log.Level {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
