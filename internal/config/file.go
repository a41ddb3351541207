package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesslab-go/internal/errors"
)

// fileConfig is the YAML layout of a configuration file. Pointer fields
// tell absent keys from zero values, so a file only overrides what it sets.
type fileConfig struct {
	Verbosity *int    `yaml:"verbosity"`
	Record    *string `yaml:"record"`
	StartFEN  *string `yaml:"fen"`

	Search struct {
		Depth   *int  `yaml:"depth"`
		Workers *int  `yaml:"workers"`
		Suggest *bool `yaml:"suggest"`
		Top     *int  `yaml:"top"`
		Cache   *int  `yaml:"cache"`
	} `yaml:"search"`

	Display struct {
		Board   *bool `yaml:"board"`
		Moves   *bool `yaml:"moves"`
		Flipped *bool `yaml:"flipped"`
		FEN     *bool `yaml:"fen"`
		JSON    *bool `yaml:"json"`
		Width   *int  `yaml:"width"`
	} `yaml:"display"`
}

// LoadFile applies the settings of a YAML configuration file on top of c.
func (c *Config) LoadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := c.Load(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Load applies YAML settings read from r on top of c and validates the
// result. Unknown keys are rejected.
func (c *Config) Load(r io.Reader) error {
	var fc fileConfig
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return fmt.Errorf("%v: %w", err, errors.ErrInvalidConfig)
	}

	setInt(&c.Verbosity, fc.Verbosity)
	setString(&c.RecordFile, fc.Record)
	setString(&c.StartFEN, fc.StartFEN)

	setInt(&c.Search.Depth, fc.Search.Depth)
	setInt(&c.Search.Workers, fc.Search.Workers)
	setBool(&c.Search.Suggest, fc.Search.Suggest)
	setInt(&c.Search.Top, fc.Search.Top)
	setInt(&c.Search.CacheSize, fc.Search.Cache)

	setBool(&c.Display.ShowBoard, fc.Display.Board)
	setBool(&c.Display.ShowMoves, fc.Display.Moves)
	setBool(&c.Display.Flipped, fc.Display.Flipped)
	setBool(&c.Display.ShowFEN, fc.Display.FEN)
	setBool(&c.Display.JSON, fc.Display.JSON)
	setInt(&c.Display.MaxLineLength, fc.Display.Width)

	return c.Validate()
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
