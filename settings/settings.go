package settings

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/xyproto/env/v2"
	"gopkg.in/yaml.v3"
)

// names of the environment variables that override the settings file
const (
	Tracing = "FLATBASIC_TRACE"   // is tracing on
	Dir     = "FLATBASIC_DIR"     // directory the program browser serves
	Listen  = "FLATBASIC_LISTEN"  // address the program browser listens on
	History = "FLATBASIC_HISTORY" // file the REPL keeps its history in
	Scale   = "FLATBASIC_SCALE"   // size of a graphics pixel in the PNG
)

// Settings configures the front ends, the interpreter itself has none
type Settings struct {
	Trace   bool   `yaml:"trace"`
	Dir     string `yaml:"dir"`
	Listen  string `yaml:"listen"`
	History string `yaml:"history"`
	Scale   int    `yaml:"scale"`
}

// Default returns the settings used when nothing else is said
func Default() Settings {
	return Settings{
		Dir:    ".",
		Listen: "localhost:8080",
		Scale:  2,
	}
}

// Load starts from the defaults, applies the YAML file at path if
// there is one, then the environment
// a missing file is only an error if path was given
func Load(path string) (Settings, error) {
	s := Default()

	if len(path) > 0 {
		f, err := os.Open(path)
		if err != nil {
			return s, fmt.Errorf("settings: %w", err)
		}
		defer f.Close()

		if err := Decode(f, &s); err != nil {
			return s, fmt.Errorf("settings %s: %w", path, err)
		}
	}

	s.ApplyEnv()

	return s, s.Validate()
}

// Decode reads YAML settings over the top of s
// unknown keys are an error, an empty document changes nothing
func Decode(r io.Reader, s *Settings) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)

	err := decoder.Decode(s)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ApplyEnv overrides settings from any environment variables that are set
func (s *Settings) ApplyEnv() {
	if env.Has(Tracing) {
		s.Trace = env.Bool(Tracing)
	}
	s.Dir = env.Str(Dir, s.Dir)
	s.Listen = env.Str(Listen, s.Listen)
	s.History = env.Str(History, s.History)
	s.Scale = env.Int(Scale, s.Scale)
}

// Validate checks the settings make sense
func (s Settings) Validate() error {
	if s.Scale < 1 {
		return fmt.Errorf("settings: scale must be at least 1, got %d", s.Scale)
	}
	return nil
}
