// Package config loads the optional cpq.toml file that tunes naming and
// output of the compiler.
package config

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/nof-sh/cpq/cpq/logging"
	"github.com/pelletier/go-toml"
)

// FileName is the name of the configuration file looked up next to the
// source file.
const FileName = "cpq.toml"

// Config is the compiler configuration as it is encoded in TOML. Every
// missing key takes the value of its default tag.
type Config struct {
	Names  Names  `toml:"names"`
	Output Output `toml:"output"`
	Log    Log    `toml:"log"`
}

// Names controls the spelling of generated names.
type Names struct {
	IntPrefix   string `toml:"int-prefix" default:"ti"`
	FloatPrefix string `toml:"float-prefix" default:"tf"`
	LabelPrefix string `toml:"label-prefix" default:"L"`
}

// Output controls the files the compiler reads and writes.
type Output struct {
	SourceExtension string `toml:"source-extension" default:".ou"`
	Extension       string `toml:"extension" default:".qud"`
	Trailer         string `toml:"trailer" default:"CPL to Quad compiler by Nof Shabtay."`
	ResolveLabels   bool   `toml:"resolve-labels" default:"false"`
}

// Log controls diagnostics output.
type Log struct {
	Level string `toml:"level" default:"error"`
}

// Default returns the configuration used when there is no cpq.toml.
func Default() *Config {
	cfg := &Config{}
	if err := toml.Unmarshal(nil, cfg); err != nil {
		panic(fmt.Sprintf("config: bad defaults: %v", err))
	}
	return cfg
}

// Load reads cpq.toml from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	cfg, err := LoadFile(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// LoadFile reads and validates the configuration file at path.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := toml.Unmarshal(buff, cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration can produce well formed output.
func (c *Config) Validate() error {
	n := c.Names
	if n.IntPrefix == "" || n.FloatPrefix == "" || n.LabelPrefix == "" {
		return errors.New("name prefixes must not be empty")
	}

	if strings.HasPrefix(n.IntPrefix, n.FloatPrefix) || strings.HasPrefix(n.FloatPrefix, n.IntPrefix) {
		return fmt.Errorf("temporary prefixes %q and %q overlap", n.IntPrefix, n.FloatPrefix)
	}

	for _, ext := range []string{c.Output.SourceExtension, c.Output.Extension} {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("extension %q must start with '.'", ext)
		}
	}

	if c.Output.SourceExtension == c.Output.Extension {
		return fmt.Errorf("source and output extension are both %q", c.Output.Extension)
	}

	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	return nil
}
