// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hasnatsamiul/3D-Model-Dashboard/base/errors"
	"github.com/hasnatsamiul/3D-Model-Dashboard/base/reflectx"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the name of the config file looked for in the
// user's home directory when no config file is given.
const DefaultFile = ".latticeview.toml"

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values. Errors are automatically
// logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(reflectx.SetFromDefaultTags(cfg))
}

// New returns a new config with default values.
func New() *Config {
	cfg := &Config{}
	SetFromDefaults(cfg)
	return cfg
}

// Open reads the given config file into cfg, overriding the values
// it sets. The format is given by the file extension: .toml, or .yaml
// or .yml. Unknown keys are an error, as are values rejected by the
// Validate method of cfg, if it has one.
func Open(cfg any, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		err = ReadTOML(cfg, bytes.NewReader(b))
	case ".yaml", ".yml":
		err = ReadYAML(cfg, bytes.NewReader(b))
	default:
		return fmt.Errorf("config.Open: unsupported config file extension %q", ext)
	}
	if err != nil {
		return err
	}
	if v, ok := cfg.(validator); ok {
		return v.Validate()
	}
	return nil
}

// validator is a config that can check its values once they are read.
type validator interface {
	Validate() error
}

// ReadTOML reads TOML config data from r into cfg.
func ReadTOML(cfg any, r io.Reader) error {
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// ReadYAML reads YAML config data from r into cfg.
func ReadYAML(cfg any, r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err == io.EOF {
		return nil
	}
	return err
}

// Save writes cfg to the given file, in the format given by the
// file extension as in [Open].
func Save(cfg any, filename string) error {
	var b []byte
	var err error
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".toml":
		b, err = toml.Marshal(cfg)
	case ".yaml", ".yml":
		b, err = yaml.Marshal(cfg)
	default:
		return fmt.Errorf("config.Save: unsupported config file extension %q", ext)
	}
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0666)
}

// DefaultPath returns the path of [DefaultFile] in the user's home
// directory, and "" if the home directory cannot be found.
func DefaultPath() string {
	home, err := homedir.Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, DefaultFile)
}

// Load returns a new config with default values, overridden by the
// given config file. If filename is "", the file at [DefaultPath] is
// used if it exists. A leading ~ in filename is expanded to the home
// directory.
func Load(filename string) (*Config, error) {
	cfg := New()
	if filename == "" {
		filename = DefaultPath()
		if _, err := os.Stat(filename); filename == "" || err != nil {
			return cfg, nil
		}
	}
	fn, err := homedir.Expand(filename)
	if err != nil {
		return cfg, err
	}
	if err := Open(cfg, fn); err != nil {
		return cfg, fmt.Errorf("config.Load: %s: %w", fn, err)
	}
	return cfg, nil
}
