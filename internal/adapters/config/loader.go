// Package config loads the optional YAML run configuration.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"

	"go.trai.ch/crcsum/internal/core/domain"
	"go.trai.ch/crcsum/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// File is the structure of the .crcsum.yaml file.
type File struct {
	Jobs   int      `yaml:"jobs"`
	Update bool     `yaml:"update"`
	Add    bool     `yaml:"add"`
	Ignore []string `yaml:"ignore"`
}

// Loader reads the run configuration from a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{Logger: log}
}

// Load reads the configuration file at path, relative paths being resolved
// against cwd. An empty path selects domain.DefaultConfigFile in cwd, whose
// absence yields domain.DefaultConfig.
func (l *Loader) Load(cwd, path string) (*domain.Config, error) {
	explicit := path != ""
	if !explicit {
		path = domain.DefaultConfigFile
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return nil, errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "cannot open"), "path", path))
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	if l.Logger != nil {
		l.Logger.Info("loaded configuration from " + path)
	}
	return cfg, nil
}

// Parse decodes and validates a configuration document. Unknown keys are
// rejected and an empty document yields the defaults.
func Parse(data []byte) (*domain.Config, error) {
	var file File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Join(domain.ErrConfigParseFailed, zerr.Wrap(err, "invalid YAML"))
	}

	if file.Jobs < 0 {
		return nil, errors.Join(domain.ErrInvalidJobs, zerr.With(zerr.New("invalid worker count"), "jobs", file.Jobs))
	}

	for _, pattern := range file.Ignore {
		if _, err := filepath.Match(pattern, ""); err != nil {
			return nil, errors.Join(
				domain.ErrConfigParseFailed,
				zerr.With(zerr.Wrap(err, "invalid ignore pattern"), "pattern", pattern),
			)
		}
	}

	return &domain.Config{
		Jobs:   file.Jobs,
		Mode:   domain.Mode{Update: file.Update, Add: file.Add},
		Ignore: file.Ignore,
	}, nil
}
