/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyPath is returned by Load when no path is given.
	ErrEmptyPath = errors.New("config: empty config path")
	// ErrUnsupportedFormat is returned by Load for unknown file extensions.
	ErrUnsupportedFormat = errors.New("config: unsupported config extension")
)

// File is the on-disk representation of a core configuration.
// Zero values mean "unspecified" and fall back to defaults.
type File struct {
	Name             string  `json:"name" yaml:"name" toml:"name"`
	LogLevel         string  `json:"log_level" yaml:"log_level" toml:"log_level"`
	LogFormat        string  `json:"log_format" yaml:"log_format" toml:"log_format"`
	DetectDuplicates bool    `json:"detect_duplicates" yaml:"detect_duplicates" toml:"detect_duplicates"`
	Metrics          Metrics `json:"metrics" yaml:"metrics" toml:"metrics"`
}

// Metrics holds the instrumentation section of a File.
type Metrics struct {
	Enabled   bool   `json:"enabled" yaml:"enabled" toml:"enabled"`
	Namespace string `json:"namespace" yaml:"namespace" toml:"namespace"`
}

// DefaultMetricsNamespace is used when metrics are enabled without a namespace.
const DefaultMetricsNamespace = "puremvc"

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, ErrEmptyPath
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("config: reading %s: %w", path, err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	case ".toml":
		err = toml.Unmarshal(b, &f)
	default:
		return f, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return f, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	if f.Metrics.Enabled && f.Metrics.Namespace == "" {
		f.Metrics.Namespace = DefaultMetricsNamespace
	}
	return f, nil
}

// Options converts f into construction options. Logs go to w, as JSON
// unless LogFormat is "console". An empty LogLevel disables logging.
func (f File) Options(w io.Writer) ([]Option, error) {
	opts := []Option{
		WithName(f.Name),
		WithDetectDuplicates(f.DetectDuplicates),
	}
	if f.LogLevel == "" || f.LogLevel == "off" {
		return append(opts, WithLogger(zerolog.Nop())), nil
	}
	lvl, err := zerolog.ParseLevel(f.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: log level %q: %w", f.LogLevel, err)
	}
	if f.LogFormat == "console" {
		w = zerolog.ConsoleWriter{Out: w, NoColor: true}
	}
	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return append(opts, WithLogger(l)), nil
}
