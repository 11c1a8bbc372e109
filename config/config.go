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
	"github.com/rs/zerolog"

	"dirpx.dev/puremvc/apis"
)

const (
	// DefaultName is the core name used when none is provided.
	DefaultName = "default"
	// DefaultDetectDuplicates represents the default for DetectDuplicates.
	DefaultDetectDuplicates = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure Name is usable as a log field and metric label.
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Name:             DefaultName,
		Logger:           zerolog.Nop(),
		DetectDuplicates: DefaultDetectDuplicates,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithName sets the core name.
// An empty name resets to the default.
func WithName(name string) Option {
	return func(c *apis.Config) {
		if name == "" {
			c.Name = DefaultName
			return
		}
		c.Name = name
	}
}

// WithLogger sets the structured logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}

// WithDetectDuplicates sets the DetectDuplicates option.
func WithDetectDuplicates(detect bool) Option {
	return func(c *apis.Config) {
		c.DetectDuplicates = detect
	}
}

// WithRecorder sets the instrumentation sink. Nil disables instrumentation.
func WithRecorder(r apis.Recorder) Option {
	return func(c *apis.Config) {
		c.Recorder = r
	}
}
