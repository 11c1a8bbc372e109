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

package puremvc

import (
	"errors"
	"sync"
	"sync/atomic"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/config"
	"dirpx.dev/puremvc/facade"
)

var (
	// ErrAlreadyInitialized is returned by Init when a process-wide facade
	// has already been published.
	ErrAlreadyInitialized = errors.New("puremvc: facade already initialized")
	// ErrNilFacade is raised when Init or a factory yields a nil facade.
	ErrNilFacade = errors.New("puremvc: nil facade")
)

// Init publishes f as the process-wide facade. It fails with
// ErrAlreadyInitialized if one is already published, and with ErrNilFacade
// if f is nil.
func Init(f apis.Facade) error {
	if f == nil {
		return ErrNilFacade
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	if st.Load() != nil {
		return ErrAlreadyInitialized
	}
	st.Store(&state{f: f})
	return nil
}

// Instance returns the process-wide facade, building it with factory on the
// first call. Later calls return the same facade and never invoke factory.
// A nil factory builds a facade with config.DefaultConfig().
//
// Instance panics with ErrNilFacade if factory returns nil.
func Instance(factory func() apis.Facade) apis.Facade {
	// Fast path: already published.
	if s := st.Load(); s != nil {
		return s.f
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Re-check under lock in case another goroutine built meanwhile.
	if s := st.Load(); s != nil {
		return s.f
	}

	if factory == nil {
		factory = defaultFactory
	}
	f := factory()
	if f == nil {
		panic(ErrNilFacade)
	}
	st.Store(&state{f: f})
	return f
}

// Facade returns the process-wide facade, or nil if none is published.
func Facade() apis.Facade {
	if s := st.Load(); s != nil {
		return s.f
	}
	return nil
}

// Reset forgets the process-wide facade so the next Init or Instance
// publishes a new one. Intended for tests.
func Reset() {
	buildMu.Lock()
	defer buildMu.Unlock()
	st.Store(nil)
}

// defaultFactory builds a facade with the default configuration.
func defaultFactory() apis.Facade {
	return facade.New(config.DefaultConfig())
}

// buildMu serializes writers so a factory runs at most once per published
// facade.
var buildMu sync.Mutex

// st is the published state, nil until Init or Instance.
var st atomic.Pointer[state]

// state is an immutable snapshot published atomically via st.Store.
type state struct {
	// f is the process-wide facade.
	f apis.Facade
}
