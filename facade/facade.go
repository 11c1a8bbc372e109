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

// Package facade provides the single access point to a Model, View and
// Controller triad.
package facade

import (
	"errors"

	"github.com/rs/zerolog"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/builder"
	"dirpx.dev/puremvc/observer"
)

var (
	// ErrNilModel is raised when a builder returns a nil model.
	ErrNilModel = errors.New("puremvc(facade): builder returned nil model")
	// ErrNilView is raised when a builder returns a nil view.
	ErrNilView = errors.New("puremvc(facade): builder returned nil view")
	// ErrNilController is raised when a builder returns a nil controller.
	ErrNilController = errors.New("puremvc(facade): builder returned nil controller")
)

// Option customizes a Facade at construction.
type Option func(*options)

type options struct {
	builder apis.Builder
}

// WithBuilder replaces the default builder. Nil keeps the default.
func WithBuilder(b apis.Builder) Option {
	return func(o *options) {
		if b != nil {
			o.builder = b
		}
	}
}

// New constructs a Facade over a fresh Model, View and Controller built, in
// that order, by the configured builder. It panics if the builder returns a
// nil layer.
func New(cfg apis.Config, opts ...Option) *Facade {
	o := options{builder: builder.New()}
	for _, opt := range opts {
		opt(&o)
	}

	f := &Facade{
		cfg: cfg,
		log: cfg.Logger.With().
			Str("core", cfg.Name).
			Str("component", "facade").
			Logger(),
	}

	f.model = o.builder.BuildModel(cfg)
	if f.model == nil {
		panic(ErrNilModel)
	}
	f.view = o.builder.BuildView(cfg)
	if f.view == nil {
		panic(ErrNilView)
	}
	f.controller = o.builder.BuildController(cfg, f.view, f)
	if f.controller == nil {
		panic(ErrNilController)
	}

	f.log.Debug().Msg("facade initialized")
	return f
}

// Facade is the default apis.Facade. The three layers are fixed after New,
// so every method is safe for concurrent use as long as the layers are.
type Facade struct {
	cfg apis.Config
	log zerolog.Logger

	model      apis.Model
	view       apis.View
	controller apis.Controller
}

// Ensure Facade implements apis.Facade.
var _ apis.Facade = (*Facade)(nil)

// Config returns the configuration the Facade was built with.
func (f *Facade) Config() apis.Config { return f.cfg }

// Model returns the proxy registry.
func (f *Facade) Model() apis.Model { return f.model }

// View returns the notification bus.
func (f *Facade) View() apis.View { return f.view }

// Controller returns the command dispatcher.
func (f *Facade) Controller() apis.Controller { return f.controller }

// RegisterCommand maps name to the command factory cf.
func (f *Facade) RegisterCommand(name string, cf apis.CommandFactory) {
	f.controller.RegisterCommand(name, cf)
}

// RemoveCommand drops the command mapping for name.
func (f *Facade) RemoveCommand(name string) {
	f.controller.RemoveCommand(name)
}

// HasCommand reports whether name has a command mapping.
func (f *Facade) HasCommand(name string) bool {
	return f.controller.HasCommand(name)
}

// RegisterProxy binds p to this Facade and registers it.
func (f *Facade) RegisterProxy(p apis.Proxy) {
	if p == nil {
		return
	}
	p.InitializeNotifier(f)
	f.model.RegisterProxy(p)
}

// RetrieveProxy returns the proxy registered under name, or nil.
func (f *Facade) RetrieveProxy(name string) apis.Proxy {
	return f.model.RetrieveProxy(name)
}

// RemoveProxy removes and returns the proxy registered under name, or nil.
func (f *Facade) RemoveProxy(name string) apis.Proxy {
	return f.model.RemoveProxy(name)
}

// HasProxy reports whether a proxy is registered under name.
func (f *Facade) HasProxy(name string) bool {
	return f.model.HasProxy(name)
}

// RegisterMediator binds m to this Facade and registers it.
func (f *Facade) RegisterMediator(m apis.Mediator) {
	if m == nil {
		return
	}
	m.InitializeNotifier(f)
	f.view.RegisterMediator(m)
}

// RetrieveMediator returns the mediator registered under name, or nil.
func (f *Facade) RetrieveMediator(name string) apis.Mediator {
	return f.view.RetrieveMediator(name)
}

// RemoveMediator removes and returns the mediator registered under name, or nil.
func (f *Facade) RemoveMediator(name string) apis.Mediator {
	return f.view.RemoveMediator(name)
}

// HasMediator reports whether a mediator is registered under name.
func (f *Facade) HasMediator(name string) bool {
	return f.view.HasMediator(name)
}

// SendNotification builds a notification and dispatches it through the View.
func (f *Facade) SendNotification(name string, body any, typ string) {
	f.NotifyObservers(observer.NewNotification(name, body, typ))
}

// NotifyObservers dispatches n through the View.
func (f *Facade) NotifyObservers(n apis.Notification) {
	f.view.NotifyObservers(n)
}
