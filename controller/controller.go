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

// Package controller maps notification names to commands.
//
// The Controller registers itself on the View once per mapped name. When one
// of those notifications is dispatched it creates a fresh command from the
// mapped factory and executes it on the dispatching goroutine.
package controller

import (
	"github.com/rs/zerolog"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/metrics"
	"dirpx.dev/puremvc/observer"
	"dirpx.dev/puremvc/registry"
)

// New constructs a Controller dispatching through view. Commands get their
// notifier bound to f; f may be nil for a standalone controller.
func New(cfg apis.Config, view apis.View, f apis.Facade) *Controller {
	c := &Controller{
		log: cfg.Logger.With().
			Str("core", cfg.Name).
			Str("component", "controller").
			Logger(),
		rec:      metrics.Or(cfg.Recorder),
		view:     view,
		facade:   f,
		commands: registry.New[apis.CommandFactory](),
	}
	c.observer = observer.New(c.ExecuteCommand, c)
	return c
}

// Controller is the default apis.Controller.
type Controller struct {
	log    zerolog.Logger
	rec    apis.Recorder
	view   apis.View
	facade apis.Facade

	// observer is shared by every mapped name, with the Controller as context.
	observer *observer.Observer
	commands *registry.Registry[apis.CommandFactory]
}

// Ensure Controller implements apis.Controller.
var _ apis.Controller = (*Controller)(nil)

// RegisterCommand maps name to f. The first mapping for a name registers the
// Controller on the View; later mappings only replace the factory.
func (c *Controller) RegisterCommand(name string, f apis.CommandFactory) {
	if f == nil {
		return
	}
	if _, replaced := c.commands.Put(name, f); replaced {
		c.log.Debug().Str("command", name).Msg("command factory replaced")
		return
	}
	c.view.RegisterObserver(name, c.observer)
	c.rec.ComponentRegistered(apis.KindCommand)
	c.log.Debug().Str("command", name).Msg("command registered")
}

// ExecuteCommand creates the command mapped to n.Name() and executes it.
// Unmapped names are ignored.
func (c *Controller) ExecuteCommand(n apis.Notification) {
	if n == nil {
		return
	}
	name := n.Name()
	f, ok := c.commands.Lookup(name)
	if !ok {
		return
	}
	cmd := f()
	if cmd == nil {
		c.log.Warn().Str("command", name).Msg("command factory returned nil")
		return
	}
	if c.facade != nil {
		cmd.InitializeNotifier(c.facade)
	}

	c.log.Debug().Str("command", name).Msg("executing command")
	cmd.Execute(n)
	c.rec.CommandExecuted(name)
}

// HasCommand reports whether name has a command mapping.
func (c *Controller) HasCommand(name string) bool {
	return c.commands.Has(name)
}

// RemoveCommand drops the mapping for name and unregisters the Controller
// from the View for it. Absent names are ignored.
func (c *Controller) RemoveCommand(name string) {
	if _, ok := c.commands.Remove(name); !ok {
		return
	}
	c.view.RemoveObserver(name, c)
	c.rec.ComponentRemoved(apis.KindCommand)
	c.log.Debug().Str("command", name).Msg("command removed")
}

// Commands returns the mapped notification names, sorted.
func (c *Controller) Commands() []string {
	return c.commands.Names()
}
