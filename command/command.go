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

// Package command provides the embeddable SimpleCommand and the
// MacroCommand that runs a fixed list of subcommands.
package command

import (
	"sync"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/observer"
)

// SimpleCommand is the base for single-step commands. Embed it and
// override Execute.
type SimpleCommand struct {
	observer.Notifier
}

// Ensure SimpleCommand implements apis.Command.
var _ apis.Command = (*SimpleCommand)(nil)

// Execute does nothing.
func (c *SimpleCommand) Execute(apis.Notification) {}

// MacroCommand executes its subcommands in the order they were added.
// Each subcommand is created fresh from its factory, bound to the macro's
// Facade and executed with the same notification. The list is consumed, so
// a macro runs its subcommands once.
type MacroCommand struct {
	observer.Notifier

	mu   sync.Mutex
	subs []apis.CommandFactory
}

// Ensure MacroCommand implements apis.Command.
var _ apis.Command = (*MacroCommand)(nil)

// NewMacro constructs a MacroCommand with the given subcommands.
func NewMacro(subs ...apis.CommandFactory) *MacroCommand {
	m := &MacroCommand{}
	for _, f := range subs {
		m.AddSubCommand(f)
	}
	return m
}

// AddSubCommand appends f to the subcommands. Nil factories are ignored.
func (m *MacroCommand) AddSubCommand(f apis.CommandFactory) {
	if f == nil {
		return
	}
	m.mu.Lock()
	m.subs = append(m.subs, f)
	m.mu.Unlock()
}

// Execute runs every subcommand, first added first.
func (m *MacroCommand) Execute(n apis.Notification) {
	m.mu.Lock()
	subs := m.subs
	m.subs = nil
	m.mu.Unlock()

	f := m.Facade()
	for _, factory := range subs {
		cmd := factory()
		if cmd == nil {
			continue
		}
		if f != nil {
			cmd.InitializeNotifier(f)
		}
		cmd.Execute(n)
	}
}
