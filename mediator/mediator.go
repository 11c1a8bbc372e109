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

// Package mediator provides the embeddable base Mediator.
//
// A concrete mediator embeds *Mediator and overrides the methods it needs:
//
//	type Login struct{ *mediator.Mediator }
//
//	func (m *Login) ListNotificationInterests() []string { return []string{"login.failed"} }
//	func (m *Login) HandleNotification(n apis.Notification) { ... }
//
// The View binds the observer to the outer value's HandleNotification, so
// the override is what gets called.
package mediator

import (
	"sync"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/observer"
)

// Name is the registration name used when none is given.
const Name = "Mediator"

// Mediator is the default apis.Mediator. Its hooks are no-ops and it has
// no interests.
type Mediator struct {
	observer.Notifier

	name string

	mu            sync.RWMutex
	viewComponent any
}

// Ensure Mediator implements apis.Mediator.
var _ apis.Mediator = (*Mediator)(nil)

// New constructs a Mediator. An empty name becomes Name.
func New(name string, viewComponent any) *Mediator {
	if name == "" {
		name = Name
	}
	return &Mediator{name: name, viewComponent: viewComponent}
}

// MediatorName returns the registration name.
func (m *Mediator) MediatorName() string { return m.name }

// ViewComponent returns the mediated component.
func (m *Mediator) ViewComponent() any {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.viewComponent
}

// SetViewComponent replaces the mediated component.
func (m *Mediator) SetViewComponent(c any) {
	m.mu.Lock()
	m.viewComponent = c
	m.mu.Unlock()
}

// ListNotificationInterests returns nil.
func (m *Mediator) ListNotificationInterests() []string { return nil }

// HandleNotification does nothing.
func (m *Mediator) HandleNotification(apis.Notification) {}

// OnRegister does nothing.
func (m *Mediator) OnRegister() {}

// OnRemove does nothing.
func (m *Mediator) OnRemove() {}
