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

// Package view implements the notification bus: an ordered observer list per
// notification name plus the mediator registry.
//
// Dispatch is synchronous on the caller's goroutine. NotifyObservers copies
// the observer list for the name under a read lock and releases the lock
// before calling anyone, so observers may register, remove or notify
// (including for the name being dispatched) without affecting the dispatch
// in progress: every observer present when NotifyObservers was called is
// invoked exactly once, and observers added during the dispatch are not.
package view

import (
	"slices"
	"sync"

	"github.com/rs/zerolog"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/metrics"
	"dirpx.dev/puremvc/observer"
	"dirpx.dev/puremvc/registry"
)

// New constructs an empty View for cfg.
func New(cfg apis.Config) *View {
	return &View{
		cfg: cfg,
		log: cfg.Logger.With().
			Str("core", cfg.Name).
			Str("component", "view").
			Logger(),
		rec:       metrics.Or(cfg.Recorder),
		observers: make(map[string][]apis.Observer),
		mediators: registry.New[apis.Mediator](),
	}
}

// View is the default apis.View.
type View struct {
	cfg apis.Config
	log zerolog.Logger
	rec apis.Recorder

	// mu guards observers. It is never held while user code runs.
	mu sync.RWMutex
	// observers maps a notification name to a non-empty, ordered list.
	observers map[string][]apis.Observer

	mediators *registry.Registry[apis.Mediator]
}

// Ensure View implements apis.View.
var _ apis.View = (*View)(nil)

// RegisterObserver appends o to the observers of name.
// There is no uniqueness check: registering the same owner twice for a name
// delivers twice.
func (v *View) RegisterObserver(name string, o apis.Observer) {
	if o == nil {
		return
	}

	v.mu.Lock()
	list := v.observers[name]
	dup := v.cfg.DetectDuplicates && indexOf(list, o.NotifyContext()) >= 0
	v.observers[name] = append(list, o)
	v.mu.Unlock()

	if dup {
		v.log.Warn().
			Str("notification", name).
			Msg("observer registered twice for the same owner; it will be notified twice")
	}
	v.rec.ObserverAdded(name)
	v.log.Debug().Str("notification", name).Msg("observer registered")
}

// NotifyObservers calls, in registration order, every observer registered
// for n.Name() when the call started.
func (v *View) NotifyObservers(n apis.Notification) {
	if n == nil {
		return
	}
	name := n.Name()

	v.mu.RLock()
	snapshot := slices.Clone(v.observers[name])
	v.mu.RUnlock()

	v.rec.NotificationSent(name, len(snapshot))
	if len(snapshot) == 0 {
		return
	}

	v.log.Debug().
		Str("notification", name).
		Int("observers", len(snapshot)).
		Msg("notifying observers")

	for _, o := range snapshot {
		o.NotifyObserver(n)
	}
}

// RemoveObserver removes the first observer of name whose notify context is
// ctx. The name is dropped once its last observer is gone.
func (v *View) RemoveObserver(name string, ctx any) {
	v.mu.Lock()
	list, ok := v.observers[name]
	if !ok {
		v.mu.Unlock()
		return
	}
	i := indexOf(list, ctx)
	if i < 0 {
		v.mu.Unlock()
		return
	}
	// slices.Delete shifts in place; snapshots taken by NotifyObservers are
	// clones and never alias this backing array.
	list = slices.Delete(list, i, i+1)
	if len(list) == 0 {
		delete(v.observers, name)
	} else {
		v.observers[name] = list
	}
	v.mu.Unlock()

	v.rec.ObserverRemoved(name)
	v.log.Debug().Str("notification", name).Msg("observer removed")
}

// HasObservers reports whether name has at least one observer.
func (v *View) HasObservers(name string) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.observers[name]
	return ok
}

// ObserverCount returns the number of observers registered for name.
func (v *View) ObserverCount(name string) int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.observers[name])
}

// RegisterMediator stores m and routes its interests to m.HandleNotification.
// A mediator whose name is already registered is ignored; remove it first
// to replace it.
//
// One Observer is shared by all interests of m, with m as its context.
// OnRegister runs last, after every interest is in place.
func (v *View) RegisterMediator(m apis.Mediator) {
	if m == nil {
		return
	}
	name := m.MediatorName()
	if !v.mediators.Register(name, m) {
		v.log.Debug().Str("mediator", name).Msg("mediator already registered")
		return
	}

	interests := m.ListNotificationInterests()
	if len(interests) > 0 {
		o := observer.New(m.HandleNotification, m)
		for _, interest := range interests {
			v.RegisterObserver(interest, o)
		}
	}

	v.rec.ComponentRegistered(apis.KindMediator)
	v.log.Debug().
		Str("mediator", name).
		Strs("interests", interests).
		Msg("mediator registered")

	m.OnRegister()
}

// RetrieveMediator returns the mediator registered under name, or nil.
func (v *View) RetrieveMediator(name string) apis.Mediator {
	m, _ := v.mediators.Lookup(name)
	return m
}

// RemoveMediator unregisters the mediator under name together with all of its
// interests, calls OnRemove and returns it. An absent name returns nil.
func (v *View) RemoveMediator(name string) apis.Mediator {
	// Claim the entry first so concurrent removals run OnRemove once.
	m, ok := v.mediators.Remove(name)
	if !ok {
		return nil
	}

	for _, interest := range m.ListNotificationInterests() {
		v.RemoveObserver(interest, m)
	}

	v.rec.ComponentRemoved(apis.KindMediator)
	v.log.Debug().Str("mediator", name).Msg("mediator removed")

	m.OnRemove()
	return m
}

// HasMediator reports whether a mediator is registered under name.
func (v *View) HasMediator(name string) bool {
	return v.mediators.Has(name)
}

// Mediators returns the registered mediator names, sorted.
func (v *View) Mediators() []string {
	return v.mediators.Names()
}

// indexOf returns the index of the first observer owned by ctx, or -1.
func indexOf(list []apis.Observer, ctx any) int {
	for i, o := range list {
		if o.CompareNotifyContext(ctx) {
			return i
		}
	}
	return -1
}
