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

package apis

// View routes notifications to observers and owns the mediator registry.
//
// All methods are safe for concurrent use. Observers invoked by
// NotifyObservers may call back into any method, including removing
// themselves for the name being dispatched.
type View interface {
	// RegisterObserver appends o to the observers of name.
	RegisterObserver(name string, o Observer)
	// NotifyObservers calls every observer registered for n.Name() at the
	// moment of the call, in registration order.
	NotifyObservers(n Notification)
	// RemoveObserver removes the first observer of name whose notify context is ctx.
	RemoveObserver(name string, ctx any)
	// HasObservers reports whether name has at least one observer.
	HasObservers(name string) bool
	// ObserverCount returns the number of observers registered for name.
	ObserverCount(name string) int

	// RegisterMediator registers m and its interests. No-op if the name is taken.
	RegisterMediator(m Mediator)
	// RetrieveMediator returns the mediator registered under name, or nil.
	RetrieveMediator(name string) Mediator
	// RemoveMediator removes the mediator and its interests, returning it or nil.
	RemoveMediator(name string) Mediator
	// HasMediator reports whether a mediator is registered under name.
	HasMediator(name string) bool
}

// Model is the proxy registry.
type Model interface {
	// RegisterProxy stores p under its name, replacing any previous proxy.
	RegisterProxy(p Proxy)
	// RetrieveProxy returns the proxy registered under name, or nil.
	RetrieveProxy(name string) Proxy
	// RemoveProxy removes the proxy registered under name, returning it or nil.
	RemoveProxy(name string) Proxy
	// HasProxy reports whether a proxy is registered under name.
	HasProxy(name string) bool
}

// Controller maps notification names to command factories.
type Controller interface {
	// RegisterCommand maps name to f, replacing any previous factory.
	RegisterCommand(name string, f CommandFactory)
	// ExecuteCommand creates and executes the command mapped to n.Name().
	ExecuteCommand(n Notification)
	// RemoveCommand drops the mapping for name.
	RemoveCommand(name string)
	// HasCommand reports whether name has a command mapping.
	HasCommand(name string) bool
}

// Facade is the single access point to a Model, View and Controller triad.
type Facade interface {
	RegisterCommand(name string, f CommandFactory)
	RemoveCommand(name string)
	HasCommand(name string) bool

	RegisterProxy(p Proxy)
	RetrieveProxy(name string) Proxy
	RemoveProxy(name string) Proxy
	HasProxy(name string) bool

	RegisterMediator(m Mediator)
	RetrieveMediator(name string) Mediator
	RemoveMediator(name string) Mediator
	HasMediator(name string) bool

	// SendNotification builds a notification and dispatches it.
	SendNotification(name string, body any, typ string)
	// NotifyObservers dispatches n through the View.
	NotifyObservers(n Notification)
}
