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

// Mediator coordinates a view component. It declares the notification names
// it wants and receives all of them on a single handler.
type Mediator interface {
	Notifier

	// MediatorName returns the registration name.
	MediatorName() string
	// ViewComponent returns the mediated component, or nil.
	ViewComponent() any
	// SetViewComponent replaces the mediated component.
	SetViewComponent(c any)
	// ListNotificationInterests returns the names to route to HandleNotification.
	// It must return the same list at registration and at removal.
	ListNotificationInterests() []string
	// HandleNotification receives every notification listed in the interests.
	HandleNotification(n Notification)
	// OnRegister is called after the mediator and its interests are registered.
	OnRegister()
	// OnRemove is called after the mediator and its interests are removed.
	OnRemove()
}

// Proxy is a named data holder.
type Proxy interface {
	Notifier

	// ProxyName returns the registration name.
	ProxyName() string
	// Data returns the held data, or nil.
	Data() any
	// SetData replaces the held data.
	SetData(data any)
	// OnRegister is called after the proxy is registered.
	OnRegister()
	// OnRemove is called after the proxy is removed.
	OnRemove()
}

// Command is a one-shot unit of logic created per notification.
type Command interface {
	Notifier

	// Execute runs the command for n.
	Execute(n Notification)
}

// CommandFactory creates a fresh Command for each execution.
type CommandFactory func() Command
