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

// Observer is a registered (callback, notify context) pair.
//
// The notify context is an identity only. Two observers belong to the same
// owner when their contexts refer to the same object; no structural
// comparison is ever performed.
type Observer interface {
	// NotifyObserver invokes the callback with n.
	NotifyObserver(n Notification)
	// NotifyContext returns the owner identity.
	NotifyContext() any
	// CompareNotifyContext reports whether obj is the owner identity.
	CompareNotifyContext(obj any) bool
}

// Notifier is implemented by every actor that may send notifications:
// mediators, proxies and commands. The Facade wires the notifier before the
// actor is registered or executed.
type Notifier interface {
	// SendNotification builds a notification and dispatches it through the Facade.
	SendNotification(name string, body any, typ string)
	// InitializeNotifier binds the actor to f.
	InitializeNotifier(f Facade)
}
