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

package observer

import (
	"sync/atomic"

	"github.com/rs/zerolog"

	"dirpx.dev/puremvc/apis"
)

// Notifier is embedded by mediators, proxies and commands to send
// notifications through the Facade they are registered with.
//
// The zero value is ready to use; SendNotification on a notifier that was
// never initialized logs a warning to the logger installed with SetLogger
// and drops the notification.
type Notifier struct {
	facade atomic.Pointer[facadeRef]
}

// facadeRef boxes the interface so it fits atomic.Pointer.
type facadeRef struct{ f apis.Facade }

// InitializeNotifier binds the notifier to f. Calling it again rebinds.
func (n *Notifier) InitializeNotifier(f apis.Facade) {
	if f == nil {
		n.facade.Store(nil)
		return
	}
	n.facade.Store(&facadeRef{f: f})
}

// Facade returns the bound Facade, or nil.
func (n *Notifier) Facade() apis.Facade {
	if r := n.facade.Load(); r != nil {
		return r.f
	}
	return nil
}

// SendNotification dispatches a new notification through the bound Facade.
func (n *Notifier) SendNotification(name string, body any, typ string) {
	f := n.Facade()
	if f == nil {
		zlog.Load().Warn().
			Str("notification", name).
			Msg("notifier is not initialized; notification dropped")
		return
	}
	f.SendNotification(name, body, typ)
}

// zlog is the logger used by uninitialized notifiers, which have no core
// config to take one from.
var zlog atomic.Pointer[zerolog.Logger]

func init() {
	l := zerolog.Nop()
	zlog.Store(&l)
}

// SetLogger installs the logger used by notifiers without a Facade.
func SetLogger(l zerolog.Logger) { zlog.Store(&l) }
