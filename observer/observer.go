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
	"dirpx.dev/puremvc/apis"
	uref "dirpx.dev/puremvc/utils/reflect"
)

// NotifyFunc is the callback half of an Observer.
type NotifyFunc func(n apis.Notification)

// Observer is the default apis.Observer: a bound callback plus the identity
// of its owner. The callback is resolved when the observer is created and
// never looked up by name.
type Observer struct {
	notify NotifyFunc
	ctx    any
}

// Ensure Observer implements apis.Observer.
var _ apis.Observer = (*Observer)(nil)

// New constructs an Observer. ctx is the owner identity used for removal.
func New(notify NotifyFunc, ctx any) *Observer {
	return &Observer{notify: notify, ctx: ctx}
}

// NotifyObserver invokes the callback. A nil callback is a no-op.
func (o *Observer) NotifyObserver(n apis.Notification) {
	if o.notify == nil {
		return
	}
	o.notify(n)
}

// NotifyContext returns the owner identity.
func (o *Observer) NotifyContext() any { return o.ctx }

// CompareNotifyContext reports whether obj is the same object as the owner.
func (o *Observer) CompareNotifyContext(obj any) bool {
	return uref.SameIdentity(o.ctx, obj)
}
