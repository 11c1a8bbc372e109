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

// Package proxy provides the embeddable base Proxy.
package proxy

import (
	"sync"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/observer"
)

// Name is the registration name used when none is given.
const Name = "Proxy"

// Proxy is the default apis.Proxy: a named, concurrency-safe data holder
// with no-op lifecycle hooks.
type Proxy struct {
	observer.Notifier

	name string

	mu   sync.RWMutex
	data any
}

// Ensure Proxy implements apis.Proxy.
var _ apis.Proxy = (*Proxy)(nil)

// New constructs a Proxy. An empty name becomes Name.
func New(name string, data any) *Proxy {
	if name == "" {
		name = Name
	}
	return &Proxy{name: name, data: data}
}

// ProxyName returns the registration name.
func (p *Proxy) ProxyName() string { return p.name }

// Data returns the held data.
func (p *Proxy) Data() any {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.data
}

// SetData replaces the held data.
func (p *Proxy) SetData(data any) {
	p.mu.Lock()
	p.data = data
	p.mu.Unlock()
}

// OnRegister does nothing.
func (p *Proxy) OnRegister() {}

// OnRemove does nothing.
func (p *Proxy) OnRemove() {}
