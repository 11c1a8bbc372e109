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

// Package model implements the proxy registry.
package model

import (
	"github.com/rs/zerolog"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/metrics"
	"dirpx.dev/puremvc/registry"
)

// New constructs an empty Model for cfg.
func New(cfg apis.Config) *Model {
	return &Model{
		log: cfg.Logger.With().
			Str("core", cfg.Name).
			Str("component", "model").
			Logger(),
		rec:     metrics.Or(cfg.Recorder),
		proxies: registry.New[apis.Proxy](),
	}
}

// Model is the default apis.Model.
type Model struct {
	log     zerolog.Logger
	rec     apis.Recorder
	proxies *registry.Registry[apis.Proxy]
}

// Ensure Model implements apis.Model.
var _ apis.Model = (*Model)(nil)

// RegisterProxy stores p under p.ProxyName() and calls OnRegister.
// A proxy already registered under that name is replaced without OnRemove.
func (m *Model) RegisterProxy(p apis.Proxy) {
	if p == nil {
		return
	}
	name := p.ProxyName()
	if _, replaced := m.proxies.Put(name, p); replaced {
		m.log.Debug().Str("proxy", name).Msg("proxy replaced")
	} else {
		m.rec.ComponentRegistered(apis.KindProxy)
		m.log.Debug().Str("proxy", name).Msg("proxy registered")
	}
	p.OnRegister()
}

// RetrieveProxy returns the proxy registered under name, or nil.
func (m *Model) RetrieveProxy(name string) apis.Proxy {
	p, _ := m.proxies.Lookup(name)
	return p
}

// HasProxy reports whether a proxy is registered under name.
func (m *Model) HasProxy(name string) bool {
	return m.proxies.Has(name)
}

// RemoveProxy removes the proxy registered under name, calls OnRemove and
// returns it. An absent name returns nil.
func (m *Model) RemoveProxy(name string) apis.Proxy {
	p, ok := m.proxies.Remove(name)
	if !ok {
		return nil
	}
	m.rec.ComponentRemoved(apis.KindProxy)
	m.log.Debug().Str("proxy", name).Msg("proxy removed")
	p.OnRemove()
	return p
}

// Proxies returns the registered proxy names, sorted.
func (m *Model) Proxies() []string {
	return m.proxies.Names()
}
