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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/config"
	"dirpx.dev/puremvc/model"
	"dirpx.dev/puremvc/proxy"
)

// hookProxy counts its lifecycle calls.
type hookProxy struct {
	*proxy.Proxy
	registered, removed int
}

func (p *hookProxy) OnRegister() { p.registered++ }
func (p *hookProxy) OnRemove()   { p.removed++ }

func newModel() *model.Model { return model.New(config.DefaultConfig()) }

func TestRegisterAndRetrieveProxy(t *testing.T) {
	m := newModel()
	m.RegisterProxy(proxy.New("colors", []string{"red", "green", "blue"}))

	p := m.RetrieveProxy("colors")

	if assert.NotNil(t, p) {
		assert.Equal(t, []string{"red", "green", "blue"}, p.Data())
	}
}

func TestRegisterAndRemoveProxy(t *testing.T) {
	m := newModel()
	hp := &hookProxy{Proxy: proxy.New("sizes", []int{7, 13, 21})}
	m.RegisterProxy(hp)
	assert.Equal(t, 1, hp.registered)

	removed := m.RemoveProxy("sizes")

	assert.Same(t, hp, removed)
	assert.Equal(t, 1, hp.removed)
	assert.Nil(t, m.RetrieveProxy("sizes"))
	assert.False(t, m.HasProxy("sizes"))

	assert.Nil(t, m.RemoveProxy("sizes"), "second removal returns nil")
	assert.Equal(t, 1, hp.removed)
}

func TestHasProxy(t *testing.T) {
	m := newModel()
	m.RegisterProxy(proxy.New("aces", []string{"clubs", "spades", "hearts", "diamonds"}))

	assert.True(t, m.HasProxy("aces"))
	m.RemoveProxy("aces")
	assert.False(t, m.HasProxy("aces"))
}

func TestRegisterProxy_ReplacesSameName(t *testing.T) {
	m := newModel()
	first := &hookProxy{Proxy: proxy.New("dup", 1)}
	second := &hookProxy{Proxy: proxy.New("dup", 2)}

	m.RegisterProxy(first)
	m.RegisterProxy(second)

	assert.Same(t, second, m.RetrieveProxy("dup"))
	assert.Equal(t, 1, second.registered)
	assert.Zero(t, first.removed, "replaced proxy is not notified")
	assert.Equal(t, []string{"dup"}, m.Proxies())
}

func TestRegisterProxy_Nil(t *testing.T) {
	m := newModel()
	assert.NotPanics(t, func() { m.RegisterProxy(nil) })
	assert.Empty(t, m.Proxies())
}

// This ensures the interface is satisfied; not a test but a compile-time check.
var _ apis.Model = model.New(config.DefaultConfig())
