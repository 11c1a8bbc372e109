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

package builder_test

import (
	"runtime"
	"sync"
	"testing"

	apis "dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/builder"
	"dirpx.dev/puremvc/config"
	"dirpx.dev/puremvc/observer"
	"dirpx.dev/puremvc/proxy"
)

// countingCommand increments a shared counter.
type countingCommand struct {
	observer.Notifier
	n *int
}

func (c *countingCommand) Execute(apis.Notification) { *c.n++ }

// TestBuildModel_Basic asserts that BuildModel returns a non-nil, empty,
// working Model.
func TestBuildModel_Basic(t *testing.T) {
	m := builder.New().BuildModel(config.DefaultConfig())
	if m == nil {
		t.Fatal("BuildModel returned nil")
	}

	m.RegisterProxy(proxy.New("p", 1))
	if !m.HasProxy("p") {
		t.Fatal("registered proxy not found")
	}
}

// TestBuildView_Basic asserts that BuildView returns a non-nil, working View.
func TestBuildView_Basic(t *testing.T) {
	v := builder.New().BuildView(config.DefaultConfig())
	if v == nil {
		t.Fatal("BuildView returned nil")
	}

	called := false
	v.RegisterObserver("n", observer.New(func(apis.Notification) { called = true }, t))
	v.NotifyObservers(observer.NewNotification("n", nil, ""))
	if !called {
		t.Fatal("observer not notified")
	}
}

// TestBuildController_UsesGivenView verifies the controller dispatches
// through the view it was built with, including one it did not build.
func TestBuildController_UsesGivenView(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	v := b.BuildView(cfg)

	c := b.BuildController(cfg, v, nil)
	if c == nil {
		t.Fatal("BuildController returned nil")
	}

	n := 0
	c.RegisterCommand("cmd", func() apis.Command { return &countingCommand{n: &n} })
	if !v.HasObservers("cmd") {
		t.Fatal("controller did not register on the given view")
	}

	v.NotifyObservers(observer.NewNotification("cmd", nil, ""))
	if n != 1 {
		t.Fatalf("command ran %d times, want 1", n)
	}
}

// TestBuild_IndependentInstances ensures each call yields a fresh layer.
func TestBuild_IndependentInstances(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()

	v1, v2 := b.BuildView(cfg), b.BuildView(cfg)
	v1.RegisterObserver("n", observer.New(nil, t))
	if v2.HasObservers("n") {
		t.Fatal("views share state")
	}

	m1, m2 := b.BuildModel(cfg), b.BuildModel(cfg)
	m1.RegisterProxy(proxy.New("p", nil))
	if m2.HasProxy("p") {
		t.Fatal("models share state")
	}
}

// TestBuild_Concurrency_Smoke hammers a built triad in parallel.
func TestBuild_Concurrency_Smoke(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	v := b.BuildView(cfg)
	c := b.BuildController(cfg, v, nil)

	var mu sync.Mutex
	n := 0
	c.RegisterCommand("cmd", func() apis.Command {
		return &lockedCommand{mu: &mu, n: &n}
	})

	workers := runtime.GOMAXPROCS(0) * 4
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := 0; i < 500; i++ {
				v.NotifyObservers(observer.NewNotification("cmd", nil, ""))
				_ = c.HasCommand("cmd")
			}
		}()
	}
	wg.Wait()

	if n != workers*500 {
		t.Fatalf("executions = %d, want %d", n, workers*500)
	}
}

type lockedCommand struct {
	observer.Notifier
	mu *sync.Mutex
	n  *int
}

func (c *lockedCommand) Execute(apis.Notification) {
	c.mu.Lock()
	*c.n++
	c.mu.Unlock()
}

// Compile-time check: builder.New() must satisfy apis.Builder.
var _ apis.Builder = builder.New()
