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

package puremvc_test

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/puremvc"
	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/config"
	"dirpx.dev/puremvc/facade"
)

func reset(t *testing.T) {
	t.Helper()
	puremvc.Reset()
	t.Cleanup(puremvc.Reset)
}

func TestInit(t *testing.T) {
	reset(t)

	f := facade.New(config.NewConfig(config.WithName("first")))
	require.NoError(t, puremvc.Init(f))
	assert.Same(t, f, puremvc.Facade())

	other := facade.New(config.NewConfig(config.WithName("second")))
	assert.ErrorIs(t, puremvc.Init(other), puremvc.ErrAlreadyInitialized)
	assert.Same(t, f, puremvc.Facade(), "second Init must not replace the facade")
}

func TestInit_Nil(t *testing.T) {
	reset(t)

	assert.ErrorIs(t, puremvc.Init(nil), puremvc.ErrNilFacade)
	assert.Nil(t, puremvc.Facade())
}

func TestInstance_DefaultFactory(t *testing.T) {
	reset(t)

	f := puremvc.Instance(nil)
	require.NotNil(t, f)
	assert.Same(t, f, puremvc.Instance(nil))
	assert.Equal(t, config.DefaultName, f.(*facade.Facade).Config().Name)
}

func TestInstance_AfterInit(t *testing.T) {
	reset(t)

	f := facade.New(config.DefaultConfig())
	require.NoError(t, puremvc.Init(f))

	got := puremvc.Instance(func() apis.Facade {
		t.Fatal("factory must not run once a facade is published")
		return nil
	})
	assert.Same(t, f, got)
}

func TestInstance_NilResultPanics(t *testing.T) {
	reset(t)

	assert.PanicsWithValue(t, puremvc.ErrNilFacade, func() {
		puremvc.Instance(func() apis.Facade { return nil })
	})
	assert.Nil(t, puremvc.Facade())
}

func TestReset(t *testing.T) {
	reset(t)

	first := puremvc.Instance(nil)
	puremvc.Reset()
	assert.Nil(t, puremvc.Facade())

	second := puremvc.Instance(nil)
	assert.NotSame(t, first, second)
}

func TestInstance_Concurrency_FactoryOnce(t *testing.T) {
	reset(t)

	var calls atomic.Int32
	factory := func() apis.Facade {
		calls.Add(1)
		return facade.New(config.DefaultConfig())
	}

	workers := runtime.GOMAXPROCS(0) * 8
	got := make([]apis.Facade, workers)
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := range workers {
		go func() {
			defer wg.Done()
			<-start
			got[i] = puremvc.Instance(factory)
		}()
	}
	close(start)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for i := range got {
		assert.Same(t, got[0], got[i])
	}
}
