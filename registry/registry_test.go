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

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/puremvc/registry"
)

func TestRegister_FirstWinsAndLookup(t *testing.T) {
	reg := registry.New[int]()

	require.True(t, reg.Register("a", 1))
	// re-register under a taken name is ignored
	assert.False(t, reg.Register("a", 2))

	v, ok := reg.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, reg.Count())
}

func TestPut_Replaces(t *testing.T) {
	reg := registry.New[string]()

	prev, replaced := reg.Put("k", "first")
	assert.False(t, replaced)
	assert.Empty(t, prev)

	prev, replaced = reg.Put("k", "second")
	assert.True(t, replaced)
	assert.Equal(t, "first", prev)

	v, _ := reg.Lookup("k")
	assert.Equal(t, "second", v)
	assert.Equal(t, 1, reg.Count())
}

func TestRemove(t *testing.T) {
	reg := registry.New[int]()
	reg.Register("a", 1)

	v, ok := reg.Remove("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.False(t, reg.Has("a"))
	assert.Zero(t, reg.Count())

	// second removal is a no-op
	v, ok = reg.Remove("a")
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Zero(t, reg.Count())
}

func TestLookupUnknown(t *testing.T) {
	reg := registry.New[*int]()

	v, ok := reg.Lookup("missing")
	assert.False(t, ok)
	assert.Nil(t, v)
	assert.False(t, reg.Has("missing"))
}

func TestEntriesNamesAndReset(t *testing.T) {
	reg := registry.New[int]()
	reg.Register("b", 2)
	reg.Register("a", 1)
	reg.Put("c", 3)

	assert.Equal(t, []registry.Entry[int]{
		{Name: "a", Value: 1},
		{Name: "b", Value: 2},
		{Name: "c", Value: 3},
	}, reg.Entries())
	assert.Equal(t, []string{"a", "b", "c"}, reg.Names())
	assert.Equal(t, 3, reg.Count())

	reg.Reset()

	assert.Zero(t, reg.Count())
	assert.Empty(t, reg.Entries())
	assert.False(t, reg.Has("a"))
}

func TestEmptyNameIsAName(t *testing.T) {
	reg := registry.New[int]()

	assert.True(t, reg.Register("", 7))
	v, ok := reg.Lookup("")
	assert.True(t, ok)
	assert.Equal(t, 7, v)
}
