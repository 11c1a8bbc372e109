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

package observer_test

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/observer"
)

func TestNotification_Accessors(t *testing.T) {
	n := observer.NewNotification("TestNote", 5, "TestNoteType")

	assert.Equal(t, "TestNote", n.Name())
	assert.Equal(t, 5, n.Body())
	assert.Equal(t, "TestNoteType", n.Type())

	n.SetBody([]string{"x"})
	n.SetType("other")
	assert.Equal(t, []string{"x"}, n.Body())
	assert.Equal(t, "other", n.Type())
}

func TestNotification_String(t *testing.T) {
	n := observer.NewNotification("TestNote", []int{1, 3, 5}, "TestType")
	assert.Equal(t, "Notification Name: TestNote\nBody:[1 3 5]\nType:TestType", n.String())

	empty := observer.NewNotification("Empty", nil, "")
	assert.Equal(t, "Notification Name: Empty\nBody:null\nType:null", empty.String())
}

type ctxOwner struct{ _ int }

func TestObserver_Notify(t *testing.T) {
	var got apis.Notification
	o := observer.New(func(n apis.Notification) { got = n }, &ctxOwner{})

	n := observer.NewNotification("ObserverTestNote", 10, "")
	o.NotifyObserver(n)

	assert.Same(t, n, got)
}

func TestObserver_NilCallback(t *testing.T) {
	o := observer.New(nil, nil)
	assert.NotPanics(t, func() { o.NotifyObserver(observer.NewNotification("x", nil, "")) })
}

func TestObserver_CompareNotifyContext(t *testing.T) {
	ctx := &ctxOwner{}
	o := observer.New(nil, ctx)

	assert.Same(t, ctx, o.NotifyContext())
	assert.True(t, o.CompareNotifyContext(ctx))
	assert.False(t, o.CompareNotifyContext(&ctxOwner{}))
	assert.False(t, o.CompareNotifyContext(nil))
}

// recordingFacade captures SendNotification calls.
type recordingFacade struct {
	apis.Facade
	sent []string
}

func (f *recordingFacade) SendNotification(name string, _ any, _ string) {
	f.sent = append(f.sent, name)
}

func TestNotifier_SendsThroughFacade(t *testing.T) {
	var n observer.Notifier
	f := &recordingFacade{}

	n.InitializeNotifier(f)
	n.SendNotification("hello", nil, "")

	assert.Same(t, f, n.Facade())
	assert.Equal(t, []string{"hello"}, f.sent)
}

func TestNotifier_Uninitialized(t *testing.T) {
	var buf bytes.Buffer
	observer.SetLogger(zerolog.New(&buf))
	t.Cleanup(func() { observer.SetLogger(zerolog.Nop()) })

	var n observer.Notifier
	assert.Nil(t, n.Facade())
	assert.NotPanics(t, func() { n.SendNotification("lost", nil, "") })
	assert.Contains(t, buf.String(), "not initialized")
	assert.Contains(t, buf.String(), "lost")
}

func TestNotifier_Rebind(t *testing.T) {
	var n observer.Notifier
	a, b := &recordingFacade{}, &recordingFacade{}

	n.InitializeNotifier(a)
	n.InitializeNotifier(b)
	n.SendNotification("x", nil, "")
	assert.Empty(t, a.sent)
	assert.Equal(t, []string{"x"}, b.sent)

	n.InitializeNotifier(nil)
	assert.Nil(t, n.Facade())
}
