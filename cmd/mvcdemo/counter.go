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

package main

import (
	"fmt"
	"io"

	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/command"
	"dirpx.dev/puremvc/mediator"
	"dirpx.dev/puremvc/proxy"
)

// Notification names of the counter application.
const (
	NoteStartup   = "startup"
	NoteIncrement = "counter.increment"
	NoteChanged   = "counter.changed"
)

// Registration names.
const (
	CounterProxyName    = "CounterProxy"
	ConsoleMediatorName = "ConsoleMediator"
)

// startupBody is the body of NoteStartup.
type startupBody struct {
	out io.Writer
}

// CounterProxy holds an int and announces every change.
type CounterProxy struct {
	*proxy.Proxy
}

// NewCounterProxy constructs a counter starting at zero.
func NewCounterProxy() *CounterProxy {
	return &CounterProxy{Proxy: proxy.New(CounterProxyName, 0)}
}

// Value returns the current count.
func (p *CounterProxy) Value() int {
	v, _ := p.Data().(int)
	return v
}

// Add increments the count by n and sends NoteChanged with the new value.
func (p *CounterProxy) Add(n int) {
	v := p.Value() + n
	p.SetData(v)
	p.SendNotification(NoteChanged, v, "")
}

// ConsoleMediator prints counter changes.
type ConsoleMediator struct {
	*mediator.Mediator
}

// NewConsoleMediator constructs a mediator writing to out.
func NewConsoleMediator(out io.Writer) *ConsoleMediator {
	return &ConsoleMediator{Mediator: mediator.New(ConsoleMediatorName, out)}
}

// ListNotificationInterests implements apis.Mediator.
func (m *ConsoleMediator) ListNotificationInterests() []string {
	return []string{NoteChanged}
}

// HandleNotification implements apis.Mediator.
func (m *ConsoleMediator) HandleNotification(n apis.Notification) {
	out, ok := m.ViewComponent().(io.Writer)
	if !ok {
		return
	}
	switch n.Name() {
	case NoteChanged:
		_, _ = fmt.Fprintf(out, "count=%v\n", n.Body())
	}
}

// prepModelCommand registers the counter proxy.
type prepModelCommand struct {
	command.SimpleCommand
}

func (c *prepModelCommand) Execute(apis.Notification) {
	c.Facade().RegisterProxy(NewCounterProxy())
}

// prepViewCommand registers the console mediator on the writer in the
// startup body.
type prepViewCommand struct {
	command.SimpleCommand
}

func (c *prepViewCommand) Execute(n apis.Notification) {
	body, ok := n.Body().(*startupBody)
	if !ok || body.out == nil {
		return
	}
	c.Facade().RegisterMediator(NewConsoleMediator(body.out))
}

// prepControllerCommand maps the increment notification.
type prepControllerCommand struct {
	command.SimpleCommand
}

func (c *prepControllerCommand) Execute(apis.Notification) {
	c.Facade().RegisterCommand(NoteIncrement, func() apis.Command { return &incrementCommand{} })
}

// incrementCommand adds the int body (1 if absent) to the counter.
type incrementCommand struct {
	command.SimpleCommand
}

func (c *incrementCommand) Execute(n apis.Notification) {
	p, ok := c.Facade().RetrieveProxy(CounterProxyName).(*CounterProxy)
	if !ok {
		return
	}
	by, ok := n.Body().(int)
	if !ok {
		by = 1
	}
	p.Add(by)
}

// newStartupCommand prepares model, view and controller in that order.
func newStartupCommand() apis.Command {
	return command.NewMacro(
		func() apis.Command { return &prepModelCommand{} },
		func() apis.Command { return &prepViewCommand{} },
		func() apis.Command { return &prepControllerCommand{} },
	)
}

// runCounter boots the counter application on f, sends count increments
// and returns the final value. Startup is removed once it ran.
func runCounter(f apis.Facade, out io.Writer, count int) int {
	f.RegisterCommand(NoteStartup, newStartupCommand)
	f.SendNotification(NoteStartup, &startupBody{out: out}, "")
	f.RemoveCommand(NoteStartup)

	for range count {
		f.SendNotification(NoteIncrement, 1, "")
	}

	p, ok := f.RetrieveProxy(CounterProxyName).(*CounterProxy)
	if !ok {
		return 0
	}
	return p.Value()
}
