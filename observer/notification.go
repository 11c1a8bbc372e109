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
	"fmt"
	"strings"
	"sync"

	"dirpx.dev/puremvc/apis"
)

// Notification is the default apis.Notification.
type Notification struct {
	name string

	mu   sync.RWMutex
	body any
	typ  string
}

// Ensure Notification implements apis.Notification.
var _ apis.Notification = (*Notification)(nil)

// NewNotification constructs a notification. body and typ may be zero.
func NewNotification(name string, body any, typ string) *Notification {
	return &Notification{name: name, body: body, typ: typ}
}

// Name returns the notification name.
func (n *Notification) Name() string { return n.name }

// Body returns the payload.
func (n *Notification) Body() any {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.body
}

// SetBody replaces the payload.
func (n *Notification) SetBody(body any) {
	n.mu.Lock()
	n.body = body
	n.mu.Unlock()
}

// Type returns the type tag.
func (n *Notification) Type() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.typ
}

// SetType replaces the type tag.
func (n *Notification) SetType(typ string) {
	n.mu.Lock()
	n.typ = typ
	n.mu.Unlock()
}

// String renders name, body and type on separate lines.
func (n *Notification) String() string {
	body, typ := n.Body(), n.Type()

	var b strings.Builder
	b.WriteString("Notification Name: ")
	b.WriteString(n.name)
	b.WriteString("\nBody:")
	if body == nil {
		b.WriteString("null")
	} else {
		fmt.Fprintf(&b, "%v", body)
	}
	b.WriteString("\nType:")
	if typ == "" {
		b.WriteString("null")
	} else {
		b.WriteString(typ)
	}
	return b.String()
}
