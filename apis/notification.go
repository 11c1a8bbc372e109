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

package apis

// Notification is the envelope carried from a sender to every interested
// observer. Name is fixed at construction; Body and Type are opaque to the
// framework.
type Notification interface {
	// Name returns the notification name used for routing.
	Name() string
	// Body returns the payload, or nil.
	Body() any
	// SetBody replaces the payload.
	SetBody(body any)
	// Type returns the optional type tag, or "".
	Type() string
	// SetType replaces the type tag.
	SetType(typ string)
	// String renders the notification for logs and debugging.
	String() string
}
