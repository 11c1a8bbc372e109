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

package metrics

import "dirpx.dev/puremvc/apis"

// Nop is a Recorder that discards everything.
var Nop apis.Recorder = nop{}

type nop struct{}

func (nop) NotificationSent(string, int) {}
func (nop) ObserverAdded(string)         {}
func (nop) ObserverRemoved(string)       {}
func (nop) ComponentRegistered(string)   {}
func (nop) ComponentRemoved(string)      {}
func (nop) CommandExecuted(string)       {}

// Or returns r, or Nop when r is nil.
func Or(r apis.Recorder) apis.Recorder {
	if r == nil {
		return Nop
	}
	return r
}
