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

// Builder composes the Model, View and Controller of a Facade from a Config.
// Custom builders replace any layer, e.g. to decorate the View.
type Builder interface {
	// BuildModel constructs the proxy registry.
	BuildModel(cfg Config) Model
	// BuildView constructs the notification bus.
	BuildView(cfg Config) View
	// BuildController constructs the command dispatcher over view.
	// f is handed to commands so they can send notifications; it may be nil.
	BuildController(cfg Config, view View, f Facade) Controller
}
