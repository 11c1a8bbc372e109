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

package builder

import (
	"dirpx.dev/puremvc/apis"
	"dirpx.dev/puremvc/controller"
	"dirpx.dev/puremvc/model"
	"dirpx.dev/puremvc/view"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildModel builds and returns a new, empty apis.Model for cfg.
func (b *builder) BuildModel(cfg apis.Config) apis.Model {
	return model.New(cfg)
}

// BuildView builds and returns a new, empty apis.View for cfg.
func (b *builder) BuildView(cfg apis.Config) apis.View {
	return view.New(cfg)
}

// BuildController builds and returns a new apis.Controller dispatching
// through v. Commands it creates are bound to f.
func (b *builder) BuildController(cfg apis.Config, v apis.View, f apis.Facade) apis.Controller {
	return controller.New(cfg, v, f)
}
