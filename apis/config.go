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

import "github.com/rs/zerolog"

// Config carries the knobs shared by every layer of a core.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Name identifies the core in logs and metrics.
	Name string

	// Logger receives structured registry events. The zero value is replaced
	// by zerolog.Nop() in config.NewConfig.
	Logger zerolog.Logger

	// DetectDuplicates makes the View warn when the same notify context is
	// registered twice for one notification name. Delivery is not changed.
	DetectDuplicates bool

	// Recorder receives instrumentation events. Nil disables instrumentation.
	Recorder Recorder
}

// Recorder is an instrumentation sink. Implementations must be safe for
// concurrent use and must not call back into the core.
type Recorder interface {
	// NotificationSent is called once per NotifyObservers with the snapshot size.
	NotificationSent(name string, observers int)
	// ObserverAdded is called after an observer is appended for name.
	ObserverAdded(name string)
	// ObserverRemoved is called after an observer is removed for name.
	ObserverRemoved(name string)
	// ComponentRegistered is called when a mediator, proxy or command mapping is added.
	ComponentRegistered(kind string)
	// ComponentRemoved is called when a mediator, proxy or command mapping is removed.
	ComponentRemoved(kind string)
	// CommandExecuted is called after a command for name ran.
	CommandExecuted(name string)
}

// Component kinds reported to Recorder.
const (
	KindMediator = "mediator"
	KindProxy    = "proxy"
	KindCommand  = "command"
)
