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

// Package puremvc is a Model-View-Controller micro-framework built around a
// single synchronous notification bus.
//
// # Design
//
// A core is a triad of registries behind a Facade:
//
//   - Model (package model): name -> Proxy. Proxies hold data and talk to
//     whatever backs it.
//
//   - View (package view): the notification bus. It keeps, per
//     notification name, an ordered list of observers, plus a registry of
//     Mediators. A Mediator declares the names it is interested in and
//     receives all of them on one handler.
//
//   - Controller (package controller): name -> command factory. For each
//     mapped name the Controller observes the View; on dispatch it creates a
//     fresh Command and executes it.
//
//   - Facade (package facade): owns one Model, View and Controller, built by
//     an apis.Builder, and delegates to them. SendNotification is the usual
//     entry point for application code.
//
// Mediators, proxies and commands embed observer.Notifier, which the Facade
// binds when they are registered or executed, so they can send notifications
// themselves.
//
// # Dispatch
//
// Dispatch is synchronous: SendNotification returns after every observer has
// run, on the caller's goroutine. The View copies the observer list before
// iterating, so an observer may register or remove observers (itself
// included) or send further notifications while being notified. Observers
// registered when the dispatch started are each called exactly once, in
// registration order.
//
// # Concurrency model
//
// Every registry operation is atomic on its own and safe for concurrent use.
// Sequences are not: "HasMediator then RegisterMediator" is two operations.
// No lock is held while user code (observers, lifecycle hooks, commands)
// runs.
//
// # Process-wide facade
//
// Prefer constructing a Facade with facade.New and passing it to whatever
// needs it. For applications that want a single global core, this package
// publishes one:
//
//	f := puremvc.Instance(func() apis.Facade {
//	    return facade.New(config.NewConfig(config.WithName("app")))
//	})
//
// Instance builds at most once. Init publishes an existing facade and
// reports ErrAlreadyInitialized on a second call. Reads are lock-free.
//
// # Usage pattern
//
//  1. Build a config: config.NewConfig(config.WithLogger(l)), or load one
//     with config.Load and File.Options.
//
//  2. Build a facade: facade.New(cfg).
//
//  3. Register a startup command and send the startup notification; the
//     command registers proxies and mediators.
//
//  4. Optionally register a metrics.Collector with Prometheus and pass it
//     as config.WithRecorder.
package puremvc
