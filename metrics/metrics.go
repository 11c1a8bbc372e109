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

// Package metrics instruments a core with Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"dirpx.dev/puremvc/apis"
)

// Collector records core activity as Prometheus metrics.
// It implements both apis.Recorder and prometheus.Collector, so one value is
// passed to config.WithRecorder and registered with a prometheus.Registerer.
type Collector struct {
	notifications *prometheus.CounterVec
	observers     *prometheus.GaugeVec
	components    *prometheus.GaugeVec
	executed      *prometheus.CounterVec
}

// Ensure Collector implements apis.Recorder and prometheus.Collector.
var (
	_ apis.Recorder        = (*Collector)(nil)
	_ prometheus.Collector = (*Collector)(nil)
)

// New constructs a Collector. Every metric carries a constant "core" label
// so several cores can share one registry.
func New(namespace, core string) *Collector {
	labels := prometheus.Labels{"core": core}
	return &Collector{
		notifications: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "notifications_total",
				Help:        "Total number of notifications dispatched by the view",
				ConstLabels: labels,
			},
			[]string{"notification"},
		),
		observers: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "observers",
				Help:        "Observers currently registered per notification name",
				ConstLabels: labels,
			},
			[]string{"notification"},
		),
		components: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace:   namespace,
				Name:        "components",
				Help:        "Registered mediators, proxies and command mappings",
				ConstLabels: labels,
			},
			[]string{"kind"},
		),
		executed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace:   namespace,
				Name:        "commands_executed_total",
				Help:        "Total number of commands executed per notification name",
				ConstLabels: labels,
			},
			[]string{"notification"},
		),
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	c.notifications.Describe(ch)
	c.observers.Describe(ch)
	c.components.Describe(ch)
	c.executed.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.notifications.Collect(ch)
	c.observers.Collect(ch)
	c.components.Collect(ch)
	c.executed.Collect(ch)
}

// NotificationSent implements apis.Recorder.
func (c *Collector) NotificationSent(name string, _ int) {
	c.notifications.WithLabelValues(name).Inc()
}

// ObserverAdded implements apis.Recorder.
func (c *Collector) ObserverAdded(name string) {
	c.observers.WithLabelValues(name).Inc()
}

// ObserverRemoved implements apis.Recorder.
func (c *Collector) ObserverRemoved(name string) {
	c.observers.WithLabelValues(name).Dec()
}

// ComponentRegistered implements apis.Recorder.
func (c *Collector) ComponentRegistered(kind string) {
	c.components.WithLabelValues(kind).Inc()
}

// ComponentRemoved implements apis.Recorder.
func (c *Collector) ComponentRemoved(kind string) {
	c.components.WithLabelValues(kind).Dec()
}

// CommandExecuted implements apis.Recorder.
func (c *Collector) CommandExecuted(name string) {
	c.executed.WithLabelValues(name).Inc()
}
