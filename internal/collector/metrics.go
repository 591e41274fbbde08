/*
Copyright 2025 The llm-d Authors

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

package collector

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "quantity_canon"

// Label names.
const (
	LabelOutcome = "outcome"
	LabelKind    = "kind"
	LabelQuery   = "query"
	LabelResult  = "result"
)

// Metrics records build and query events as Prometheus collectors.
type Metrics struct {
	BuildDuration *prometheus.HistogramVec
	Declarations  *prometheus.CounterVec
	Queries       *prometheus.CounterVec
	CacheLookups  *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg. A nil reg
// leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		BuildDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Duration of catalog build passes.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 10),
		}, []string{LabelOutcome}),
		Declarations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "declarations_total",
			Help:      "Declarations built, by kind.",
		}, []string{LabelKind}),
		Queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "queries_total",
			Help:      "Table queries, by query and result.",
		}, []string{LabelQuery, LabelResult}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Convertibility memo cache lookups, by result.",
		}, []string{LabelResult}),
	}
	if reg == nil {
		return m, nil
	}
	for _, c := range []prometheus.Collector{m.BuildDuration, m.Declarations, m.Queries, m.CacheLookups} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering metrics: %w", err)
		}
	}
	return m, nil
}

func (m *Metrics) ObserveBuild(d time.Duration, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.BuildDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

func (m *Metrics) CountDeclaration(kind DeclarationKind) {
	m.Declarations.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) CountQuery(q Query, outcome string) {
	m.Queries.WithLabelValues(string(q), outcome).Inc()
}

func (m *Metrics) CountCache(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.WithLabelValues(result).Inc()
}
