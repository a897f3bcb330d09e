// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package recommendation

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	evalDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pulse_recommendation_eval_duration_seconds",
			Help:    "Time taken to generate a recommendation list",
			Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
		[]string{"operation"}, // basic or benchmark
	)

	evalTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_recommendation_eval_total",
			Help: "Total number of recommendation evaluations",
		},
		[]string{"operation"},
	)

	ruleOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_recommendation_rule_outcomes_total",
			Help: "Per-rule evaluation outcomes",
		},
		[]string{"rule", "outcome"}, // emitted, clear, skipped
	)

	rulePanics = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_recommendation_rule_panics_total",
			Help: "Total number of panics recovered during rule evaluation",
		},
		[]string{"rule"},
	)

	emittedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_recommendation_emitted_total",
			Help: "Total number of recommendations emitted by importance",
		},
		[]string{"importance"},
	)
)
