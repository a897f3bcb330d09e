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

package snapshot

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	captureDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_snapshot_capture_duration_seconds",
			Help:    "Duration of full device snapshot captures.",
			Buckets: prometheus.DefBuckets,
		},
	)

	capturesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "pulse_snapshot_captures_total",
			Help: "Total number of completed device snapshot captures.",
		},
	)

	degradedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_snapshot_degraded_probes_total",
			Help: "Probes that failed during snapshot captures.",
		},
		[]string{"probe"},
	)
)
