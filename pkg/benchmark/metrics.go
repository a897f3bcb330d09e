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

package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "pulse_benchmark_run_duration_seconds",
			Help:    "Wall time of full benchmark runs.",
			Buckets: prometheus.LinearBuckets(1, 1, 10),
		},
	)

	runsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_benchmark_runs_total",
			Help: "Completed benchmark runs by resulting performance class.",
		},
		[]string{"class"},
	)

	storeOps = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "pulse_benchmark_store_operations_total",
			Help: "Benchmark store operations by type and outcome.",
		},
		[]string{"operation", "outcome"},
	)
)
