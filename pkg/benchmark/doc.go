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

// Package benchmark measures device performance and persists the result.
//
// A run executes two timed workloads, a hash-heavy CPU kernel and a
// memory bandwidth kernel, and converts throughput into unit-less scores
// on a shared scale. The combined score weights CPU 2:1 over memory and
// maps to a capability.PerformanceClass.
//
// Scores are comparable across devices but not across score scale
// revisions; bump scaleRevision when changing a kernel.
//
// The Store persists the latest result as JSON and satisfies the
// collector.BenchmarkSource interface. A missing file reads as
// (nil, nil): a device that never ran a benchmark is not an error.
package benchmark
