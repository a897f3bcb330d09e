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

// Package recommendation derives device optimization recommendations from
// capability readings and benchmark results.
//
// # Overview
//
// The Engine is a pure, deterministic function from device state to an
// ordered list of Recommendation records. It evaluates an ordered list of
// independent predicate rules, each of which inspects one slice of the
// input (battery level, temperature, memory, storage, benchmark scores)
// and emits zero or more recommendations.
//
// Two operations are exposed:
//
//   - GetBasicRecommendations: environmental rules against live
//     capability reads.
//   - GetRecommendationsFromBenchmark: the environmental rules plus
//     benchmark-specific rules (bottleneck detection, tier guidance,
//     staleness), evaluated against a supplied BenchmarkResult.
//
// # Ordering
//
// Results are sorted by importance descending (HIGH, MEDIUM, LOW) with a
// stable tie-break: entries of equal importance keep the registration
// order of the rules that produced them. Identical inputs always yield a
// list-equal result.
//
// # Resilience
//
// The engine never panics and never fails for degraded inputs. A provider
// read that errors or panics, or a reading that carries sentinel values
// (negative percentages, zero totals), causes the affected rules to be
// skipped; a single GENERAL fallback entry then marks the evaluation as
// partial. The only error either operation returns for valid contexts is
// a nil benchmark result, which is a caller contract violation.
//
// The result is never empty: when no rule triggers, a single GENERAL
// all-clear entry reports the device as healthy.
//
// # Configuration
//
// Every trigger point lives in Thresholds and is injected at construction
// time; tests vary thresholds freely. The clock is injectable the same
// way, so staleness evaluation needs no global time mocking.
//
// # Usage
//
//	engine := recommendation.New(provider,
//	    recommendation.WithThresholds(recommendation.DefaultThresholds()),
//	)
//
//	recs, err := engine.GetBasicRecommendations(ctx)
//	if err != nil {
//	    log.Fatalf("evaluation failed: %v", err)
//	}
//	for _, r := range recs {
//	    fmt.Printf("[%s] %s: %s\n", r.Importance, r.ID, r.Title)
//	}
//
// # Observability
//
// Prometheus metrics cover evaluation duration and count per operation,
// per-rule outcomes, recovered rule panics, and emitted recommendations
// by importance.
package recommendation
