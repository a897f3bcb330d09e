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

// Package capability defines the device capability data model shared by
// collectors, the snapshotter, and the recommendation engine.
//
// # Overview
//
// A capability reading is an immutable description of one subsystem of the
// device: CPU, memory, storage, or battery. The Provider interface is the
// read boundary between consumers (the recommendation engine, the
// snapshotter) and whatever supplies the data (local procfs/sysfs probes
// in production, stubs in tests).
//
// # Data Validity
//
// Probes that fail part-way produce sentinel values (negative percentages,
// zero totals). Every reading type carries a Valid method so consumers can
// skip unreliable data instead of propagating it; the recommendation
// engine relies on this to honor its never-raise contract.
//
// # Performance Class
//
// PerformanceClass is the coarse LOW/MID/MID_HIGH/HIGH device tier. It is
// derived either from hardware characteristics (core count, max frequency)
// or from a combined benchmark score via ClassifyScore.
package capability
