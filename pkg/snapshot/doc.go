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

// Package snapshot captures point-in-time device capability snapshots.
//
// The DeviceSnapshotter fans the capability probes out in parallel and
// assembles their readings into a DeviceSnapshot. Probe failures degrade
// the affected section instead of failing the capture; the Degraded list
// records which probes were lost.
//
// Captures can be serialized to JSON, YAML, or a table through the
// serializer package, or served over HTTP via the Handler.
package snapshot
