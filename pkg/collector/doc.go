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

// Package collector provides probes for reading device capabilities.
//
// # Overview
//
// This package reads processor, memory, battery, and storage state from
// the standard Linux interfaces: /proc/cpuinfo and /proc/meminfo, the
// power_supply class in sysfs, and statfs on the storage mounts. Probes
// return the typed capability readings consumed by the recommendation
// engine and the snapshotter.
//
// # Factory Pattern
//
// The Factory interface enables dependency injection and testing by
// abstracting probe creation:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithDataPath("/data"),
//	    collector.WithExternalPath("/mnt/sdcard"),
//	)
//
// Tests point the factory at fixture trees instead of the live mounts:
//
//	factory := collector.NewDefaultFactory(
//	    collector.WithProcRoot(fakeProc),
//	    collector.WithSysRoot(fakeSys),
//	)
//
// # Provider
//
// System binds the probes into a capability.Provider, adding a per-read
// timeout and the stored benchmark result:
//
//	provider := collector.NewSystem(factory, store)
//	engine := recommendation.New(provider)
//
// # Absent Hardware
//
// A device without a battery is not an error: the battery probe returns
// (nil, nil) and downstream consumers treat the reading as absent.
package collector
