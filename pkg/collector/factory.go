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

package collector

import "golang.org/x/sys/unix"

// Factory creates probes with their dependencies.
// This interface enables dependency injection for testing.
type Factory interface {
	CreateCPUProbe() CPUProbe
	CreateMemoryProbe() MemoryProbe
	CreateBatteryProbe() BatteryProbe
	CreateStorageProbe() StorageProbe
}

// FactoryOption configures the DefaultFactory.
type FactoryOption func(*DefaultFactory)

// WithProcRoot overrides the procfs mount point.
func WithProcRoot(root string) FactoryOption {
	return func(f *DefaultFactory) {
		f.ProcRoot = root
	}
}

// WithSysRoot overrides the sysfs mount point.
func WithSysRoot(root string) FactoryOption {
	return func(f *DefaultFactory) {
		f.SysRoot = root
	}
}

// WithDataPath overrides the internal storage path probed via statfs.
func WithDataPath(path string) FactoryOption {
	return func(f *DefaultFactory) {
		f.DataPath = path
	}
}

// WithExternalPath sets the removable storage mount point to probe.
// Empty means no external storage is expected on this device.
func WithExternalPath(path string) FactoryOption {
	return func(f *DefaultFactory) {
		f.ExternalPath = path
	}
}

// DefaultFactory creates probes bound to the live procfs, sysfs, and
// storage mounts of the device.
type DefaultFactory struct {
	ProcRoot     string
	SysRoot      string
	DataPath     string
	ExternalPath string
}

// NewDefaultFactory creates a factory with default settings.
func NewDefaultFactory(opts ...FactoryOption) *DefaultFactory {
	f := &DefaultFactory{
		ProcRoot: "/proc",
		SysRoot:  "/sys",
		DataPath: "/data",
	}

	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateCPUProbe creates a processor capability probe.
func (f *DefaultFactory) CreateCPUProbe() CPUProbe {
	return &CPUCollector{
		ProcRoot: f.ProcRoot,
		SysRoot:  f.SysRoot,
	}
}

// CreateMemoryProbe creates a RAM state probe.
func (f *DefaultFactory) CreateMemoryProbe() MemoryProbe {
	return &MemoryCollector{
		ProcRoot: f.ProcRoot,
	}
}

// CreateBatteryProbe creates a battery state probe.
func (f *DefaultFactory) CreateBatteryProbe() BatteryProbe {
	return &BatteryCollector{
		SysRoot: f.SysRoot,
	}
}

// CreateStorageProbe creates a storage capability probe.
func (f *DefaultFactory) CreateStorageProbe() StorageProbe {
	return &StorageCollector{
		DataPath:     f.DataPath,
		ExternalPath: f.ExternalPath,
		Statfs:       unix.Statfs,
	}
}
