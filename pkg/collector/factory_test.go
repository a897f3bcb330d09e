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

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultFactory(t *testing.T) {
	f := NewDefaultFactory()

	assert.Equal(t, "/proc", f.ProcRoot)
	assert.Equal(t, "/sys", f.SysRoot)
	assert.Equal(t, "/data", f.DataPath)
	assert.Empty(t, f.ExternalPath)
}

func TestNewDefaultFactory_Options(t *testing.T) {
	f := NewDefaultFactory(
		WithProcRoot("/fake/proc"),
		WithSysRoot("/fake/sys"),
		WithDataPath("/fake/data"),
		WithExternalPath("/fake/sdcard"),
	)

	assert.Equal(t, "/fake/proc", f.ProcRoot)
	assert.Equal(t, "/fake/sys", f.SysRoot)
	assert.Equal(t, "/fake/data", f.DataPath)
	assert.Equal(t, "/fake/sdcard", f.ExternalPath)
}

func TestDefaultFactory_CreatesConfiguredProbes(t *testing.T) {
	f := NewDefaultFactory(
		WithProcRoot("/fake/proc"),
		WithExternalPath("/fake/sdcard"),
	)

	cpu, ok := f.CreateCPUProbe().(*CPUCollector)
	require.True(t, ok)
	assert.Equal(t, "/fake/proc", cpu.ProcRoot)

	sto, ok := f.CreateStorageProbe().(*StorageCollector)
	require.True(t, ok)
	assert.Equal(t, "/fake/sdcard", sto.ExternalPath)
	assert.NotNil(t, sto.Statfs)

	assert.NotNil(t, f.CreateMemoryProbe())
	assert.NotNil(t, f.CreateBatteryProbe())
}
