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

package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testMeminfo = `MemTotal:        8026092 kB
MemFree:         1007240 kB
MemAvailable:    4013046 kB
Buffers:          221108 kB
`

const testCPUInfo = `processor	: 0
Features	: fp asimd evtstrm aes

processor	: 1
Features	: fp asimd evtstrm aes

processor	: 2
Features	: fp asimd evtstrm aes

processor	: 3
Features	: fp asimd evtstrm aes

processor	: 4
Features	: fp asimd evtstrm aes

processor	: 5
Features	: fp asimd evtstrm aes

processor	: 6
Features	: fp asimd evtstrm aes

processor	: 7
Features	: fp asimd evtstrm aes

`

// writeFixture writes a file under root, creating parent directories.
func writeFixture(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

// fakeDeviceRoots builds proc/sys/data trees describing a healthy
// 8-core device with no battery.
func fakeDeviceRoots(t *testing.T) (proc, sys, data string) {
	t.Helper()

	proc = t.TempDir()
	sys = t.TempDir()
	data = t.TempDir()

	writeFixture(t, proc, "cpuinfo", testCPUInfo)
	writeFixture(t, proc, "meminfo", testMeminfo)
	writeFixture(t, sys, "devices/system/cpu/cpu0/cpufreq/cpuinfo_max_freq", "2912000\n")

	return proc, sys, data
}

// runCLI executes the root command with the given arguments.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	return rootCmd().Run(context.Background(), append([]string{name}, args...))
}
