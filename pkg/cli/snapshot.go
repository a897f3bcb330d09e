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

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/device-pulse/pkg/benchmark"
	"github.com/NVIDIA/device-pulse/pkg/collector"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
	"github.com/NVIDIA/device-pulse/pkg/snapshot"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

func snapshotCmd() *cli.Command {
	return &cli.Command{
		Name:                  "snapshot",
		EnableShellCompletion: true,
		Usage:                 "Capture a device capability snapshot",
		Description: `Capture a snapshot of device capabilities including:
  - CPU cores, architecture, SIMD support, and performance class
  - Memory totals and pressure state
  - Battery level, charging state, and temperature
  - Internal and external storage
  - Most recent persisted benchmark result, when one exists

Probes that fail degrade their section and are listed under "degraded"
rather than failing the capture.

The snapshot can be output in JSON, YAML, or table format.

# Examples

Capture to stdout:
  pulse snapshot

Capture to a YAML file:
  pulse snapshot --format yaml --output device.yaml`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "proc-root",
				Usage:   "procfs mount point",
				Sources: cli.EnvVars("PULSE_PROC_ROOT"),
				Value:   "/proc",
			},
			&cli.StringFlag{
				Name:    "sys-root",
				Usage:   "sysfs mount point",
				Sources: cli.EnvVars("PULSE_SYS_ROOT"),
				Value:   "/sys",
			},
			&cli.StringFlag{
				Name:    "data-path",
				Usage:   "internal storage mount point",
				Sources: cli.EnvVars("PULSE_DATA_PATH"),
				Value:   "/data",
			},
			&cli.StringFlag{
				Name:    "external-path",
				Usage:   "removable storage mount point (optional)",
				Sources: cli.EnvVars("PULSE_EXTERNAL_PATH"),
			},
			storeFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			provider := collector.NewSystem(
				collector.NewDefaultFactory(
					collector.WithProcRoot(cmd.String("proc-root")),
					collector.WithSysRoot(cmd.String("sys-root")),
					collector.WithDataPath(cmd.String("data-path")),
					collector.WithExternalPath(cmd.String("external-path")),
				),
				benchmark.NewStore(cmd.String("benchmark-store")),
			)

			s := &snapshot.DeviceSnapshotter{
				Version:    version.Release,
				Provider:   provider,
				Serializer: serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")),
			}

			return s.Measure(ctx)
		},
	}
}
