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
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/device-pulse/pkg/benchmark"
	"github.com/NVIDIA/device-pulse/pkg/defaults"
	"github.com/NVIDIA/device-pulse/pkg/errors"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
)

func benchmarkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "benchmark",
		Aliases:               []string{"bench"},
		EnableShellCompletion: true,
		Usage:                 "Run the device benchmark and persist the result",
		Description: `Run CPU and memory workloads against the device and derive a
performance class from the combined score. The result is persisted so
later snapshot and recommend runs can use it without re-benchmarking.

Scores are unit-less and comparable across devices; higher is better.

# Examples

Run with defaults and persist:
  pulse benchmark

Quick run without persisting:
  pulse benchmark --duration 500ms --no-save --format yaml`,
		Flags: []cli.Flag{
			&cli.DurationFlag{
				Name:    "duration",
				Aliases: []string{"d"},
				Usage:   "target wall time per workload",
				Value:   defaults.BenchmarkWorkloadDuration,
			},
			&cli.BoolFlag{
				Name:  "no-save",
				Usage: "skip persisting the result",
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

			runner := benchmark.NewRunner(
				benchmark.WithWorkloadDuration(cmd.Duration("duration")),
			)

			result, err := runner.Run(ctx)
			if err != nil {
				return err
			}

			if !cmd.Bool("no-save") {
				store := benchmark.NewStore(cmd.String("benchmark-store"))
				if err := store.Save(ctx, result); err != nil {
					return errors.Wrap(errors.ErrCodeInternal, "persisting benchmark result", err).
						WithContext("path", store.Path)
				}
				slog.Info("benchmark result persisted",
					"path", store.Path,
					"class", result.PerformanceClass,
				)
			}

			return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")).Serialize(ctx, result)
		},
	}
}
