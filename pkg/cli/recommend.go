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
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/device-pulse/pkg/benchmark"
	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/collector"
	"github.com/NVIDIA/device-pulse/pkg/errors"
	"github.com/NVIDIA/device-pulse/pkg/recommendation"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
)

func recommendCmd() *cli.Command {
	return &cli.Command{
		Name:                  "recommend",
		Aliases:               []string{"rec"},
		EnableShellCompletion: true,
		Usage:                 "Generate automation recommendations for this device",
		Description: `Evaluate recommendation rules against the current device state:
  - Memory and storage pressure
  - Battery level and saver mode
  - CPU performance class

With --benchmark, the persisted benchmark result is folded into the
evaluation to produce performance-tier recommendations. When no stored
result exists the command falls back to the basic rules.
--benchmark-file reads the result from an explicit JSON or YAML file
instead of the store.

Rule trigger points can be overridden with a --thresholds YAML file;
fields absent from the file keep their defaults.

The recommendations can be output in JSON, YAML, or table format.

# Examples

Basic recommendations:
  pulse recommend

Include the stored benchmark:
  pulse recommend --benchmark --format yaml

Custom thresholds and an explicit benchmark result:
  pulse recommend --thresholds fleet.yaml --benchmark-file result.json`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "benchmark",
				Aliases: []string{"b"},
				Usage:   "fold the persisted benchmark result into the evaluation",
			},
			&cli.StringFlag{
				Name:  "benchmark-file",
				Usage: "path to a benchmark result file to fold into the evaluation",
			},
			&cli.StringFlag{
				Name:  "thresholds",
				Usage: "path to a YAML file overriding rule trigger points",
			},
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
			storeFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			outFormat, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}

			store := benchmark.NewStore(cmd.String("benchmark-store"))
			provider := collector.NewSystem(
				collector.NewDefaultFactory(
					collector.WithProcRoot(cmd.String("proc-root")),
					collector.WithSysRoot(cmd.String("sys-root")),
					collector.WithDataPath(cmd.String("data-path")),
				),
				store,
			)
			var engineOpts []recommendation.Option
			if tp := cmd.String("thresholds"); tp != "" {
				thresholds, terr := recommendation.LoadThresholds(tp)
				if terr != nil {
					return terr
				}
				engineOpts = append(engineOpts, recommendation.WithThresholds(thresholds))
			}
			engine := recommendation.New(provider, engineOpts...)

			var (
				recs   []recommendation.Recommendation
				source = "basic"
			)

			if bp := cmd.String("benchmark-file"); bp != "" {
				result, ferr := serializer.FromFile[capability.BenchmarkResult](bp)
				if ferr != nil {
					return errors.Wrap(errors.ErrCodeInvalidRequest, "reading benchmark file", ferr).
						WithContext("path", bp)
				}
				source = "benchmark"
				if recs, err = engine.GetRecommendationsFromBenchmark(ctx, result); err != nil {
					return err
				}
			} else if cmd.Bool("benchmark") {
				stored, lerr := store.Load(ctx)
				if lerr != nil {
					return errors.Wrap(errors.ErrCodeInvalidRequest, "loading stored benchmark", lerr).
						WithContext("path", store.Path)
				}
				if stored != nil {
					source = "benchmark"
					if recs, err = engine.GetRecommendationsFromBenchmark(ctx, stored); err != nil {
						return err
					}
				}
			}

			if recs == nil {
				if recs, err = engine.GetBasicRecommendations(ctx); err != nil {
					return err
				}
			}

			resp := recommendation.Response{
				Recommendations: recs,
				Count:           len(recs),
				Source:          source,
				GeneratedAt:     time.Now().UTC(),
			}

			return serializer.NewFileWriterOrStdout(outFormat, cmd.String("output")).Serialize(ctx, resp)
		},
	}
}
