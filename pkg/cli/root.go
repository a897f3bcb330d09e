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
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/device-pulse/pkg/logging"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

const name = "pulse"

// Flags shared by the commands that serialize output.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatJSON),
		Usage:   "output format (json, yaml, table)",
	}

	storeFlag = &cli.StringFlag{
		Name:    "benchmark-store",
		Usage:   "path of the persisted benchmark result",
		Sources: cli.EnvVars("BENCHMARK_STORE_PATH"),
		Value:   "/data/pulse/benchmark.json",
	}
)

// parseOutputFormat validates the format flag of a command.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)",
			f, serializer.SupportedFormats())
	}
	return f, nil
}

func rootCmd() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "Device capability monitoring and recommendation tooling",
		Version:               version.Release,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
				Value:   "info",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version.Release, cmd.String("log-level"))
			build := version.Build()
			slog.Debug("starting",
				"name", name,
				"version", build.Version,
				"commit", build.Commit,
				"date", build.Date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			snapshotCmd(),
			recommendCmd(),
			benchmarkCmd(),
			serveCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the CLI. It is called by main.main() and handles
// SIGINT/SIGTERM for graceful cancellation.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
