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

	"github.com/NVIDIA/device-pulse/pkg/api"
)

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the device-pulse API server",
		Description: `Run the HTTP API server exposing the snapshot and recommendation
endpoints. This is the same server the pulsed binary runs.

Configuration is taken from the environment (PORT, LOG_LEVEL,
BENCHMARK_STORE_PATH). The server drains gracefully on SIGINT/SIGTERM.`,
		Action: func(_ context.Context, _ *cli.Command) error {
			return api.Serve()
		},
	}
}
