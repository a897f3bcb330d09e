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

package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/NVIDIA/device-pulse/pkg/capability"
	"github.com/NVIDIA/device-pulse/pkg/version"
)

// Store persists the latest benchmark result as a JSON file. It
// satisfies collector.BenchmarkSource.
type Store struct {
	Path string
}

// NewStore creates a store rooted at the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Save writes the result, replacing any prior one. The write goes
// through a temp file and rename so readers never see a partial file.
func (s *Store) Save(ctx context.Context, result *capability.BenchmarkResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if result == nil {
		return fmt.Errorf("benchmark result cannot be nil")
	}
	if !result.Valid() {
		return fmt.Errorf("benchmark result has no timestamp")
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		storeOps.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("failed to encode benchmark result: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		storeOps.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("failed to create store directory: %w", err)
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		storeOps.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("failed to write benchmark result: %w", err)
	}

	if err := os.Rename(tmp, s.Path); err != nil {
		storeOps.WithLabelValues("save", "error").Inc()
		return fmt.Errorf("failed to commit benchmark result: %w", err)
	}

	storeOps.WithLabelValues("save", "ok").Inc()
	return nil
}

// Load returns the stored result, or (nil, nil) when none exists.
func (s *Store) Load(ctx context.Context) (*capability.BenchmarkResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			storeOps.WithLabelValues("load", "absent").Inc()
			return nil, nil
		}
		storeOps.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("failed to read benchmark result: %w", err)
	}

	var result capability.BenchmarkResult
	if err := json.Unmarshal(data, &result); err != nil {
		storeOps.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("failed to decode benchmark result: %w", err)
	}

	if !result.Valid() {
		storeOps.WithLabelValues("load", "error").Inc()
		return nil, fmt.Errorf("stored benchmark result has no timestamp")
	}

	if cur := version.Build().Semver; cur != nil && result.Release != "" {
		if rv, verr := version.ParseVersion(result.Release); verr == nil && !rv.EqualsOrNewer(*cur) {
			slog.Debug("stored benchmark predates the running release",
				"recorded", rv.String(),
				"current", cur.String(),
			)
		}
	}

	storeOps.WithLabelValues("load", "ok").Inc()
	return &result, nil
}
