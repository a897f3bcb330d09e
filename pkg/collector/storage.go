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
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sys/unix"

	"github.com/NVIDIA/device-pulse/pkg/capability"
)

// StatfsFunc matches unix.Statfs, injectable for testing.
type StatfsFunc func(path string, buf *unix.Statfs_t) error

// StorageCollector reads storage capabilities via statfs on the internal
// data volume and, when configured, the external storage mount.
type StorageCollector struct {
	DataPath     string
	ExternalPath string
	Statfs       StatfsFunc
}

// Collect gathers the storage capabilities of the device.
func (c *StorageCollector) Collect(ctx context.Context) (*capability.StorageCapabilities, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	defer func() {
		probeDuration.WithLabelValues("storage").Observe(time.Since(start).Seconds())
	}()

	var stat unix.Statfs_t
	if err := c.Statfs(c.DataPath, &stat); err != nil {
		probeErrors.WithLabelValues("storage").Inc()
		return nil, fmt.Errorf("statfs %s failed: %w", c.DataPath, err)
	}

	bsize := int64(stat.Bsize)
	s := &capability.StorageCapabilities{
		TotalBytes: int64(stat.Blocks) * bsize,
		// Bavail excludes blocks reserved for root, matching what an
		// unprivileged app can actually use.
		AvailableBytes: int64(stat.Bavail) * bsize,
	}

	if c.ExternalPath != "" {
		var ext unix.Statfs_t
		if err := c.Statfs(c.ExternalPath, &ext); err != nil {
			slog.Debug("external storage not mounted", "path", c.ExternalPath, "error", err)
		} else if ext.Blocks > 0 {
			s.ExternalAvailable = true
		}
	}

	return s, nil
}
