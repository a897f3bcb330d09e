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

package snapshot

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/NVIDIA/device-pulse/pkg/defaults"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
)

// Handler serves snapshot captures over HTTP.
type Handler struct {
	Snapshotter *DeviceSnapshotter
}

// HandleSnapshot handles GET /v1/snapshot.
func (h *Handler) HandleSnapshot(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.SnapshotHandlerTimeout)
	defer cancel()

	snap, err := h.Snapshotter.Capture(ctx)
	if err != nil {
		slog.Error("snapshot capture failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, snap)
}
