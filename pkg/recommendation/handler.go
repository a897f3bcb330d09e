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

package recommendation

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/NVIDIA/device-pulse/pkg/defaults"
	"github.com/NVIDIA/device-pulse/pkg/serializer"
)

// Handler serves engine output over HTTP. The bridging adapter consumes
// this endpoint; the engine contract ends at producing the list.
type Handler struct {
	Engine *Engine
}

// Response is the wire shape of a recommendation list.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Count           int              `json:"count"`
	Source          string           `json:"source"`
	GeneratedAt     time.Time        `json:"generatedAt"`
}

// HandleRecommendations handles GET /v1/recommendations.
//
// With ?benchmark=stored the persisted benchmark result is folded into the
// evaluation; when none exists the handler falls back to the basic rules.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), defaults.RecommendationHandlerTimeout)
	defer cancel()

	var (
		recs   []Recommendation
		err    error
		source = "basic"
	)

	if r.URL.Query().Get("benchmark") == "stored" {
		if stored, berr := h.Engine.provider.GetBenchmarkResults(ctx); berr == nil && stored != nil {
			source = "benchmark"
			recs, err = h.Engine.GetRecommendationsFromBenchmark(ctx, stored)
		}
	}

	if recs == nil && err == nil {
		recs, err = h.Engine.GetBasicRecommendations(ctx)
	}

	if err != nil {
		slog.Error("recommendation generation failed", "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	serializer.RespondJSON(w, http.StatusOK, Response{
		Recommendations: recs,
		Count:           len(recs),
		Source:          source,
		GeneratedAt:     time.Now().UTC(),
	})
}
