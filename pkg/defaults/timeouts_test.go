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

package defaults

import "testing"

// Timeout relationships matter more than the exact values. Inner
// operations must fit inside the outer deadlines that contain them.
func TestTimeoutRelationships(t *testing.T) {
	if ProbeTimeout >= SnapshotTimeout {
		t.Error("probe timeout must fit inside the snapshot timeout")
	}
	if SnapshotTimeout > SnapshotHandlerTimeout {
		t.Error("snapshot timeout must fit inside its handler timeout")
	}
	if BenchmarkWorkloadDuration*2 >= BenchmarkTimeout {
		t.Error("both benchmark workloads must fit inside the benchmark timeout")
	}
	if ServerReadHeaderTimeout >= ServerReadTimeout {
		t.Error("header read timeout must be shorter than full read timeout")
	}
}
