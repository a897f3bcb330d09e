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

package version

// Overridden at build time with ldflags, e.g.
// -X "github.com/NVIDIA/device-pulse/pkg/version.Release=1.0.0".
var (
	Release = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// BuildInfo bundles the build-time metadata for serialization.
type BuildInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`

	// Semver is the parsed form of Version, absent for dev builds.
	Semver *Version `json:"semver,omitempty" yaml:"semver,omitempty"`
}

// Build returns the metadata of the running binary. Release strings
// that do not parse as semver (dev builds) leave Semver nil.
func Build() BuildInfo {
	info := BuildInfo{
		Version: Release,
		Commit:  Commit,
		Date:    Date,
	}
	if v, err := ParseVersion(Release); err == nil {
		info.Semver = &v
	}
	return info
}
