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

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    Version
		wantErr error
	}{
		{in: "1", want: Version{Major: 1, Precision: 1}},
		{in: "v1.2", want: Version{Major: 1, Minor: 2, Precision: 2}},
		{in: "1.2.3", want: Version{Major: 1, Minor: 2, Patch: 3, Precision: 3}},
		{in: "1.2.3-rc.1", want: Version{Major: 1, Minor: 2, Patch: 3, Precision: 3, Extras: "-rc.1"}},
		{in: "0.4.0-dirty", want: Version{Minor: 4, Precision: 3, Extras: "-dirty"}},
		{in: "", wantErr: ErrEmptyVersion},
		{in: "1.2.3.4", wantErr: ErrTooManyComponents},
		{in: "a.b", wantErr: ErrNonNumeric},
		{in: "-1", wantErr: ErrNonNumeric},
	}

	for _, tt := range tests {
		got, err := ParseVersion(tt.in)
		if tt.wantErr != nil {
			assert.True(t, errors.Is(err, tt.wantErr), "ParseVersion(%q) err = %v", tt.in, err)
			continue
		}
		require.NoError(t, err, "ParseVersion(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseVersion(%q)", tt.in)
	}
}

func TestEqualsOrNewer_Precision(t *testing.T) {
	// "1.2" matches any 1.2.x.
	v := MustParseVersion("1.2")
	assert.True(t, v.EqualsOrNewer(MustParseVersion("1.2.10")))
	assert.True(t, v.EqualsOrNewer(MustParseVersion("1.1.0")))
	assert.False(t, v.EqualsOrNewer(MustParseVersion("1.3.0")))
}

func TestCompare_MixedPrecision(t *testing.T) {
	// The lower precision bounds the comparison, so "1.2" sorts equal
	// to any 1.2.x.
	assert.Equal(t, 0, MustParseVersion("1.2").Compare(MustParseVersion("1.2.10")))
	assert.Equal(t, -1, MustParseVersion("1.1.3").Compare(MustParseVersion("1.2.0")))
	assert.Equal(t, 1, MustParseVersion("2").Compare(MustParseVersion("1.9.9")))
}

func TestBuild(t *testing.T) {
	info := Build()
	assert.Equal(t, Release, info.Version)
	assert.Nil(t, info.Semver, "dev builds have no parsed semver")

	prev := Release
	defer func() { Release = prev }()

	Release = "v1.4.2"
	info = Build()
	require.NotNil(t, info.Semver)
	assert.Equal(t, "1.4.2", info.Semver.String())
}
