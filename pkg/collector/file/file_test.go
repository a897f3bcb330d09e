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

package file

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestGetMap(t *testing.T) {
	path := writeTestFile(t, "meminfo", `MemTotal:       16384000 kB
MemFree:         1024000 kB
MemAvailable:    8192000 kB
# a comment line
malformed line without delimiter
`)

	fields, err := NewParser().GetMap(path)
	if err != nil {
		t.Fatalf("GetMap() failed: %v", err)
	}

	if got := fields["MemTotal"]; got != "16384000 kB" {
		t.Errorf("MemTotal = %q, want %q", got, "16384000 kB")
	}
	if got := fields["MemAvailable"]; got != "8192000 kB" {
		t.Errorf("MemAvailable = %q, want %q", got, "8192000 kB")
	}
	if _, ok := fields["# a comment line"]; ok {
		t.Error("comment lines must be skipped")
	}
	if len(fields) != 3 {
		t.Errorf("got %d fields, want 3: %v", len(fields), fields)
	}
}

func TestGetMap_CustomDelimiterAndTrim(t *testing.T) {
	path := writeTestFile(t, "release", `NAME="Android"
VERSION_ID="14"
`)

	fields, err := NewParser(
		WithKVDelimiter("="),
		WithVTrimChars(`"`),
	).GetMap(path)
	if err != nil {
		t.Fatalf("GetMap() failed: %v", err)
	}

	if got := fields["NAME"]; got != "Android" {
		t.Errorf("NAME = %q, want Android", got)
	}
	if got := fields["VERSION_ID"]; got != "14" {
		t.Errorf("VERSION_ID = %q, want 14", got)
	}
}

func TestGetLines(t *testing.T) {
	path := writeTestFile(t, "cpuinfo", `processor	: 0
flags		: fp asimd neon

processor	: 1
flags		: fp asimd neon
`)

	lines, err := NewParser().GetLines(path)
	if err != nil {
		t.Fatalf("GetLines() failed: %v", err)
	}

	if len(lines) != 4 {
		t.Errorf("got %d lines, want 4 (empty lines skipped): %v", len(lines), lines)
	}
}

func TestGetLines_Errors(t *testing.T) {
	if _, err := NewParser().GetLines(""); err == nil {
		t.Error("empty path must error")
	}

	if _, err := NewParser().GetLines(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("missing file must error")
	}

	big := writeTestFile(t, "big", "x: 1\ny: 2\n")
	if _, err := NewParser(WithMaxSize(3)).GetLines(big); err == nil {
		t.Error("oversized file must error")
	}

	binary := filepath.Join(t.TempDir(), "binary")
	if err := os.WriteFile(binary, []byte{0xff, 0xfe, 0x00, 0x01}, 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := NewParser().GetLines(binary); err == nil {
		t.Error("non-UTF-8 content must error")
	}
}

func TestGetValue(t *testing.T) {
	path := writeTestFile(t, "capacity", "85\n")

	v, err := NewParser().GetValue(path)
	if err != nil {
		t.Fatalf("GetValue() failed: %v", err)
	}
	if v != "85" {
		t.Errorf("GetValue() = %q, want 85", v)
	}

	empty := writeTestFile(t, "empty", "")
	if _, err := NewParser().GetValue(empty); err == nil {
		t.Error("empty file must error")
	}
}

func TestGetInt(t *testing.T) {
	path := writeTestFile(t, "temp", "312\n")

	n, err := NewParser().GetInt(path)
	if err != nil {
		t.Fatalf("GetInt() failed: %v", err)
	}
	if n != 312 {
		t.Errorf("GetInt() = %d, want 312", n)
	}

	status := writeTestFile(t, "status", "Charging\n")
	if _, err := NewParser().GetInt(status); err == nil {
		t.Error("non-numeric content must error")
	}
}
