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

// Package file provides parsing utilities for procfs and sysfs style files.
//
// This package wraps file reads with the validation and error handling
// conventions used throughout the probe framework: size limits, UTF-8
// validation, and error wrapping with context.
//
// # Usage
//
// Parse a procfs key-value file:
//
//	parser := file.NewParser()
//	fields, err := parser.GetMap("/proc/meminfo")
//	// fields["MemTotal"] == "16384000 kB"
//
// Read a single sysfs attribute:
//
//	level, err := parser.GetInt("/sys/class/power_supply/battery/capacity")
//
// Files with repeating keys, like /proc/cpuinfo, should be read with
// GetLines and parsed by the caller.
//
// # Thread Safety
//
// A Parser holds only configuration and is safe for concurrent use.
package file
