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

// Package logging provides structured logging utilities for device-pulse
// components.
//
// It wraps the standard library slog package with shared defaults so all
// components log the same way: JSON records to stderr, module and version
// attached to every record, source location at debug level, and log level
// taken from the LOG_LEVEL environment variable (default INFO).
//
// # Usage
//
// Set the default logger early in main():
//
//	logging.SetDefaultStructuredLogger("pulse", version)
//	slog.Info("processing request", "id", "req-123")
//
// An explicit level overrides the environment:
//
//	logging.SetDefaultStructuredLoggerWithLevel("pulsed", version, "debug")
//
// # Output Format
//
//	{
//	    "time": "2025-01-15T10:30:00.123Z",
//	    "level": "INFO",
//	    "msg": "server started",
//	    "module": "pulsed",
//	    "version": "v1.0.0",
//	    "port": 8080
//	}
package logging
