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

// Package errors provides structured error types with classification
// codes for device-pulse components.
//
// Errors carry an ErrorCode so callers and log processors can
// classify failures without matching on message text:
//
//	if err := store.Load(); err != nil {
//	    return errors.Wrap(errors.ErrCodeInvalidRequest, "loading benchmark", err).
//	        WithContext("path", store.Path)
//	}
//
// StructuredError supports errors.Is and errors.As through Unwrap, so
// wrapped sentinel errors remain matchable.
package errors
