// Package cli implements the command-line interface for the device-pulse tool.
//
// # Overview
//
// The pulse CLI provides commands for capturing device capability
// snapshots, running benchmarks, and producing automation
// recommendations for the current device. It is designed for engineers
// tuning mobile automation workloads against heterogeneous device
// fleets.
//
// # Commands
//
// snapshot - Capture device capabilities:
//
//	pulse snapshot [--output FILE] [--format json|yaml|table]
//
// Captures CPU, memory, battery, storage, and stored benchmark state.
// Failed probes degrade their section instead of failing the capture.
//
// benchmark - Run the device benchmark:
//
//	pulse benchmark [--duration 2s] [--no-save]
//
// Runs CPU and memory workloads, derives a performance class, and
// persists the result for later snapshot and recommend runs.
//
// recommend - Generate recommendations:
//
//	pulse recommend [--benchmark | --benchmark-file FILE] [--thresholds FILE]
//
// Evaluates recommendation rules against current device state. With
// --benchmark the persisted benchmark result is folded in;
// --benchmark-file reads the result from an explicit file instead. Rule
// trigger points can be overridden with a --thresholds YAML file.
//
// serve - Run the API server:
//
//	pulse serve
//
// Runs the same HTTP server as the pulsed binary.
//
// # Global Flags
//
//	--log-level    Logging verbosity (debug, info, warn, error)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Environment Variables
//
//	LOG_LEVEL             Logging verbosity
//	BENCHMARK_STORE_PATH  Persisted benchmark location
//	PULSE_PROC_ROOT       procfs mount point (testing)
//	PULSE_SYS_ROOT        sysfs mount point (testing)
//	PULSE_DATA_PATH       internal storage mount point
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, execution failure)
package cli
