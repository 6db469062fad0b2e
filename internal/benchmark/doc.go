// SPDX-License-Identifier: MPL-2.0

// Package benchmark provides benchmarks for PGO profile generation.
// They cover the work jarrunner does before the JVM starts:
//   - command line tokenizing and parsing
//   - AOT cache naming and stale cache cleanup
//   - CUE configuration loading
//   - the end-to-end launch sequence with a stubbed process starter
//
// To generate a PGO profile, run:
//
//	go test -run '^$' -bench . -cpuprofile default.pgo ./internal/benchmark
package benchmark
