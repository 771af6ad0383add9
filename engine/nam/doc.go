// SPDX-License-Identifier: EPL-2.0

// Package nam binds the NeuralAmpModelerCore DSP library.
//
// The binding talks to a small C ABI shim (libnamc, sources in namc/) that
// wraps nam::get_dsp and the nam::DSP methods. The shim and the core library
// are built with CMake outside of the Go toolchain and located with
// pkg-config:
//
//	cmake -S engine/nam/namc -B build -DNAM_CORE_DIR=/path/to/NeuralAmpModelerCore
//	cmake --build build && cmake --install build
//	go build -tags nam ./...
//
// Without the nam build tag (or without cgo) the package still compiles, but
// Engine.Load always fails with ErrUnavailable. This keeps the rest of the
// module buildable and testable on machines without the native library.
//
// Thread safety: an Engine may be shared. Each Handle must be used by one
// goroutine at a time.
package nam
