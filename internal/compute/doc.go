// Package compute provides the numeric backends for register simulation.
//
// The package automatically selects the best available backend:
//
//   - CUDA: GPU-accelerated random draws and elementwise arithmetic
//   - CPU: reference path, always available
//
// # GPU Acceleration
//
// Column operations run on the GPU when the binary is built with the cuda
// tag and a device is present:
//
//	backend := compute.GetBackend()
//	gross := backend.Mul(hours, rates)
//
// Build with CUDA support:
//
//	go build -tags cuda ./...
//
// Without the tag the CUDA backend compiles to a stub that reports
// Available() == false; callers are expected to skip the accelerated
// measurement rather than fall back silently.
package compute
