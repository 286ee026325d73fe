package parallel

import "runtime"

import "github.com/klauspost/cpuid/v2"

// Workers returns n when positive, otherwise the number of logical cores reported
// by cpuid, falling back to runtime.NumCPU when cpuid cannot tell.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	if cpuid.CPU.LogicalCores > 0 {
		return cpuid.CPU.LogicalCores
	}
	return runtime.NumCPU()
}

// CPU describes the processor for logs.
func CPU() string {
	if cpuid.CPU.BrandName != "" {
		return cpuid.CPU.BrandName
	}
	return runtime.GOARCH
}
