package main

import "os"
import "runtime/pprof"

// pgoProfile is the file the go toolchain picks up for profile guided optimization.
const pgoProfile = "default.pgo"

// startProfile collects a CPU profile into path until the returned func is called.
func startProfile(path string) (stop func() error, err error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	return func() error {
		pprof.StopCPUProfile()
		return f.Close()
	}, nil
}
