// Package profiling wires CPU and memory profiling behind the CLI's
// -cpuprofile and -memprofile flags.
package profiling

import (
	"io"
	"log"
	"os"
	"runtime/pprof"
)

var (
	osCreate             = os.Create
	pprofStartCPUProfile = func(w io.Writer) error { return pprof.StartCPUProfile(w) }
	pprofStopCPUProfile  = pprof.StopCPUProfile
)

// DoCPUProfiling starts CPU profiling into the named file and returns a stop
// func. On failure it logs and returns a no-op, never nil.
func DoCPUProfiling(fileName string) func() {
	f, err := osCreate(fileName)
	if err != nil {
		log.Printf("could not create CPU profile %s: %v", fileName, err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		log.Printf("could not start CPU profile: %v", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
