package profiling

import (
	"io"
	"log"
	"runtime/pprof"
	"time"
)

var (
	pprofWriteHeapProfile = func(w io.Writer) error { return pprof.WriteHeapProfile(w) }
	memProfilingInterval  = 10 * time.Second
)

// DoMemProfiling periodically snapshots the heap profile into the named file
// and returns a func that writes one snapshot on demand.
func DoMemProfiling(fileName string) func() {
	writeMemProfile := func() {
		f, err := osCreate(fileName)
		if err != nil {
			log.Printf("could not create memory profile %s: %v", fileName, err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		if err = pprofWriteHeapProfile(f); err != nil {
			log.Printf("could not write memory profile: %v", err)
		}
	}
	go func() {
		for {
			time.Sleep(memProfilingInterval)
			writeMemProfile()
		}
	}()
	return writeMemProfile
}
