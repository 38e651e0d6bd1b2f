// Package profilers adds profiling flags to the mazeGo programs that link it:
// -prof (HTTP pprof server), -cpu_profile and -mem_profile.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"k8s.io/klog/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime"
	"runtime/pprof"
)

var (
	flagProfiler   = flag.Int("prof", -1, "If set, serves pprof on localhost at the given port, "+
		"and keeps the program alive at the end until interrupted.")
	flagCPUProfile = flag.String("cpu_profile", "", "write cpu profile to `file`")
	flagMemProfile = flag.String("mem_profile", "", "write a heap profile to `file` on exit")
)

// profiling state between Setup and OnQuit.
var (
	ctx     context.Context
	addr    string
	cpuFile *os.File
)

// Setup starts the profilers selected by the flags. Follow it with a deferred OnQuit.
func Setup(setupCtx context.Context) {
	ctx = setupCtx
	if *flagProfiler >= 0 {
		addr = fmt.Sprintf("localhost:%d", *flagProfiler)
		klog.Infof("profilers: serving pprof on http://%s/debug/pprof (try: go tool pprof %s/debug/pprof/heap)",
			addr, addr)
		go func() {
			klog.Fatal(http.ListenAndServe(addr, nil))
		}()
	}
	if *flagCPUProfile != "" {
		var err error
		cpuFile, err = os.Create(*flagCPUProfile)
		if err != nil {
			klog.Fatalf("profilers: cannot create CPU profile: %v", err)
		}
		if err := pprof.StartCPUProfile(cpuFile); err != nil {
			klog.Fatalf("profilers: cannot start CPU profile: %v", err)
		}
	}
}

// OnQuit finishes the profiles. With -prof it then blocks until the context given to Setup
// is cancelled, so the server can still be queried.
func OnQuit() {
	if cpuFile != nil {
		pprof.StopCPUProfile()
		_ = cpuFile.Close()
		cpuFile = nil
	}
	if *flagMemProfile != "" {
		writeHeapProfile(*flagMemProfile)
	}
	if addr != "" {
		// Don't block on panic.
		if err := recover(); err != nil {
			panic(err)
		}
		waitForInterrupt()
	}
}

// writeHeapProfile only logs errors: it runs on exit.
func writeHeapProfile(filePath string) {
	f, err := os.Create(filePath)
	if err != nil {
		klog.Errorf("profilers: cannot create heap profile: %v", err)
		return
	}
	defer func() { _ = f.Close() }()
	runtime.GC()
	if err := pprof.WriteHeapProfile(f); err != nil {
		klog.Errorf("profilers: cannot write heap profile: %v", err)
		return
	}
	klog.V(1).Infof("profilers: heap profile written to %q", filePath)
}

func waitForInterrupt() {
	if ctx.Err() != nil {
		return
	}
	runtime.GC()
	fmt.Printf("Done. pprof still served at http://%s/debug/pprof, Ctrl+C to exit.\n", addr)
	<-ctx.Done()
}
