package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"
	"strings"

	"github.com/rivo/tview"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/datatug/sizetug/pkg/dirsize"
	"github.com/datatug/sizetug/pkg/fsutils"
	"github.com/datatug/sizetug/pkg/hexcodec"
	"github.com/datatug/sizetug/pkg/profiling"
	"github.com/datatug/sizetug/pkg/sizetui"
)

var (
	flatSizes  = flag.Bool("flat", false, "count directory entries' own metadata sizes as well as files")
	tuiMode    = flag.Bool("tui", false, "browse directory sizes interactively")
	encodeFile = flag.String("encode", "", "hex-encode `file` to stdout and exit")
	decodeFile = flag.String("decode", "", "decode hex `file` to raw bytes on stdout and exit")
	lowerCase  = flag.Bool("lower", false, "use lowercase hex digits with -encode")
	cpuProfile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile = flag.String("memprofile", "", "write memory profile to `file`")
	pprofAddr  = flag.String("pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
)

var (
	httpListenAndServe  = http.ListenAndServe
	osExit              = os.Exit
	osReadFile          = os.ReadFile
	pprofStopCPUProfile = pprof.StopCPUProfile

	stdout io.Writer = os.Stdout
)

func main() {
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			err := httpListenAndServe(*pprofAddr, nil)
			if err != nil {
				_, _ = fmt.Fprintf(os.Stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if *cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(*cpuProfile)
		defer stopCPUProfiling()
	}

	if *memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(*memProfile)
		defer writeMemProfile()
	}

	if err := run(flag.Args()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		osExit(1)
	}
}

var run = func(args []string) error {
	switch {
	case *encodeFile != "":
		return encodeToHex(*encodeFile, !*lowerCase)
	case *decodeFile != "":
		return decodeFromHex(*decodeFile)
	}

	root := "."
	if len(args) > 0 {
		root = fsutils.ExpandHome(args[0])
	}

	if *tuiMode {
		return runTUI(root)
	}
	return printTotal(root)
}

var runTUI = func(root string) error {
	app := tview.NewApplication()
	if _, err := sizetui.SetupApp(app, root); err != nil {
		return err
	}
	return app.Run()
}

func printTotal(root string) error {
	aggregate := dirsize.Total
	if *flatSizes {
		aggregate = dirsize.TotalWithDirs
	}
	total, err := aggregate(root)
	if err != nil {
		return err
	}
	p := message.NewPrinter(language.English)
	_, err = p.Fprintf(stdout, "%d bytes (%s)\n", total, fsutils.GetSizeShortText(int64(total)))
	return err
}

func encodeToHex(path string, uppercase bool) error {
	data, err := osReadFile(path)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(stdout, hexcodec.Encode(data, uppercase))
	return err
}

func decodeFromHex(path string) error {
	text, err := osReadFile(path)
	if err != nil {
		return err
	}
	data, err := hexcodec.Decode(strings.TrimSpace(string(text)))
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}
