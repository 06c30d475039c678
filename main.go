package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/goforj/godump"
	"github.com/gorilla/mux"
	"golang.org/x/term"

	"github.com/navionguy/flatbasic/canvas"
	"github.com/navionguy/flatbasic/cli"
	"github.com/navionguy/flatbasic/evaluator"
	"github.com/navionguy/flatbasic/fileserv"
	"github.com/navionguy/flatbasic/object"
	"github.com/navionguy/flatbasic/parser"
	"github.com/navionguy/flatbasic/settings"
	"github.com/navionguy/flatbasic/terminal"
)

// exit codes
const (
	exitOK         = 0
	exitParseError = 1
	exitRunError   = 2
)

type options struct {
	config string
	png    string
	dump   bool
	serve  bool
	set    settings.Settings
	files  []string
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(exitOK)
	}
	if err != nil {
		log.Fatal(err)
	}

	if opts.serve {
		log.Printf("serving %s, listening on %q...", opts.set.Dir, opts.set.Listen)
		log.Fatal(http.ListenAndServe(opts.set.Listen, startup(opts.set)))
	}

	switch {
	case len(opts.files) > 0:
		src, err := os.ReadFile(opts.files[0])
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(runSource(string(src), opts, os.Stdout, os.Stderr))

	case term.IsTerminal(int(os.Stdin.Fd())):
		trm := terminal.New(os.Stdout)
		sess := cli.New(trm, &canvas.Display{Scale: opts.set.Scale}, opts.set.Dir)
		sess.SetTrace(opts.set.Trace)
		if err := cli.Start(sess, opts.set.History); err != nil {
			log.Fatal(err)
		}

	default:
		src, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal(err)
		}
		os.Exit(runSource(string(src), opts, os.Stdout, os.Stderr))
	}
}

// parseFlags layers the command line over the settings file and environment
func parseFlags(args []string, errOut io.Writer) (options, error) {
	var opts options

	fset := flag.NewFlagSet("flatbasic", flag.ContinueOnError)
	fset.SetOutput(errOut)
	fset.StringVar(&opts.config, "config", "", "YAML settings file")
	fset.StringVar(&opts.png, "png", "", "save the graphics screen to this PNG file")
	fset.BoolVar(&opts.dump, "dump", false, "dump the parsed program before running it")
	fset.BoolVar(&opts.serve, "serve", false, "start the program browser instead of running")
	trace := fset.Bool("trace", false, "print each statement index as it runs")
	dir := fset.String("dir", "", "directory of programs")
	listen := fset.String("listen", "", "address the program browser listens on")
	scale := fset.Int("scale", 0, "size of a graphics pixel in the PNG")

	if err := fset.Parse(args); err != nil {
		return opts, err
	}
	opts.files = fset.Args()

	set, err := settings.Load(opts.config)
	if err != nil {
		return opts, err
	}

	// only flags actually given override the settings
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			set.Trace = *trace
		case "dir":
			set.Dir = *dir
		case "listen":
			set.Listen = *listen
		case "scale":
			set.Scale = *scale
		}
	})
	opts.set = set

	return opts, set.Validate()
}

// startup builds the program browser's routes
func startup(set settings.Settings) *mux.Router {
	return fileserv.NewRouter(set.Dir)
}

// runSource parses and runs a whole program, returning the exit code
func runSource(src string, opts options, out, errOut io.Writer) int {
	p := parser.NewFromString(src)
	prog := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(errOut, e.Error())
		}
		return exitParseError
	}

	if opts.dump {
		godump.Dump(prog)
	}

	trm := terminal.New(out)
	display := &canvas.Display{Scale: opts.set.Scale}
	env := object.NewEnvironment(trm, display)
	env.SetTrace(opts.set.Trace)

	code := exitOK
	if err := evaluator.Run(prog, env); err != nil {
		fmt.Fprintln(errOut, err)
		code = exitRunError
	}
	trm.Flush()

	// whatever got drawn is saved, even when the run failed
	if len(opts.png) > 0 && display.Canvas() != nil {
		if err := display.Canvas().SavePNG(opts.png); err != nil {
			fmt.Fprintln(errOut, err)
			code = exitRunError
		}
	}

	return code
}
