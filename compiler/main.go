package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/xiaobogaga/jmm/compiler/internal"
	"github.com/xiaobogaga/jmm/compiler/internal/logger"
)

// Checks and generates jasmin code from the products of the jmm front end: syntax trees with their
// symbol tables (*.ast.json) and IR units (*.ir.json).

var (
	path      = flag.String("path", ".", "the directory or file of front-end products")
	output    = flag.String("o", "", "the directory jasmin files are saved to, next to the inputs by default")
	verbose   = flag.Bool("v", false, "whether print generated jasmin code and debug logs")
	watch     = flag.Bool("watch", false, "whether compile again when an input changes")
	bytecode  = flag.String("bytecode", "", "class file version written as a .bytecode directive, e.g. 49.0")
	logFormat = flag.String("log-format", "text", "log format, text or json")
	jobs      = flag.Int("jobs", 0, "max classes generated at the same time, 0 for no limit")
)

func main() {
	flag.Parse()
	logCfg := logger.DefaultConfig()
	logCfg.Format = *logFormat
	if *verbose {
		logCfg.Level = logger.LevelDebug
	}
	logger.Init(logCfg)

	cfg := internal.Config{
		Path:            *path,
		Output:          *output,
		Verbose:         *verbose,
		BytecodeVersion: *bytecode,
		Jobs:            *jobs,
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	var err error
	if *watch {
		err = internal.Watch(ctx, cfg, os.Stdout)
	} else {
		err = internal.Compile(ctx, cfg, os.Stdout)
	}
	if err != nil {
		fmt.Printf("[compiler]: failed to compile: %s, err: %v\n", *path, err)
		stop()
		os.Exit(1)
	}
}
