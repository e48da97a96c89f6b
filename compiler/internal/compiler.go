package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xiaobogaga/jmm/compiler/internal/analysis"
	"github.com/xiaobogaga/jmm/compiler/internal/ir"
	"github.com/xiaobogaga/jmm/compiler/internal/jasmin"
	"github.com/xiaobogaga/jmm/compiler/internal/logger"
	"github.com/xiaobogaga/jmm/compiler/internal/report"
)

const (
	astSuffix    = ".ast.json"
	irSuffix     = ".ir.json"
	jasminSuffix = ".j"
)

type Config struct {
	// Path is a directory of front-end products or a single one.
	Path string
	// Output is the directory jasmin files are saved to. When empty they are saved next to their input.
	Output          string
	Verbose         bool
	BytecodeVersion string
	Jobs            int
}

// Compile checks every syntax tree (*.ast.json) under cfg.Path, printing its reports to out, then
// generates a jasmin file for every IR unit (*.ir.json). Generation is skipped when the check found errors.
func Compile(ctx context.Context, cfg Config, out io.Writer) error {
	astFiles, irFiles, err := inputFiles(cfg.Path)
	if err != nil {
		return err
	}
	logger.Info("compiler: start type checker", "files", len(astFiles))
	errorCount := 0
	for _, file := range astFiles {
		reports, err := analyzeFile(file)
		if err != nil {
			return err
		}
		for _, r := range reports {
			fmt.Fprintf(out, "%s: %s\n", file, r)
		}
		errorCount += len(report.Errors(reports))
	}
	if errorCount > 0 {
		return fmt.Errorf("type checker found %d error(s)", errorCount)
	}
	logger.Info("compiler: start generate codes", "files", len(irFiles))
	return generateFiles(ctx, cfg, irFiles, out)
}

func isAstFile(name string) bool {
	return strings.HasSuffix(name, astSuffix)
}

func isIRFile(name string) bool {
	return strings.HasSuffix(name, irSuffix)
}

func inputFiles(path string) (astFiles, irFiles []string, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, err
	}
	var files []string
	if info.IsDir() {
		entries, err := os.ReadDir(path)
		if err != nil {
			return nil, nil, err
		}
		for _, entry := range entries {
			// Ignore sub path
			if entry.IsDir() {
				continue
			}
			files = append(files, filepath.Join(path, entry.Name()))
		}
	} else {
		files = []string{path}
	}
	for _, file := range files {
		switch {
		case isAstFile(file):
			astFiles = append(astFiles, file)
		case isIRFile(file):
			irFiles = append(irFiles, file)
		}
	}
	return astFiles, irFiles, nil
}

func analyzeFile(file string) ([]report.Report, error) {
	rd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	unit, err := analysis.DecodeUnit(rd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return analysis.Analyze(unit.Root, unit.Table), nil
}

func decodeIRFile(file string) (*ir.ClassUnit, error) {
	rd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer rd.Close()
	unit, err := ir.DecodeClassUnit(rd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	return unit, nil
}

func generateFiles(ctx context.Context, cfg Config, files []string, out io.Writer) error {
	units := make([]*ir.ClassUnit, 0, len(files))
	for _, file := range files {
		unit, err := decodeIRFile(file)
		if err != nil {
			return err
		}
		units = append(units, unit)
	}
	options := jasmin.DefaultOptions()
	options.BytecodeVersion = cfg.BytecodeVersion
	results, err := jasmin.BuildAll(ctx, units, options, cfg.Jobs)
	if err != nil {
		return err
	}
	for i, result := range results {
		dir := cfg.Output
		if dir == "" {
			dir = filepath.Dir(files[i])
		}
		saved := filepath.Join(dir, result.ClassName+jasminSuffix)
		if err := os.WriteFile(saved, []byte(result.Code), 0o644); err != nil {
			return err
		}
		logger.Info("compiler: saved", "class", result.ClassName, "path", saved)
		if cfg.Verbose {
			fmt.Fprintln(out, result.Code)
		}
	}
	return nil
}
