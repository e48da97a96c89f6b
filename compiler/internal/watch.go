package internal

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/xiaobogaga/jmm/compiler/internal/logger"
)

// Watch compiles once, then compiles again whenever a front-end product under cfg.Path is created or
// written, until ctx is done. Failed compilations are printed and don't stop watching.
func Watch(ctx context.Context, cfg Config, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	dir, err := watchedDir(cfg.Path)
	if err != nil {
		return err
	}
	if err := watcher.Add(dir); err != nil {
		return err
	}
	compileAndReport(ctx, cfg, out)
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !triggersCompile(cfg.Path, ev) {
				continue
			}
			logger.Info("compiler: input changed", "path", ev.Name, "op", ev.Op.String())
			compileAndReport(ctx, cfg, out)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("compiler: watch error", "err", err)
		}
	}
}

func watchedDir(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if info.IsDir() {
		return path, nil
	}
	return filepath.Dir(path), nil
}

// triggersCompile is true for creates and writes of inputs. Writes of generated jasmin files don't match.
func triggersCompile(path string, ev fsnotify.Event) bool {
	if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
		return false
	}
	if !isAstFile(ev.Name) && !isIRFile(ev.Name) {
		return false
	}
	info, err := os.Stat(path)
	if err == nil && !info.IsDir() {
		return filepath.Clean(ev.Name) == filepath.Clean(path)
	}
	return true
}

func compileAndReport(ctx context.Context, cfg Config, out io.Writer) {
	if err := Compile(ctx, cfg, out); err != nil {
		fmt.Fprintf(out, "[compiler]: failed to compile: %s, err: %v\n", cfg.Path, err)
	}
}
