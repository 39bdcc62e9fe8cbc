package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/eykd/skillcheck/internal/skill"
)

// watchDebounce coalesces editor write bursts into one re-run.
const watchDebounce = 200 * time.Millisecond

// watchPackage re-runs rerun whenever the package directory or one of
// its reserved subdirectories changes, until the process is
// interrupted. The pipeline itself stays one-shot; this loop only
// drives repeated invocations.
func watchPackage(cmd *cobra.Command, dir string, rerun func()) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	for _, category := range skill.ReservedCategories {
		subdir := filepath.Join(dir, string(category))
		if info, err := os.Stat(subdir); err == nil && info.IsDir() {
			if err := watcher.Add(subdir); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: cannot watch %s: %v\n", subdir, err)
			}
		}
	}

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	fmt.Fprintf(cmd.ErrOrStderr(), "watching %s (interrupt to stop)\n", dir)

	var debounce <-chan time.Time
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0 {
				debounce = time.After(watchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "watch error: %v\n", err)
		case <-debounce:
			debounce = nil
			rerun()
		case <-interrupt:
			return nil
		}
	}
}
