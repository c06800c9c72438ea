package main

import (
	"errors"
	"fmt"
	"sync"

	"github.com/spf13/cobra"
)

var (
	cleanupMu sync.Mutex
	cleanups  []func() error
)

func addCleanup(f func() error) {
	cleanupMu.Lock()
	cleanups = append(cleanups, f)
	cleanupMu.Unlock()
}

// runCleanups runs registered cleanups once, newest first.
func runCleanups() error {
	cleanupMu.Lock()
	fs := cleanups
	cleanups = nil
	cleanupMu.Unlock()

	var errs []error
	for i := len(fs) - 1; i >= 0; i-- {
		errs = append(errs, fs[i]())
	}
	return errors.Join(errs...)
}

// setupRun starts tracing and profiling before any subcommand.
func setupRun(cmd *cobra.Command, _ []string) error {
	if err := setupTracing(cmd); err != nil {
		return err
	}
	if err := setupProfiling(cmd); err != nil {
		return err
	}
	return nil
}

func persistentString(cmd *cobra.Command, name string) (string, error) {
	v, err := cmd.Root().PersistentFlags().GetString(name)
	if err != nil {
		return "", fmt.Errorf("failed to get %s flag: %w", name, err)
	}
	return v, nil
}
