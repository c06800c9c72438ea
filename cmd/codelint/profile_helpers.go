package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"codelint/internal/prof"
)

// setupProfiling enables the profilers named by the persistent flags. The
// session is stopped by runCleanups, which also writes the heap profile.
func setupProfiling(cmd *cobra.Command) error {
	var opts prof.Options
	var err error
	if opts.CPUProfile, err = persistentString(cmd, "cpu-profile"); err != nil {
		return err
	}
	if opts.MemProfile, err = persistentString(cmd, "mem-profile"); err != nil {
		return err
	}
	if opts.RuntimeTrace, err = persistentString(cmd, "runtime-trace"); err != nil {
		return err
	}
	if opts == (prof.Options{}) {
		return nil
	}
	session, err := prof.Start(opts)
	if err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	addCleanup(session.Stop)
	return nil
}
