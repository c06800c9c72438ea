package main

import (
	"fmt"
	"os"
	"strings"

	"codelint/internal/driver"
)

// progressMode is the value of check --ui.
type progressMode string

const (
	progressAuto progressMode = "auto"
	progressOn   progressMode = "on"
	progressOff  progressMode = "off"
)

func parseProgressMode(value string) (progressMode, error) {
	switch m := progressMode(strings.TrimSpace(strings.ToLower(value))); m {
	case "":
		return progressAuto, nil
	case progressAuto, progressOn, progressOff:
		return m, nil
	default:
		return "", fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// wantProgress decides whether check draws the file list on stderr.
// --quiet always wins. In auto mode a stdin-only run gets no view: there is a
// single pseudo-file and stderr may be shared with the producer of the pipe.
func wantProgress(mode progressMode, quiet bool, paths []string) bool {
	if quiet {
		return false
	}
	switch mode {
	case progressOn:
		return true
	case progressOff:
		return false
	}
	if len(paths) > 0 && allStdin(paths) {
		return false
	}
	return isTerminal(os.Stderr)
}

func allStdin(paths []string) bool {
	for _, p := range paths {
		if p != driver.StdinPath {
			return false
		}
	}
	return true
}
