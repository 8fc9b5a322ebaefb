package main

import (
	"fmt"
	"os"
	"strings"
)

// uiMode controls whether the interactive candidate picker may open.
type uiMode uint8

const (
	uiModeAuto uiMode = iota
	uiModeOn
	uiModeOff
)

func parseUIMode(value string) (uiMode, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return uiModeAuto, nil
	case "on":
		return uiModeOn, nil
	case "off":
		return uiModeOff, nil
	default:
		return uiModeAuto, fmt.Errorf("--ui must be auto, on or off (got %q)", value)
	}
}

// pickerEnabled decides whether to open the picker: forced on or off by the
// flag, otherwise only on a terminal.
func pickerEnabled(mode uiMode) bool {
	if mode == uiModeAuto {
		return isTerminal(os.Stdout)
	}
	return mode == uiModeOn
}
