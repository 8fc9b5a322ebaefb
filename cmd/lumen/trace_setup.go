package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"lumen/internal/trace"
)

// setupTracing reads the trace flag and builds the tracer. Events go to
// stderr so they never mix with command output.
func setupTracing(cmd *cobra.Command) (trace.Tracer, error) {
	levelStr, err := cmd.Root().PersistentFlags().GetString("trace-level")
	if err != nil {
		return nil, fmt.Errorf("failed to get trace-level flag: %w", err)
	}
	level, err := trace.ParseLevel(levelStr)
	if err != nil {
		return nil, err
	}
	if level == trace.LevelOff {
		return trace.Nop, nil
	}
	return trace.NewStreamTracer(cmd.ErrOrStderr(), level), nil
}
