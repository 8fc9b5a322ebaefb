package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"lumen/internal/artifact"
	"lumen/internal/typedtree"
)

var artifactCmd = &cobra.Command{
	Use:   "artifact",
	Short: "Inspect and preload compiled unit metadata",
}

var artifactShowCmd = &cobra.Command{
	Use:   "show [flags] file.lmc",
	Short: "Print the contents of one unit-metadata file",
	Args:  cobra.ExactArgs(1),
	RunE:  runArtifactShow,
}

var artifactWarmCmd = &cobra.Command{
	Use:   "warm [flags]",
	Short: "Preload every artifact on the unit path into memory",
	Long:  `Warm walks the configured unit path and decodes every artifact, reporting how many loaded`,
	Args:  cobra.NoArgs,
	RunE:  runArtifactWarm,
}

func init() {
	artifactShowCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	artifactWarmCmd.Flags().Int("jobs", 0, "parallel loads (0 = one per CPU)")
	artifactWarmCmd.Flags().String("manifest", "", "path to lumen.toml (discovered when empty)")
	artifactCmd.AddCommand(artifactShowCmd)
	artifactCmd.AddCommand(artifactWarmCmd)
}

type artifactPayload struct {
	Unit          string   `json:"unit"`
	SourceFile    string   `json:"source_file"`
	SourceDigest  string   `json:"source_digest,omitempty"`
	BuildPath     []string `json:"build_path,omitempty"`
	Pack          []string `json:"pack,omitempty"`
	InterfaceOnly bool     `json:"interface_only,omitempty"`
	Unreadable    bool     `json:"unreadable,omitempty"`
	Decls         int      `json:"decls"`
}

func runArtifactShow(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	a, err := artifact.Load(args[0])
	if err != nil {
		return err
	}

	switch format {
	case "pretty":
		renderArtifactPretty(cmd.OutOrStdout(), a)
		return nil
	case "json":
		payload := artifactPayload{
			Unit:          a.Unit,
			SourceFile:    a.SourceFile,
			BuildPath:     a.BuildPath,
			Pack:          a.Pack,
			InterfaceOnly: a.InterfaceOnly,
			Unreadable:    a.Unreadable,
			Decls:         len(a.Decls),
		}
		if !a.SourceDigest.IsZero() {
			payload.SourceDigest = a.SourceDigest.String()
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func renderArtifactPretty(out io.Writer, a *artifact.Artifact) {
	fmt.Fprintf(out, "unit:   %s\n", a.Unit)
	fmt.Fprintf(out, "source: %s\n", a.SourceFile)
	if !a.SourceDigest.IsZero() {
		fmt.Fprintf(out, "digest: %s\n", a.SourceDigest)
	}
	if a.InterfaceOnly {
		fmt.Fprintln(out, "interface-only")
	}
	if a.Unreadable {
		fmt.Fprintln(out, "unreadable (no declarations recovered)")
	}
	if len(a.Pack) > 0 {
		fmt.Fprintf(out, "pack:   %s\n", strings.Join(a.Pack, ", "))
	}
	if len(a.BuildPath) > 0 {
		fmt.Fprintf(out, "build path:\n")
		for _, dir := range a.BuildPath {
			fmt.Fprintf(out, "  %s\n", dir)
		}
	}
	if len(a.Decls) > 0 {
		fmt.Fprintln(out, "declarations:")
		printDecls(out, a.Decls, 1)
	}
}

func printDecls(out io.Writer, decls []typedtree.Decl, depth int) {
	indent := strings.Repeat("  ", depth)
	for i := range decls {
		d := &decls[i]
		switch {
		case d.Target != nil:
			fmt.Fprintf(out, "%s%s %s -> %s\n", indent, d.Kind, d.Name, d.Target)
		case d.Loc.IsNone():
			fmt.Fprintf(out, "%s%s %s\n", indent, d.Kind, d.Name)
		default:
			fmt.Fprintf(out, "%s%s %s @ %d:%d\n", indent, d.Kind, d.Name, d.Loc.Line, d.Loc.Col)
		}
		if len(d.Children) > 0 {
			printDecls(out, d.Children, depth+1)
		}
	}
}

func runArtifactWarm(cmd *cobra.Command, args []string) error {
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cache := artifact.NewCache()
	exts := cfg.ArtifactExts(cfg.Prefer)
	n, err := cache.Preload(cmd.Context(), cfg.UnitPath, exts, jobs)
	if err != nil {
		return fmt.Errorf("preload failed after %d artifacts: %w", n, err)
	}
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "warmed %d artifacts from %d directories\n", n, len(cfg.UnitPath))
	}
	return nil
}
