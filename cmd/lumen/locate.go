package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"lumen/internal/config"
	"lumen/internal/locate"
	"lumen/internal/ui"
)

var locateCmd = &cobra.Command{
	Use:   "locate [flags] PATH",
	Short: "Resolve a qualified path to its defining declaration",
	Long:  `Locate resolves a fully qualified path like Std.List.map to the file and position where it is declared`,
	Args:  cobra.ExactArgs(1),
	RunE:  runLocate,
}

func init() {
	locateCmd.Flags().Bool("interface", false, "jump to the interface form instead of the implementation")
	locateCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	locateCmd.Flags().String("manifest", "", "path to lumen.toml (discovered when empty)")
}

func runLocate(cmd *cobra.Command, args []string) error {
	ident := args[0]

	// Получаем флаги
	wantInterface, err := cmd.Flags().GetBool("interface")
	if err != nil {
		return fmt.Errorf("failed to get interface flag: %w", err)
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	uiFlag, err := cmd.Root().PersistentFlags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := parseUIMode(uiFlag)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	tracer, err := setupTracing(cmd)
	if err != nil {
		return err
	}

	var pref *config.Preference
	if wantInterface {
		p := config.PreferInterface
		pref = &p
	}

	eng := locate.New(cfg, nil, tracer)
	res, err := eng.LocatePath(ident, pref)
	if err != nil {
		return fmt.Errorf("locate failed: %w", err)
	}

	// Несколько кандидатов: даём выбрать интерактивно
	if res.Kind == locate.KindMultipleMatches && format == "pretty" && pickerEnabled(mode) {
		choice, ok, err := pickCandidate(ident, res.Candidates)
		if err != nil {
			return err
		}
		if ok {
			res = locate.Result{Kind: locate.KindFound, File: choice, Pos: res.Pos}
		}
	}

	colorFlag, _ := cmd.Root().PersistentFlags().GetString("color")
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	switch format {
	case "pretty":
		return renderResultPretty(cmd.OutOrStdout(), res, useColor, quiet)
	case "json":
		return renderResultJSON(cmd.OutOrStdout(), ident, res)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func pickCandidate(ident string, candidates []string) (string, bool, error) {
	model := ui.NewPicker(fmt.Sprintf("%s matches several files", ident), candidates)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	final, err := program.Run()
	if err != nil {
		return "", false, err
	}
	picker, ok := final.(*ui.Picker)
	if !ok {
		return "", false, nil
	}
	choice, ok := picker.Choice()
	return choice, ok, nil
}
