package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"

	"lumen/internal/locate"
)

type locatePayload struct {
	Ident      string   `json:"ident"`
	Kind       string   `json:"kind"`
	File       string   `json:"file,omitempty"`
	Logical    string   `json:"logical,omitempty"`
	Line       uint32   `json:"line,omitempty"`
	Col        uint32   `json:"col,omitempty"`
	Doc        string   `json:"doc,omitempty"`
	Message    string   `json:"message,omitempty"`
	Candidates []string `json:"candidates,omitempty"`
}

func renderResultPretty(out io.Writer, res locate.Result, useColor, quiet bool) error {
	fileColor := color.New(color.FgCyan, color.Bold)
	posColor := color.New(color.FgYellow)
	docColor := color.New(color.Faint)
	if !useColor {
		fileColor.DisableColor()
		posColor.DisableColor()
		docColor.DisableColor()
	}

	switch res.Kind {
	case locate.KindFound:
		file := res.File
		if file == "" {
			file = res.Logical
		}
		if file == "" {
			fmt.Fprintf(out, "%s\n", posColor.Sprint(res.Pos))
		} else {
			fmt.Fprintf(out, "%s:%s\n", fileColor.Sprint(file), posColor.Sprint(res.Pos))
		}
		if res.Doc != "" && !quiet {
			fmt.Fprintf(out, "%s\n", docColor.Sprint(res.Doc))
		}
		return nil

	case locate.KindBuiltin:
		fmt.Fprintf(out, "%q is a builtin\n", res.Ident)
		return nil

	case locate.KindMultipleMatches:
		fmt.Fprintln(out, "several files match:")
		for _, c := range res.Candidates {
			fmt.Fprintf(out, "  %s\n", fileColor.Sprint(c))
		}
		return fmt.Errorf("ambiguous: %d candidate files", len(res.Candidates))

	default:
		return fmt.Errorf("%s", res)
	}
}

func renderResultJSON(out io.Writer, ident string, res locate.Result) error {
	payload := locatePayload{
		Ident:      ident,
		Kind:       res.Kind.String(),
		File:       res.File,
		Logical:    res.Logical,
		Line:       res.Pos.Line,
		Col:        res.Pos.Col,
		Doc:        res.Doc,
		Message:    res.Message,
		Candidates: res.Candidates,
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}
