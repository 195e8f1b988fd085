package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ijalalfrz/flight-movement-importer/internal/app/dto"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/backup"
	"github.com/ijalalfrz/flight-movement-importer/internal/pkg/override"
)

const formatQuestion = "Choose the export format:\n  1 JSON\n  2 CSV\n> "

// runImport imports one file, asking the operator on the terminal for
// override departure times not found in OVERRIDE_FILE.
func runImport(args []string) error {
	flags, configFile := newFlagSet("import")
	_ = flags.Parse(args)

	if flags.NArg() != 1 {
		return errors.New("usage: flightimport import <file>")
	}
	path := flags.Arg(0)

	ctx := context.Background()

	app, err := initApp(ctx, *configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	terminal := override.NewTerminal(os.Stdin, os.Stdout)
	requester := override.Chain{app.tableRequester(), terminal}

	summary, err := app.importService.Import(ctx, dto.ImportRequest{
		FileName: filepath.Base(path),
		Content:  content,
	}, requester)
	if err != nil {
		return fmt.Errorf("import failed: %w", err)
	}

	printLines(os.Stdout, summary.Log)
	if summary.Saved {
		fmt.Fprintf(os.Stdout, "Import completed successfully!\n%d arrivals and %d departures processed.\n",
			summary.ArrivalsImported, summary.DeparturesGenerated)
	}

	return nil
}

// runExport writes the export file into the output directory. Without
// --format the operator is asked; no answer means JSON.
func runExport(args []string) error {
	flags, configFile := newFlagSet("export")
	outDir := flags.StringP("output", "o", ".", "output directory")
	format := flags.StringP("format", "f", "", "1|json or 2|csv")
	_ = flags.Parse(args)

	ctx := context.Background()

	app, err := initApp(ctx, *configFile)
	if err != nil {
		return err
	}
	defer app.Close()

	choice := *format
	if !flags.Changed("format") {
		choice, _ = override.NewTerminal(os.Stdin, os.Stdout).Choose(ctx, formatQuestion)
	}

	result, err := app.recordService.Export(ctx, dto.ExportRequest{Format: dto.ParseExportFormat(choice)})
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	written, err := backup.WriteFile(*outDir, result.FileName, result.Content)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	printLines(os.Stdout, strings.Split(result.Log, "\n"))
	fmt.Fprintf(os.Stdout, "Written to %s\n", written)

	return nil
}

func printLines(w io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
}
