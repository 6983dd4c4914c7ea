package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"babysched/internal/analyzer"
	"babysched/internal/config"
	"babysched/internal/render"
	"babysched/internal/sample"
	"babysched/internal/tui"
)

func main() {
	var (
		file      = flag.String("file", "", "schedule log file to analyze (\"-\" reads stdin; default: config log_file or the built-in sample)")
		printMode = flag.Bool("print", false, "print the tables to stdout instead of starting the interactive view")
		noHide    = flag.Bool("no-hide", false, "keep stale events in the main table")
	)
	flag.Parse()

	cfg, err := config.LoadFromDefaultPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	path := *file
	if path == "" {
		path = cfg.LogFile
	}

	opts := cfg.Options()
	if *noHide {
		opts.HideStaleEvents = false
	}

	if *printMode || path == "-" {
		if err := printTables(path, opts); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	model := tui.NewModel(tui.ModelOptions{
		Source:  path,
		Options: opts,
		Theme:   cfg.Theme,
	})
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

// printTables runs one analysis pass and writes the tables to stdout
func printTables(path string, opts analyzer.Options) error {
	data, err := readInput(path)
	if err != nil {
		return err
	}

	rep, err := analyzer.Analyze(data, opts)
	if err != nil {
		return err
	}

	fmt.Print(render.Report(rep))
	return nil
}

// readInput loads the log text from a file, stdin, or the sample data
func readInput(path string) (string, error) {
	switch path {
	case "":
		return sample.Data, nil
	case "-":
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
