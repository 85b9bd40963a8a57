package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joshuapare/shellkit/cmd/shellexplorer/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	args := os.Args[1:]
	debugMode := false
	configPath := ""

	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--debug", "-d":
			debugMode = true
		case "--config":
			if i+1 < len(args) {
				i++
				configPath = args[i]
			}
		default:
			filteredArgs = append(filteredArgs, args[i])
		}
	}

	if err := logger.Init(logger.Options{
		Enabled: debugMode,
		Level:   slog.LevelDebug,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if len(filteredArgs) >= 1 {
		switch filteredArgs[0] {
		case "--help", "-h":
			printHelp()
			os.Exit(0)
		case "--version", "-v":
			fmt.Printf("shellexplorer %s\n", version)
			fmt.Printf("  commit: %s\n", commit)
			fmt.Printf("  built: %s\n", date)
			os.Exit(0)
		}
	}

	var cfg *Config
	if configPath != "" {
		c, err := loadConfig(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading --config: %v\n", err)
			os.Exit(1)
		}
		cfg = c
	}

	scriptPath := ""
	if len(filteredArgs) >= 1 {
		scriptPath = filteredArgs[0]
	}

	logger.Info("starting shellexplorer", "script", scriptPath, "debug", debugMode)

	m, err := NewModel(cfg, scriptPath)
	if err != nil {
		logger.Error("failed to build model", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}

	logger.Info("shellexplorer exited normally")
}

func printHelp() {
	fmt.Println("shellexplorer - interactive TUI for the embeddable command shell registry")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  shellexplorer [options] [SCRIPT]")
	fmt.Println()
	fmt.Println("DESCRIPTION:")
	fmt.Println("  Launches an interactive terminal UI for browsing and driving a shell")
	fmt.Println("  registry: a tree pane showing directories, instances, attributes and")
	fmt.Println("  methods, a detail pane showing signatures and live attribute values,")
	fmt.Println("  and a command line that runs against the same shell as shellctl.")
	fmt.Println()
	fmt.Println("  If SCRIPT is given, it is sourced before the TUI starts.")
	fmt.Println()
	fmt.Println("NAVIGATION:")
	fmt.Println("  tab          Switch focus between the tree and the command line")
	fmt.Println("  up/k down/j  Move the tree cursor")
	fmt.Println("  right/l      Expand the selected node")
	fmt.Println("  left/h       Collapse the selected node, or go to its parent")
	fmt.Println("  enter        In the tree: expand. In the command line: run the command")
	fmt.Println("  ctrl+c       Quit")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -d, --debug    Enable debug logging to ~/.shellexplorer/logs/")
	fmt.Println("  --config FILE  Seed pwd/variables/arguments from a YAML config file")
	fmt.Println("  -h, --help     Show this help message")
	fmt.Println("  -v, --version  Show version information")
	fmt.Println()
	fmt.Println("For non-interactive operation, use the 'shellctl' command instead.")
}
