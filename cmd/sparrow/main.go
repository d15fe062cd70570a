package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	sparrow "github.com/nvanthao/sparrow"
	"github.com/nvanthao/sparrow/editor"
	"github.com/nvanthao/sparrow/tui"
)

var (
	logPath   string
	themePath string
)

var rootCmd = &cobra.Command{
	Use:   "sparrow <file>",
	Short: "A small terminal text editor",
	Long:  `Sparrow is a small terminal text editor with undo, redo, and incremental search. Opening a file that does not exist yet creates it on the first save.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("sparrow %s\n", sparrow.VersionTag())
	},
}

func init() {
	rootCmd.Flags().StringVar(&logPath, "log", "", "append debug logs to this file")
	rootCmd.Flags().StringVar(&themePath, "config", "", "load colors from this theme file")
	rootCmd.AddCommand(versionCmd)
}

func run(path string) error {
	logger := log.New(os.Stderr)
	logger.SetLevel(log.WarnLevel)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log %s: %w", logPath, err)
		}
		defer f.Close()
		logger = log.New(f)
		logger.SetLevel(log.DebugLevel)
	}

	var cfg tui.File
	if themePath != "" {
		var err error
		if cfg, err = tui.LoadConfig(themePath); err != nil {
			return err
		}
	}
	styles := cfg.Styles()

	text, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("open %s: %w", path, err)
	}

	ed := editor.New(string(text), path)
	ed.SetTabWidth(cfg.TabWidth)
	m := tui.New(ed, tui.Config{Styles: &styles, Logger: logger})

	logger.Debug("starting", "path", path, "bytes", len(text))
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
