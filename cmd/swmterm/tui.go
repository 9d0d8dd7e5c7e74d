package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"swmterm/internal/config"
	"swmterm/internal/log"
	"swmterm/internal/session"
	"swmterm/internal/tui"
	"swmterm/internal/tui/messages"
	"swmterm/internal/tui/styles"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var startOpen bool

// NewTUICmd creates the tui command
func NewTUICmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Start the terminal user interface",
		Long:  `Start the interactive terminal. This is also what swmterm runs without a subcommand.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cfg)
		},
	}
	cmd.Flags().BoolVar(&startOpen, "open", false, "open the terminal immediately instead of showing the splash")
	return cmd
}

func runTUI(cfg *config.Config) error {
	// The TUI owns the screen, so logs go to a file
	closeLog, err := logToFile(cfg.Log.File)
	if err != nil {
		return err
	}
	defer closeLog()

	a := newApp(cfg)
	sess := session.New(a.exec, session.WithPrompt(session.PromptConfig{
		User: cfg.Prompt.User,
		Host: cfg.Prompt.Host,
	}))

	opts := []tui.Option{
		tui.WithStyles(styles.New(cfg.Theme)),
		tui.WithStartOpen(startOpen),
	}
	if cfg.Boot.Enabled {
		opts = append(opts, tui.WithBoot(session.NewBoot(session.DefaultBootLines(), cfg.Boot.Speed)))
	}

	p := tea.NewProgram(tui.New(sess, a.store, opts...), tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stop, err := a.startReloader(ctx, cfg, func(path string, err error) {
		p.Send(messages.ContentReloadedMsg{
			Path:  filepath.Base(path),
			Stats: a.store.Snapshot().Stats(),
			Err:   err,
		})
	})
	if err != nil {
		return err
	}
	defer stop()

	log.LogWithFields(log.F("index", cfg.IndexLocation()), log.F("version", version)).Info("Starting TUI")
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

func logToFile(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(os.Stdout)
		f.Close()
	}, nil
}
