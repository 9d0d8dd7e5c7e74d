package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"swmterm/cmd/swmterm/cli"
	"swmterm/internal/terminal"
	"swmterm/internal/vfs"
	"swmterm/pkg/types"

	"github.com/spf13/cobra"
)

// NewExecCmd creates the exec command
func NewExecCmd() *cobra.Command {
	var cwd string

	cmd := &cobra.Command{
		Use:   "exec [--cwd /path] -- <command line>",
		Short: "Run one terminal command and print its output",
		Long:  `Run a single command line (for example "ls projects" or "ask what about rails?") against the content index and print the result.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newApp(cfg)
			if err := a.store.LoadOnce(context.Background()); err != nil {
				cli.PrintWarning(cmd.ErrOrStderr(), fmt.Sprintf("content index unavailable, using built-in content: %v", err))
			}

			res := a.exec.Execute(terminal.Parse(strings.Join(args, " ")), vfs.Normalize(cwd))
			printResult(cmd.OutOrStdout(), res)
			return nil
		},
	}

	cmd.Flags().StringVar(&cwd, "cwd", "/", "working directory inside the virtual file system")
	return cmd
}

func printResult(w io.Writer, res terminal.Result) {
	switch res.Kind {
	case types.ResultClear, types.ResultClose:
		return
	case types.ResultImage:
		fmt.Fprintf(w, "[image] %s\n", res.Image)
	}
	if res.Text != "" {
		fmt.Fprintln(w, res.Text)
	}
}
