package main

import (
	"context"
	"fmt"

	"swmterm/cmd/swmterm/cli"
	"swmterm/internal/content"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// NewIndexCmd creates the index command
func NewIndexCmd() *cobra.Command {
	var knowledge bool

	cmd := &cobra.Command{
		Use:   "index [file]",
		Short: "Validate a content index and summarise it",
		Long:  `Parse a terminal-index.json (a path or URL, defaulting to the configured index) and print its statistics, or the derived knowledge base with --knowledge.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			location := cfg.IndexLocation()
			if len(args) == 1 {
				location = args[0]
			}

			source := content.SourceFor(location)
			data, err := source.Fetch(context.Background())
			if err != nil {
				return err
			}
			snap, err := content.ParseIndex(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var doc interface{} = snap.Stats()
			if knowledge {
				doc = snap.Knowledge
			} else {
				cli.PrintSuccess(out, fmt.Sprintf("%s is a valid content index", source))
				cli.PrintHeader(out, "Statistics")
			}

			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("failed to encode output: %w", err)
			}
			return enc.Close()
		},
	}

	cmd.Flags().BoolVar(&knowledge, "knowledge", false, "print the knowledge base as YAML")
	return cmd
}
