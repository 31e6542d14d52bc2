// Package cli implements the graphid command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/viant/graphid"
)

type rootOptions struct {
	configURL string
	envFile   string
}

// RootCmd returns the graphid root command with all subcommands attached
func RootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "graphid",
		Short: "Allocate and check graph element identifiers",
		Long: `graphid allocates prefixed sequential identifiers for graph vertices and
edges and checks candidate values against the identifier contract.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadEnv(opts.envFile)
		},
	}
	cmd.PersistentFlags().StringVar(&opts.configURL, "config", "", "configuration URL (any afs scheme)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file loaded before reading configuration")

	cmd.AddCommand(nextCmd(opts))
	cmd.AddCommand(checkCmd())
	cmd.AddCommand(configCmd(opts))
	return cmd
}

// loadEnv loads the dotenv file when present; variables already set in the
// environment win.
func loadEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %v: %w", path, err)
	}
	return nil
}

func (o *rootOptions) config(ctx context.Context) (*graphid.Config, error) {
	if o.configURL == "" {
		return graphid.DefaultConfig(), nil
	}
	return graphid.LoadConfig(ctx, o.configURL, nil)
}
