package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/viant/graphid"
	"github.com/viant/graphid/model/graph"
	"github.com/viant/graphid/sequence"
)

func nextCmd(root *rootOptions) *cobra.Command {
	var (
		kind   string
		prefix string
		scope  string
		count  int
	)
	cmd := &cobra.Command{
		Use:   "next",
		Short: "Allocate identifiers",
		Long: `Allocate identifiers from a fresh counter, one per line.

Examples:
  graphid next --count 3
  graphid next --kind edge --prefix R --count 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return fmt.Errorf("--count must be > 0")
			}
			config, err := root.config(cmd.Context())
			if err != nil {
				return err
			}
			config.Store = graphid.StoreConfig{Kind: graphid.StoreMemory}
			if scope != "" {
				config.Counter.Scope = sequence.Scope(scope)
			}
			elementKind := graph.Kind(kind)
			if prefix != "" {
				switch elementKind {
				case graph.KindVertex:
					config.Namespaces.Vertex = prefix
				case graph.KindEdge:
					config.Namespaces.Edge = prefix
				}
			}
			srv, err := graphid.NewWithContext(cmd.Context(), graphid.WithConfig(config))
			if err != nil {
				return err
			}
			manager, err := srv.Manager(elementKind)
			if err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				id, err := manager.Next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "kind", string(graph.KindVertex), "element kind: vertex or edge")
	cmd.Flags().StringVar(&prefix, "prefix", "", "override the namespace prefix")
	cmd.Flags().StringVar(&scope, "scope", "", "counter scope: process, shared or namespace")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of identifiers to allocate")
	return cmd
}
