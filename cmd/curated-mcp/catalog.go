package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/roivaz/curated-mcp/internal/mcp"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "catalog",
		Short:        "Print the tool and resource catalog",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")
			srv := mcp.New(mcp.DefaultConfig())
			return writeCatalog(cmd.OutOrStdout(), srv.Catalog(), output)
		},
	}
	cmd.Flags().StringP("output", "o", "yaml", "Output format: yaml or json")
	return cmd
}

func writeCatalog(w io.Writer, c mcp.Catalog, format string) error {
	var (
		out []byte
		err error
	)
	switch format {
	case "yaml", "yml":
		out, err = yaml.Marshal(c)
	case "json":
		out, err = json.MarshalIndent(c, "", "  ")
		out = append(out, '\n')
	default:
		return fmt.Errorf("unsupported output %q (want yaml or json)", format)
	}
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	_, err = w.Write(out)
	return err
}
