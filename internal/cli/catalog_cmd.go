package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alansaviolobo/atlaskit/pkg/catalog"
)

// catalogCommand creates the catalog command, printing the resolved
// catalog document.
func (c *CLI) catalogCommand() *cobra.Command {
	var noCache, validate bool

	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Fetch and print the configured layer catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := c.loadCatalog(cmd.Context(), noCache)
			if err != nil {
				return err
			}

			if validate {
				results, err := doc.Validate()
				if err != nil {
					return err
				}
				printInfo("Catalog %q: %d layer(s)", doc.Name, len(doc.Layers))
				if invalid := reportResults(results); invalid > 0 {
					return fmt.Errorf("%d invalid layer(s)", invalid)
				}
				return nil
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the catalog cache")
	cmd.Flags().BoolVar(&validate, "validate", false, "validate the catalog instead of printing it")

	return cmd
}

// loadCatalog resolves the catalog per config precedence: local file,
// then remote URL (with built-in fallback), then built-in defaults.
func (c *CLI) loadCatalog(ctx context.Context, noCache bool) (*catalog.Document, error) {
	if c.Config.Catalog.File != "" {
		return catalog.Load(c.Config.Catalog.File)
	}

	if c.Config.Catalog.URL != "" {
		spinner := newSpinner(ctx, "Fetching catalog...")
		spinner.Start()
		defer spinner.Stop()

		fetcher := catalog.NewFetcher(c.Config.Catalog.URL, c.newCache(noCache), c.Logger)
		return fetcher.FetchOrDefault(ctx), nil
	}

	return catalog.Default(), nil
}
