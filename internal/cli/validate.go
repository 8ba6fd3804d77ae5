package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alansaviolobo/atlaskit/pkg/catalog"
	"github.com/alansaviolobo/atlaskit/pkg/layers"
)

// validateCommand creates the validate command.
//
// The argument is either a catalog file (JSON or YAML) or an inline layer
// definition. Inline text goes through the repair parser first, so
// single-quoted, bare-key objects straight from a URL are accepted.
func (c *CLI) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file|json>",
		Short: "Validate layer configurations against the type registry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := strings.TrimSpace(args[0])

			if strings.HasPrefix(arg, "{") {
				cfg, err := layers.ParseConfig(arg)
				if err != nil {
					printError("Could not parse layer definition")
					printDetail("%v", err)
					return fmt.Errorf("1 invalid layer")
				}
				if invalid := reportResults(map[string]layers.Result{displayID(cfg): layers.Validate(cfg)}); invalid > 0 {
					return fmt.Errorf("%d invalid layer(s)", invalid)
				}
				return nil
			}

			doc, err := catalog.Load(arg)
			if err != nil {
				return err
			}

			results, err := doc.Validate()
			if err != nil {
				return err
			}

			printInfo("Validated %d layer(s) from %s", len(results), arg)
			if invalid := reportResults(results); invalid > 0 {
				return fmt.Errorf("%d invalid layer(s)", invalid)
			}
			return nil
		},
	}
}

func displayID(cfg *layers.Config) string {
	if cfg.ID != "" {
		return cfg.ID
	}
	return "(no id)"
}

// reportResults prints one line per layer plus indented findings, and
// returns the number of invalid layers.
func reportResults(results map[string]layers.Result) int {
	ids := make([]string, 0, len(results))
	for id := range results {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	invalid := 0
	for _, id := range ids {
		res := results[id]
		switch {
		case res.Valid && len(res.Warnings) == 0:
			printSuccess("%s", id)
		case res.Valid:
			printWarning("%s", id)
		default:
			invalid++
			printError("%s", id)
		}

		for _, e := range res.Errors {
			printDetail("error: %s", e)
		}
		for _, w := range res.Warnings {
			printDetail("warning: %s", w)
		}
	}

	return invalid
}
