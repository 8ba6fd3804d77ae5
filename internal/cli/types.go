package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alansaviolobo/atlaskit/pkg/layers"
)

// typesCommand creates the types command, listing the closed registry of
// layer kinds.
func (c *CLI) typesCommand() *cobra.Command {
	var interactive bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the registered layer types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				return runTypePicker()
			}

			for _, name := range layers.Types() {
				spec, _ := layers.Spec(name)
				printKeyValue(name, spec.Description)
				if len(spec.Required) > 0 {
					printDetail("required: %s", strings.Join(spec.Required, ", "))
				}
				if len(spec.RequiredOneOf) > 0 {
					printDetail("one of: %s", strings.Join(spec.RequiredOneOf, ", "))
				}
				if len(spec.Optional) > 0 {
					printDetail("optional: %s", strings.Join(spec.Optional, ", "))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick a type interactively and print its template")

	return cmd
}

// templateCommand creates the template command, emitting a minimal valid
// configuration for a layer kind.
func (c *CLI) templateCommand() *cobra.Command {
	return &cobra.Command{
		Use:       "template <type>",
		Short:     "Generate a minimal layer configuration for a type",
		Args:      cobra.ExactArgs(1),
		ValidArgs: layers.Types(),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := layers.Template(args[0])
			if err != nil {
				return err
			}
			return printTemplate(cfg)
		},
	}
}

func printTemplate(cfg *layers.Config) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(cfg)
}

func runTypePicker() error {
	name, ok, err := pickLayerType()
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	cfg, err := layers.Template(name)
	if err != nil {
		return err
	}

	fmt.Println()
	return printTemplate(cfg)
}
