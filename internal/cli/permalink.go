package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alansaviolobo/atlaskit/pkg/layers"
	"github.com/alansaviolobo/atlaskit/pkg/permalink"
)

// decodeCommand creates the decode command: layers URL parameter in,
// reference list out.
func (c *CLI) decodeCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "decode <layers-param>",
		Short: "Decode a layers URL parameter into its references",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refs := permalink.Decode(args[0])

			if asJSON {
				return writeRefsJSON(refs)
			}

			for _, ref := range refs {
				if !ref.IsInline() {
					printKeyValue("bare", ref.ID)
					continue
				}
				printKeyValue("inline", ref.ID)
				res := layers.Validate(ref.Config)
				for _, e := range res.Errors {
					printDetail("error: %s", e)
				}
				for _, w := range res.Warnings {
					printDetail("warning: %s", w)
				}
			}
			printInfo("%d reference(s)", len(refs))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the decoded references as JSON")

	return cmd
}

// encodeCommand creates the encode command: a JSON reference list in, a
// layers URL parameter out. Each array element is either a string (bare
// id) or an object (inline config).
func (c *CLI) encodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <references-json>",
		Short: "Encode a reference list into a layers URL parameter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var entries []json.RawMessage
			if err := json.Unmarshal([]byte(args[0]), &entries); err != nil {
				return fmt.Errorf("references must be a JSON array: %w", err)
			}

			refs := make([]permalink.Reference, 0, len(entries))
			for _, entry := range entries {
				var id string
				if err := json.Unmarshal(entry, &id); err == nil {
					refs = append(refs, permalink.Bare(id))
					continue
				}

				var cfg layers.Config
				if err := json.Unmarshal(entry, &cfg); err != nil {
					return fmt.Errorf("reference entry must be a string or object: %w", err)
				}
				refs = append(refs, permalink.Inline(&cfg))
			}

			fmt.Println(permalink.Encode(refs))
			return nil
		},
	}
}

func writeRefsJSON(refs []permalink.Reference) error {
	type refOut struct {
		ID     string         `json:"id"`
		Inline bool           `json:"inline"`
		Config *layers.Config `json:"config,omitempty"`
	}

	out := make([]refOut, 0, len(refs))
	for _, r := range refs {
		out = append(out, refOut{ID: r.ID, Inline: r.IsInline(), Config: r.Config})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
