package cmd

import (
	"encoding/json"
	"fmt"

	progressadapter "github.com/bnema/cardsort-cli/internal/adapters/render/progress"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the persisted sorting session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			overview, err := app.sorter.Overview(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(overview)
			}

			rendered, err := app.overviewRenderer(overview, progressadapter.RenderOptions{
				Now: app.now(),
			})
			if err != nil {
				return fmt.Errorf("render session overview: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}
