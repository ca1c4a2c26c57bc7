package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/cardsort-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newDeckCmd(app *app) *cobra.Command {
	var (
		seed   uint64
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "deck <uniques> [group...]",
		Short: "Deal a deck and print its streaks without sorting it",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			uniques, groups, err := parseDeckArgs(args)
			if err != nil {
				return err
			}

			deck := app.sorter.Deal(uniques, groups, resolveSeed(seed, app.now))

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(deckOutput{
					Cards:   deck.Size(),
					Streaks: deck.Streaks(),
					Order:   deck.Flatten(),
				})
			}

			return writeDeckOutput(cmd, deck)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Deterministic deck seed (0 = time-derived)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")

	return cmd
}

type deckOutput struct {
	Cards   int
	Streaks []domain.Streak
	Order   []int
}

func writeDeckOutput(cmd *cobra.Command, deck domain.StreakArray) error {
	w := cmd.OutOrStdout()

	if _, err := fmt.Fprintf(w, "%d cards in %d streaks\n", deck.Size(), deck.Len()); err != nil {
		return err
	}

	for i := 0; i < deck.Len(); i++ {
		s := deck.Get(i)
		if _, err := fmt.Fprintf(w, "  [%d..%d)\t%d cards\n", s.Min, s.Min+s.Size, s.Size); err != nil {
			return err
		}
	}

	if deck.Size() == 0 {
		return nil
	}

	values := deck.Flatten()
	order := make([]string, len(values))
	for i, v := range values {
		order[i] = fmt.Sprintf("%d", v)
	}
	_, err := fmt.Fprintf(w, "order: %s\n", strings.Join(order, " "))
	return err
}
