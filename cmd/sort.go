package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/cardsort-cli/internal/application"
	"github.com/bnema/cardsort-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newSortCmd(app *app) *cobra.Command {
	var (
		seed   uint64
		save   bool
		resume bool
	)

	cmd := &cobra.Command{
		Use:   "sort <uniques> [group...]",
		Short: "Run an interactive sorting session",
		Long:  "sort deals a deck of <uniques> shuffled cards plus one pre-sorted block per [group] size, then waits on stdin: every input line advances the run by one move instruction. Closing stdin stops the run; with --save the position is kept for --resume.",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var session *domain.Session

			if resume {
				if len(args) > 0 {
					return errors.New("--resume takes no deck arguments")
				}
				restored, err := app.sorter.Resume(cmd.Context())
				if err != nil {
					return err
				}
				session = restored
			} else {
				uniques, groups, err := parseDeckArgs(args)
				if err != nil {
					return err
				}
				session = domain.NewSession(app.sorter.Deal(uniques, groups, resolveSeed(seed, app.now)))
			}

			persist := save || resume
			printer := application.NewStepPrinter(cmd.OutOrStdout())
			scanner := bufio.NewScanner(cmd.InOrStdin())

			finished := false
			for scanner.Scan() {
				step := session.Advance()
				if err := printer.Print(step); err != nil {
					return err
				}
				if step.Done {
					finished = true
					break
				}
				if persist {
					if err := app.sorter.Save(cmd.Context(), session); err != nil {
						return err
					}
				}
			}
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read advance signal: %w", err)
			}

			if err := printer.Close(); err != nil {
				return err
			}

			if finished && persist {
				if err := app.sorter.Clear(cmd.Context()); err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Deterministic deck seed (0 = time-derived)")
	cmd.Flags().BoolVar(&save, "save", false, "Persist the session after every step")
	cmd.Flags().BoolVar(&resume, "resume", false, "Continue the persisted session")

	return cmd
}

// parseDeckArgs turns CLI arguments into the (uniques, groups) deck shape.
// The core never validates these; rejecting malformed counts is this layer's
// job.
func parseDeckArgs(args []string) (int, []int, error) {
	if len(args) == 0 {
		return 0, nil, errors.New("a uniques count is required")
	}

	counts := make([]int, 0, len(args))
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return 0, nil, fmt.Errorf("parse count %q: %w", arg, err)
		}
		if n < 0 {
			return 0, nil, fmt.Errorf("count %q must be non-negative", arg)
		}
		counts = append(counts, n)
	}

	return counts[0], counts[1:], nil
}

func resolveSeed(seed uint64, now func() time.Time) uint64 {
	if seed != 0 {
		return seed
	}
	return uint64(now().UnixNano())
}
