package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "cs",
		Short:         "Card Sorter CLI (cs): sort a physical card pile with median splits",
		Long:          "cs (Card Sorter CLI) walks you through physically sorting a pile of numbered cards: it deals a deck, tells you how many cards to move to which pile after every confirmation, and can persist a run so you can put the cards down and resume later.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newSortCmd(app),
		newDeckCmd(app),
		newStatusCmd(app),
	)

	return rootCmd
}
