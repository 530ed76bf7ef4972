package cmd

import (
	"fmt"

	"github.com/longkey1/playground/internal/playground/config"
	"github.com/longkey1/playground/internal/playground/demo"
	"github.com/spf13/cobra"
)

var sortedFlag bool

var zipDemos = []string{"pairs", "mapping", "labeled"}

// zipCmd represents the zip command
var zipCmd = &cobra.Command{
	Use:   "zip [pairs|mapping|labeled]",
	Short: "Run the sequence pairing demos",
	Long: `Pair the configured sequences element by element. Pairing stops at the
shortest input.

Available demos:
  pairs     words with numbers             "0: hello"
  mapping   words with dictionary entries  "hello: 1 - Swift"
  labeled   labels with (word, number)     "a, 0: hello"

Without an argument every demo is run, separated by blank lines.
Dictionary entries follow Go's map order unless --sorted is given.`,
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: zipDemos,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		selected := zipDemos
		if len(args) > 0 {
			selected = args
		}

		runner := demo.NewRunner(cmd.OutOrStdout(), logger)
		sorted := cfg.SortedMapping || sortedFlag
		for i, name := range selected {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			switch name {
			case "pairs":
				err = runner.Pairs(cfg.Words, cfg.Numbers)
			case "mapping":
				err = runner.Mapping(cfg.Words, cfg.Dictionary, sorted)
			case "labeled":
				err = runner.Labeled(cfg.Labels, cfg.Words, cfg.Numbers)
			}
			if err != nil {
				return fmt.Errorf("%s demo failed: %w", name, err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(zipCmd)

	zipCmd.Flags().BoolVar(&sortedFlag, "sorted", false, "render dictionary entries ordered by key")
}
