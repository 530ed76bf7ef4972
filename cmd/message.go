package cmd

import (
	"github.com/longkey1/playground/internal/playground/config"
	"github.com/longkey1/playground/internal/playground/demo"
	"github.com/spf13/cobra"
)

var contentFlag string

// messageCmd represents the message command
var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Run the message content demo",
	Long: `Create one message per configured initial value and update their content.
The first message is updated without a value and falls back to "No Content".
Every other message is updated with the configured replacement text.

Examples:
  playground message                        # No Content / This is New Content
  playground message --content "Goodbye"    # No Content / Goodbye`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		replacement := cfg.Replacement
		if cmd.Flags().Changed("content") {
			replacement = contentFlag
		}

		return demo.NewRunner(cmd.OutOrStdout(), logger).Messages(cfg.InitialMessages, replacement)
	},
}

func init() {
	rootCmd.AddCommand(messageCmd)

	messageCmd.Flags().StringVar(&contentFlag, "content", "", "replacement content for every message after the first")
}
