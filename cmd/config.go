package cmd

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/longkey1/playground/internal/playground/config"
	"github.com/longkey1/playground/internal/playground/pairs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configFields = []string{"configfile", "initial_messages", "replacement", "words", "numbers", "labels", "dictionary", "sorted_mapping"}

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config [field]",
	Short: "Display current configuration",
	Long: `Display the current configuration values.
This command shows all configuration values loaded from the config file and environment variables.

If a field name is specified, only that field's value is displayed.
Available fields: ` + strings.Join(configFields, ", ") + `

Examples:
  playground config              # Show all configuration
  playground config words        # Show only words
  playground config dictionary   # Show only the dictionary`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}

		values := configValues(cfg, viper.ConfigFileUsed())

		if len(args) > 0 {
			field := strings.ToLower(args[0])
			value, ok := values[field]
			if !ok {
				return fmt.Errorf("unknown field: %s (available fields: %s)", args[0], strings.Join(configFields, ", "))
			}
			fmt.Fprintln(cmd.OutOrStdout(), value)
			return nil
		}

		renderConfig(cmd.OutOrStdout(), values)
		return nil
	},
}

// configValues formats every config field for display
func configValues(cfg *config.Config, configFile string) map[string]string {
	ints := lo.Map(cfg.Numbers, func(n int, _ int) string { return strconv.Itoa(n) })
	dict := lo.Map(slices.Collect(pairs.SortedEntries(cfg.Dictionary)), func(e lo.Entry[string, int], _ int) string {
		return fmt.Sprintf("%s=%d", e.Key, e.Value)
	})

	return map[string]string{
		"configfile":       configFile,
		"initial_messages": strings.Join(cfg.InitialMessages, ","),
		"replacement":      cfg.Replacement,
		"words":            strings.Join(cfg.Words, ","),
		"numbers":          strings.Join(ints, ","),
		"labels":           strings.Join(cfg.Labels, ","),
		"dictionary":       strings.Join(dict, ","),
		"sorted_mapping":   strconv.FormatBool(cfg.SortedMapping),
	}
}

func renderConfig(w io.Writer, values map[string]string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Field", "Value"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, field := range configFields {
		table.Append([]string{field, values[field]})
	}
	table.Render()
}

func init() {
	rootCmd.AddCommand(configCmd)
}
