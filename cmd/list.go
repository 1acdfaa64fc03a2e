package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"incfix.dev/pkg/incfix/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [root]",
		Short: "List source files and include counts",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.List(domain.ListArgs{
				Root:       parseRoot(args),
				Extensions: viper.GetStringSlice(extConfigKey),
				Exclude:    viper.GetStringSlice(excludeConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
