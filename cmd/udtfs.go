package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var udtfsCmd = &cobra.Command{
	Use:   "udtfs",
	Short: "List the registered table functions and their output relations.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, registry, err := loadRegistry()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"name", "executor", "args", "output relation"})
		table.SetAutoFormatHeaders(false)

		for _, udtf := range registry.UDTFs() {
			args := make([]string, len(udtf.Args))
			for i, arg := range udtf.Args {
				args[i] = arg.Name + ":" + arg.ArgType.String()
			}
			table.Append([]string{
				udtf.Name,
				udtf.Executor.String(),
				strings.Join(args, ", "),
				udtf.Relation.String(),
			})
		}

		table.Render()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(udtfsCmd)
}
