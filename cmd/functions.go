package cmd

import (
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/FlorentATo/pixie/types"
)

var functionsCmd = &cobra.Command{
	Use:   "functions",
	Short: "List the registered scalar UDFs and UDAs with their signatures.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		info, _, err := loadRegistry()
		if err != nil {
			return err
		}

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"name", "kind", "arg types", "output type"})
		table.SetAutoFormatHeaders(false)

		for _, udf := range info.ScalarUDFs {
			table.Append([]string{udf.Name, "ScalarUDF", formatTypes(udf.ExecArgTypes), udf.ReturnType.String()})
		}
		for _, uda := range info.UDAs {
			table.Append([]string{uda.Name, "UDA", formatTypes(uda.UpdateArgTypes), uda.FinalizeType.String()})
		}

		table.Render()
		return nil
	},
}

func formatTypes(argTypes []types.DataType) string {
	parts := make([]string, len(argTypes))
	for i, dt := range argTypes {
		parts[i] = dt.String()
	}
	return strings.Join(parts, ", ")
}

func init() {
	rootCmd.AddCommand(functionsCmd)
}
