package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FlorentATo/pixie/types"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name> [DATA_TYPE[:SEMANTIC_TYPE]...]",
	Short: "Resolve a call site against the registry.",
	Example: `pixie-registry resolve add FLOAT64 FLOAT64
pixie-registry resolve px.upid_to_pod_name UINT128:ST_UPID`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, registry, err := loadRegistry()
		if err != nil {
			return err
		}

		name := args[0]
		callArgs := make([]types.ValueType, len(args)-1)
		for i, arg := range args[1:] {
			callArgs[i], err = parseValueType(arg)
			if err != nil {
				return err
			}
		}

		execType, err := registry.GetUDFExecType(name)
		if err != nil {
			return err
		}
		out, err := registry.ResolveUDFType(name, callArgs)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s (%s)\n", execType, name, out.DataType, out.SemanticType)
		return nil
	},
}

// parseValueType reads one argument of the form DATA_TYPE or
// DATA_TYPE:SEMANTIC_TYPE, e.g. "UINT128:ST_UPID".
func parseValueType(arg string) (types.ValueType, error) {
	dataName, semName, hasSemantic := strings.Cut(arg, ":")
	dt, ok := types.DataTypeFromName(dataName)
	if !ok {
		return types.ValueType{}, fmt.Errorf("unknown data type %q", dataName)
	}
	st := types.STUnspecified
	if hasSemantic {
		st, ok = types.SemanticTypeFromName(semName)
		if !ok {
			return types.ValueType{}, fmt.Errorf("unknown semantic type %q", semName)
		}
	}
	return types.NewValueType(dt, st), nil
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
