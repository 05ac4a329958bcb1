package cmd

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/FlorentATo/pixie/planner"
	"github.com/FlorentATo/pixie/udfspb"
)

var udfInfoPath string

var rootCmd = &cobra.Command{
	Use:   "pixie-registry",
	Short: "Inspect and query a UDF registry descriptor set.",
	Example: `pixie-registry functions
pixie-registry resolve add FLOAT64:ST_BYTES FLOAT64:ST_BYTES
pixie-registry --udf-info ./udf_info.json udtfs`,
	SilenceUsage: true,
}

// Execute runs the root command. Errors have already been printed by cobra.
func Execute(ctx context.Context) {
	cobra.CheckErr(rootCmd.ExecuteContext(ctx))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&udfInfoPath, "udf-info", "",
		"Path to the descriptor set (default ~/.pixie/udf_info.yaml). JSON files are detected by extension.")
}

func loadDescriptorSet() (*udfspb.UDFInfo, error) {
	path := udfInfoPath
	if path == "" {
		home, err := homedir.Dir()
		if err != nil {
			return nil, fmt.Errorf("couldn't resolve home directory: %w", err)
		}
		path = filepath.Join(home, ".pixie", "udf_info.yaml")
	}
	info, err := udfspb.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't load descriptor set: %w", err)
	}
	return info, nil
}

func loadRegistry() (*udfspb.UDFInfo, *planner.RegistryInfo, error) {
	info, err := loadDescriptorSet()
	if err != nil {
		return nil, nil, err
	}
	registry, err := planner.NewRegistryInfo(info)
	if err != nil {
		return nil, nil, fmt.Errorf("couldn't build registry: %w", err)
	}
	return info, registry, nil
}
