package show

import (
	"fmt"
	"io"
	"slices"

	"github.com/endorses/lippyphone/internal/pkg/cmdutil"
	"github.com/endorses/lippyphone/internal/pkg/output"
	"github.com/endorses/lippyphone/internal/pkg/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Display the effective configuration",
	Long:  `Show every configuration key with the value in effect after flags, environment, config file and defaults are applied.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return showConfig(cmd.OutOrStdout(), jsonOutput)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Display build information",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		if jsonOutput {
			return output.WriteJSON(cmd.OutOrStdout(), version.Get(), output.IsTTY())
		}
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "lp", version.GetFullVersion())
		return err
	},
}

func init() {
	configCmd.Flags().Bool("json", false, "Output in JSON format")
	versionCmd.Flags().Bool("json", false, "Output in JSON format")
}

// effectiveConfig returns the known keys with their current values
func effectiveConfig() map[string]any {
	cfg := make(map[string]any, len(cmdutil.Defaults))
	for key := range cmdutil.Defaults {
		cfg[key] = viper.Get(key)
	}
	return cfg
}

func showConfig(w io.Writer, jsonOutput bool) error {
	cfg := effectiveConfig()

	if jsonOutput {
		return output.WriteJSON(w, cfg, output.IsTTY())
	}

	source := viper.ConfigFileUsed()
	if source == "" {
		source = "(none, defaults and environment)"
	}
	fmt.Fprintf(w, "=== lippyphone Configuration ===\n")
	fmt.Fprintf(w, "Config file: %s\n\n", source)

	keys := make([]string, 0, len(cfg))
	for k := range cfg {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	t := output.NewTable(w, "KEY", "VALUE")
	for _, k := range keys {
		t.Row(k, fmt.Sprint(cfg[k]))
	}
	return t.Flush()
}
