package tui

import (
	"github.com/endorses/lippyphone/internal/pkg/cmdutil"
	"github.com/endorses/lippyphone/internal/pkg/tui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var TuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Start the softphone",
	Long: `Start lippyphone with an interactive terminal user interface.

Sections: chats, dialer, contacts and settings. Press ? inside the
interface for key bindings.

Examples:
  lp tui                             # Start with the sample directory
  lp tui --section dialer            # Open the dialer first
  lp tui --directory team.yaml -w    # Use and watch a directory file`,
	RunE: runTUI,
}

var (
	themeName     string
	startSection  string
	directoryFile string
	watch         bool
	logFile       string
)

func runTUI(cmd *cobra.Command, args []string) error {
	cfg := tui.Config{
		Theme:         cmdutil.GetStringConfig("tui.theme", themeName),
		StartSection:  cmdutil.GetStringConfig("tui.start_section", startSection),
		DirectoryFile: cmdutil.GetStringConfig("directory.file", directoryFile),
		Watch:         cmdutil.GetBoolConfig("directory.watch", watch),
		LogFile:       cmdutil.GetStringConfig("log.file", logFile),
		Settings:      tui.SettingsFromConfig(),
	}
	return tui.Run(cmd.Context(), cfg)
}

func init() {
	TuiCmd.Flags().StringVarP(&themeName, "theme", "t", "", "color theme: dark or light")
	TuiCmd.Flags().StringVarP(&startSection, "section", "s", "", "initial section: chats, dialer, contacts or settings")
	TuiCmd.Flags().StringVarP(&directoryFile, "directory", "d", "", "YAML directory file (default: embedded sample)")
	TuiCmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload the directory file when it changes")
	TuiCmd.Flags().StringVar(&logFile, "log-file", "", "write logs to this file while the interface runs")

	_ = viper.BindPFlag("tui.theme", TuiCmd.Flags().Lookup("theme"))
	_ = viper.BindPFlag("tui.start_section", TuiCmd.Flags().Lookup("section"))
	_ = viper.BindPFlag("directory.file", TuiCmd.Flags().Lookup("directory"))
	_ = viper.BindPFlag("directory.watch", TuiCmd.Flags().Lookup("watch"))
	_ = viper.BindPFlag("log.file", TuiCmd.Flags().Lookup("log-file"))
}
