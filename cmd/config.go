package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/momorph/pwdline/internal/config"
	"github.com/momorph/pwdline/internal/errors"
	"github.com/momorph/pwdline/internal/logger"
	"github.com/momorph/pwdline/internal/ui"
	"github.com/spf13/cobra"
)

var forceInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect or create the pwdline configuration",
	Example: `  pwdline config show      # Print the effective configuration
  pwdline config path      # Print the configuration file location
  pwdline config init      # Write the default configuration`,
	GroupID: groupSetup,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file location",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), configPath())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file without asking")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return errors.NewError(err, "Failed to encode configuration")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configPath()
	out := cmd.OutOrStdout()

	if _, err := os.Stat(path); err == nil && !forceInit {
		ok, err := ui.ConfirmOverwrite(cmd.InOrStdin(), out, path)
		if err != nil {
			return errors.NewError(err, "Failed to read confirmation")
		}
		if !ok {
			fmt.Fprintln(out, "Aborted, configuration left unchanged")
			return nil
		}
	}

	if err := config.DefaultConfig().Save(path); err != nil {
		return errors.NewConfigError(err, "Failed to write configuration")
	}
	logger.Info("Wrote default configuration to %s", path)

	if !quietMode {
		fmt.Fprintln(out, lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true).Render("✓ Configuration written"))
		fmt.Fprintf(out, "  Path: %s\n", path)
	}
	return nil
}
