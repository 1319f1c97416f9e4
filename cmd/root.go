/*
Copyright © 2025 Sun Asterisk Inc.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/momorph/pwdline/internal/config"
	"github.com/momorph/pwdline/internal/errors"
	"github.com/momorph/pwdline/internal/logger"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	debugMode bool
	quietMode bool
	cfgFile   string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "pwdline",
	Short: "Compact working directory for shell prompts",
	Long: `pwdline prints the working directory for a shell prompt. The home
directory becomes ~, a repository becomes its name, and only the last few
directories are kept.`,
	Example: `  pwdline prompt                        # Render the current directory
  eval "$(pwdline init bash)"           # Use pwdline in the bash prompt`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Logging problems are reported but never stop a command
		if err := logger.Init(debugMode); err != nil {
			logger.Warn("%v", err)
		}
	},
	// Errors are printed by Execute with their exit code
	SilenceErrors: true,
	SilenceUsage:  true,
	// Enable command suggestions for typos
	SuggestionsMinimumDistance: 2,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default $XDG_CONFIG_HOME/pwdline/config.yaml)")

	cobra.OnFinalize(logger.Close)

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return errors.NewUsageError(err.Error())
	})

	configureHelp()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("✗ %s", errors.FormatError(err, debugMode)))
		os.Exit(int(errors.CodeOf(err)))
	}
}

// configPath returns the config file selected by --config, PWDLINE_CONFIG or
// the xdg default, in that order.
func configPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.GetConfigFile()
}

// loadConfig loads the configuration and applies its log level unless
// --debug was given.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath())
	if err != nil {
		return nil, errors.NewConfigError(err, "Failed to load configuration")
	}
	if !debugMode {
		if err := logger.SetLevel(cfg.LogLevel); err != nil {
			logger.Warn("Ignoring log level %q: %v", cfg.LogLevel, err)
		}
	}
	return cfg, nil
}
