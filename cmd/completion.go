package cmd

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion <bash|zsh|fish|powershell>",
	Short: "Generate shell completion script",
	Example: `  source <(pwdline completion bash)                           # bash, current session
  pwdline completion zsh > "${fpath[1]}/_pwdline"             # zsh
  pwdline completion fish > ~/.config/fish/completions/pwdline.fish
  pwdline completion powershell | Out-String | Invoke-Expression`,
	DisableFlagsInUseLine: true,
	ValidArgs:             supportedShells,
	Args:                  cobra.ExactArgs(1),
	RunE:                  runCompletion,
	GroupID:               groupSetup,
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

func runCompletion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	switch args[0] {
	case "bash":
		return rootCmd.GenBashCompletionV2(out, true)
	case "zsh":
		return rootCmd.GenZshCompletion(out)
	case "fish":
		return rootCmd.GenFishCompletion(out, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(out)
	}
	return unsupportedShell(args[0])
}
