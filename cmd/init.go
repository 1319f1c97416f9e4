package cmd

import (
	"fmt"
	"strings"

	"github.com/momorph/pwdline/internal/errors"
	"github.com/spf13/cobra"
)

// supportedShells are the shells init and completion generate scripts for.
var supportedShells = []string{"bash", "zsh", "fish", "powershell"}

// initScripts wire pwdline into each supported shell. Every script exports
// PWDLINE_SHELL so the prompt command knows which escapes to emit.
var initScripts = map[string]string{
	"bash": `export PWDLINE_SHELL=bash
_pwdline_prompt() {
    PS1="$(command pwdline prompt) \\$ "
}
if [[ ";${PROMPT_COMMAND:-};" != *";_pwdline_prompt;"* ]]; then
    PROMPT_COMMAND="_pwdline_prompt${PROMPT_COMMAND:+;$PROMPT_COMMAND}"
fi
`,
	"zsh": `export PWDLINE_SHELL=zsh
setopt promptsubst
PROMPT='$(command pwdline prompt) %# '
`,
	"fish": `set -gx PWDLINE_SHELL fish
function fish_prompt
    command pwdline prompt
    echo -n ' > '
end
`,
	"powershell": `$env:PWDLINE_SHELL = "powershell"
function global:prompt {
    "$(pwdline prompt) PS> "
}
`,
}

var initCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Print the shell snippet that puts pwdline in the prompt",
	Example: `  eval "$(pwdline init bash)"                 # ~/.bashrc
  eval "$(pwdline init zsh)"                  # ~/.zshrc
  pwdline init fish | source                  # ~/.config/fish/config.fish
  Invoke-Expression (& pwdline init powershell)  # $PROFILE`,
	ValidArgs: supportedShells,
	Args:      cobra.ExactArgs(1),
	RunE:      runInit,
	GroupID:   groupPrompt,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	script, ok := initScripts[args[0]]
	if !ok {
		return unsupportedShell(args[0])
	}

	fmt.Fprint(cmd.OutOrStdout(), script)
	return nil
}

func unsupportedShell(name string) error {
	return errors.NewUsageError(fmt.Sprintf("Unsupported shell %q (supported: %s)", name, strings.Join(supportedShells, ", ")))
}
