package cmd

import (
	"fmt"

	"github.com/momorph/pwdline/internal/directory"
	"github.com/momorph/pwdline/internal/errors"
	"github.com/momorph/pwdline/internal/logger"
	"github.com/momorph/pwdline/internal/pathfmt"
	"github.com/momorph/pwdline/internal/ui"
	"github.com/spf13/cobra"
)

var (
	repoRoot         string
	shellName        string
	homeDir          string
	truncationLength int
	fishStyleLength  int
	physicalPath     bool
	noStyle          bool
)

var promptCmd = &cobra.Command{
	Use:   "prompt [path]",
	Short: "Render the working directory for the prompt",
	Example: `  pwdline prompt                                  # Current directory
  pwdline prompt --fish-style-length=1            # Abbreviate elided directories
  pwdline prompt --repo-root "$(git rev-parse --show-toplevel 2>/dev/null)"
  pwdline prompt /usr/local/share/man --no-style  # Render a given path`,
	Args:    cobra.MaximumNArgs(1),
	RunE:    runPrompt,
	GroupID: groupPrompt,
}

func init() {
	promptCmd.Flags().StringVar(&repoRoot, "repo-root", "", "Root of the enclosing repository, contracted to its name")
	promptCmd.Flags().StringVar(&shellName, "shell", "", "Invoking shell (default $"+directory.EnvShell+")")
	promptCmd.Flags().StringVar(&homeDir, "home", "", "Home directory (default from the OS user profile)")
	promptCmd.Flags().IntVar(&truncationLength, "truncation-length", 0, "Number of trailing directories to show, 0 shows all")
	promptCmd.Flags().IntVar(&fishStyleLength, "fish-style-length", 0, "Abbreviate elided directories to this many characters")
	promptCmd.Flags().BoolVar(&physicalPath, "physical", false, "Show the physical path instead of $PWD")
	promptCmd.Flags().BoolVar(&noStyle, "no-style", false, "Print the path without colors")
	rootCmd.AddCommand(promptCmd)
}

func runPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	dirCfg := cfg.Directory
	flags := cmd.Flags()
	if flags.Changed("truncation-length") {
		dirCfg.TruncationLength = truncationLength
	}
	if flags.Changed("fish-style-length") {
		dirCfg.FishStylePwdDirLength = fishStyleLength
	}
	if dirCfg.TruncationLength < 0 || dirCfg.FishStylePwdDirLength < 0 {
		return errors.NewUsageError("Lengths must not be negative")
	}
	if physicalPath {
		dirCfg.UseLogicalPath = false
	}

	ctx := directory.NewContext()
	if len(args) == 1 {
		ctx.LogicalDir = args[0]
		dirCfg.UseLogicalPath = true
	}
	if homeDir != "" {
		ctx.Home = homeDir
	}
	if flags.Changed("shell") {
		ctx.Shell = shellName
	}
	ctx.RepoRoot = repoRoot

	seg, err := directory.Render(ctx, dirCfg)
	if err != nil {
		logger.Error("Failed to render directory", err)
		switch {
		case errors.Is(err, directory.ErrNoHome):
			return errors.NewPreconditionError(err, "Home directory is not available")
		case errors.Is(err, pathfmt.ErrNotAbsolute), errors.Is(err, pathfmt.ErrEmptyPath):
			return errors.NewPreconditionError(err, "Cannot render a relative or empty path")
		}
		return errors.NewError(err, "Failed to render directory").WithStackTrace()
	}

	out := cmd.OutOrStdout()
	r := ui.NewRenderer(out, !noStyle)
	rendered, err := ui.RenderSegment(r, seg, ctx.Shell)
	if err != nil {
		return errors.NewConfigError(err, "Invalid directory style")
	}

	fmt.Fprint(out, rendered)
	return nil
}
