// Package directory renders the working directory segment of the prompt.
//
// It resolves which directory to show and which ancestor to contract, then
// hands the decomposed path to pathfmt. Everything it needs from the
// environment is collected in a Context before Render runs.
package directory

import (
	"errors"
	"fmt"
	"os"

	"github.com/momorph/pwdline/internal/config"
	"github.com/momorph/pwdline/internal/logger"
	"github.com/momorph/pwdline/internal/pathfmt"
)

// HomeSymbol replaces the home directory in rendered paths.
const HomeSymbol = "~"

// EnvShell names the shell that invoked pwdline. Shell init scripts set it.
const EnvShell = "PWDLINE_SHELL"

// ErrNoHome is returned when no home directory is available.
var ErrNoHome = errors.New("home directory is not set")

// Context carries the already-resolved inputs of a render.
type Context struct {
	// LogicalDir is the working directory as the shell reports it.
	LogicalDir string
	// Home is the user's home directory.
	Home string
	// RepoRoot is the root of the enclosing repository, if any.
	RepoRoot string
	// Shell is the name of the invoking shell, if known.
	Shell string
	// Grammar is the path syntax of the paths above.
	Grammar pathfmt.Grammar
	// Getwd returns the physical working directory. Defaults to os.Getwd.
	Getwd func() (string, error)
}

// NewContext builds a Context from the process environment. RepoRoot is
// left empty; repository discovery belongs to the caller.
func NewContext() *Context {
	logical := os.Getenv("PWD")
	if logical == "" {
		if wd, err := os.Getwd(); err == nil {
			logical = wd
		}
	}

	return &Context{
		LogicalDir: logical,
		Home:       config.GetHomeDir(),
		Shell:      os.Getenv(EnvShell),
		Grammar:    pathfmt.HostGrammar(),
		Getwd:      os.Getwd,
	}
}

// Separator returns the separator used to render paths. Shells with POSIX
// path syntax get "/" even on Windows; everything else uses the grammar's
// native separator.
func (c *Context) Separator() string {
	switch c.Shell {
	case "bash", "zsh", "fish":
		return "/"
	}
	return c.Grammar.Separator()
}

// CurrentDir returns the directory to render. The physical directory is only
// consulted when logical is false, and a failure to read it falls back to
// the logical directory.
func (c *Context) CurrentDir(logical bool) string {
	if logical {
		return c.LogicalDir
	}

	getwd := c.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}
	dir, err := getwd()
	if err != nil {
		logger.Debug("Error getting physical current directory: %v", err)
		return c.LogicalDir
	}
	return dir
}

// Segment is a rendered directory together with its display settings.
type Segment struct {
	Value  string
	Style  string
	Prefix string
	Suffix string
}

// Render contracts, truncates and formats the current directory.
func Render(ctx *Context, cfg config.DirectoryConfig) (Segment, error) {
	if ctx.Home == "" {
		return Segment{}, ErrNoHome
	}

	current := ctx.CurrentDir(cfg.UseLogicalPath)
	logger.Debug("Current directory: %s", current)

	full, err := pathfmt.Decompose(current, ctx.Grammar)
	if err != nil {
		return Segment{}, fmt.Errorf("current directory: %w", err)
	}
	home, err := pathfmt.Decompose(ctx.Home, ctx.Grammar)
	if err != nil {
		return Segment{}, fmt.Errorf("home directory: %w", err)
	}

	contracted := contract(ctx, cfg, full, home)

	value := pathfmt.Format(contracted, pathfmt.Options{
		Separator:        ctx.Separator(),
		TruncationLength: cfg.TruncationLength,
		FishStyleLength:  cfg.FishStylePwdDirLength,
	})

	return Segment{
		Value:  value,
		Style:  cfg.Style,
		Prefix: cfg.Prefix,
		Suffix: cfg.Suffix,
	}, nil
}

// contract applies the repository rule when it is enabled and matches, and
// the home rule otherwise. A repository may live inside the home directory,
// so it is tried first.
func contract(ctx *Context, cfg config.DirectoryConfig, full, home pathfmt.Path) pathfmt.Path {
	if cfg.TruncateToRepo && ctx.RepoRoot != "" {
		repo, err := pathfmt.Decompose(ctx.RepoRoot, ctx.Grammar)
		switch {
		case err != nil:
			logger.Debug("Ignoring repository root %q: %v", ctx.RepoRoot, err)
		case repo.Equal(home) || repo.Base() == "":
			// Contracting to the home directory already covers this.
		default:
			if p, ok := pathfmt.Contract(full, repo, repo.Base()); ok {
				return p
			}
		}
	}

	p, _ := pathfmt.Contract(full, home, HomeSymbol)
	return p
}
