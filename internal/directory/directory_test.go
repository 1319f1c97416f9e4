package directory

import (
	"errors"
	"testing"

	"github.com/momorph/pwdline/internal/config"
	"github.com/momorph/pwdline/internal/pathfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func posixContext(dir string) *Context {
	return &Context{
		LogicalDir: dir,
		Home:       "/Users/astronaut",
		Grammar:    pathfmt.GrammarPOSIX,
		Getwd: func() (string, error) {
			return "", errors.New("getwd should not be called")
		},
	}
}

func defaultDirectoryConfig() config.DirectoryConfig {
	return config.DefaultConfig().Directory
}

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		repoRoot string
		modify   func(*config.DirectoryConfig)
		want     string
	}{
		{
			name: "home directory",
			dir:  "/Users/astronaut",
			want: "~",
		},
		{
			name:   "home subdirectory without truncation",
			dir:    "/Users/astronaut/schematics/rocket",
			modify: func(c *config.DirectoryConfig) { c.TruncationLength = 0 },
			want:   "~/schematics/rocket",
		},
		{
			name: "truncated with ellipsis",
			dir:  "/Users/astronaut/dev/a/b/c",
			want: "…/a/b/c",
		},
		{
			name:   "fish style",
			dir:    "/Users/astronaut/starship/engines/booster/rocket",
			modify: func(c *config.DirectoryConfig) { c.FishStylePwdDirLength = 1 },
			want:   "~/s/engines/booster/rocket",
		},
		{
			name: "outside home",
			dir:  "/usr/local/share/man",
			want: "/…/local/share/man",
		},
		{
			name: "root",
			dir:  "/",
			want: "/",
		},
		{
			name: "sibling of home is not contracted",
			dir:  "/Users/astronaut2",
			want: "/Users/astronaut2",
		},
		{
			name:     "repository root",
			dir:      "/Users/astronaut/dev/rocket-controls/src",
			repoRoot: "/Users/astronaut/dev/rocket-controls",
			want:     "rocket-controls/src",
		},
		{
			name:     "repository root with truncation",
			dir:      "/Users/astronaut/dev/rocket-controls/src/engine/fuel/pump",
			repoRoot: "/Users/astronaut/dev/rocket-controls",
			modify:   func(c *config.DirectoryConfig) { c.FishStylePwdDirLength = 1 },
			want:     "r/s/engine/fuel/pump",
		},
		{
			name:     "repository contraction disabled",
			dir:      "/Users/astronaut/dev/rocket-controls/src",
			repoRoot: "/Users/astronaut/dev/rocket-controls",
			modify:   func(c *config.DirectoryConfig) { c.TruncateToRepo = false },
			want:     "~/dev/rocket-controls/src",
		},
		{
			name:     "repository is the home directory",
			dir:      "/Users/astronaut/notes",
			repoRoot: "/Users/astronaut",
			want:     "~/notes",
		},
		{
			name:     "outside the repository falls back to home",
			dir:      "/Users/astronaut/music",
			repoRoot: "/Users/astronaut/dev/rocket-controls",
			want:     "~/music",
		},
		{
			name:     "unusable repository root is ignored",
			dir:      "/Users/astronaut/music",
			repoRoot: "relative/repo",
			want:     "~/music",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := posixContext(tt.dir)
			ctx.RepoRoot = tt.repoRoot

			cfg := defaultDirectoryConfig()
			if tt.modify != nil {
				tt.modify(&cfg)
			}

			seg, err := Render(ctx, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seg.Value)
			assert.Equal(t, cfg.Style, seg.Style)
			assert.Equal(t, cfg.Prefix, seg.Prefix)
			assert.Equal(t, cfg.Suffix, seg.Suffix)
		})
	}
}

func TestRender_PhysicalPath(t *testing.T) {
	ctx := posixContext("/Users/astronaut/link")
	ctx.Getwd = func() (string, error) {
		return "/Volumes/data/projects", nil
	}

	cfg := defaultDirectoryConfig()
	cfg.UseLogicalPath = false

	seg, err := Render(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "/Volumes/data/projects", seg.Value)
}

func TestRender_PhysicalPathFallsBackToLogical(t *testing.T) {
	ctx := posixContext("/Users/astronaut/link")
	ctx.Getwd = func() (string, error) {
		return "", errors.New("getcwd: no such file or directory")
	}

	cfg := defaultDirectoryConfig()
	cfg.UseLogicalPath = false

	seg, err := Render(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, "~/link", seg.Value)
}

func TestRender_Errors(t *testing.T) {
	cfg := defaultDirectoryConfig()

	ctx := posixContext("/tmp")
	ctx.Home = ""
	_, err := Render(ctx, cfg)
	assert.ErrorIs(t, err, ErrNoHome)

	_, err = Render(posixContext("relative/dir"), cfg)
	assert.ErrorIs(t, err, pathfmt.ErrNotAbsolute)

	_, err = Render(posixContext(""), cfg)
	assert.ErrorIs(t, err, pathfmt.ErrEmptyPath)

	ctx = posixContext("/tmp")
	ctx.Home = "~"
	_, err = Render(ctx, cfg)
	assert.ErrorIs(t, err, pathfmt.ErrNotAbsolute)
}

func TestRender_Windows(t *testing.T) {
	tests := []struct {
		name   string
		shell  string
		dir    string
		length int
		want   string
	}{
		{name: "native separator", dir: `C:\Users\astronaut\dev\rocket`, want: `~\dev\rocket`},
		{name: "powershell", shell: "powershell", dir: `C:\Users\astronaut\dev`, want: `~\dev`},
		{name: "bash forces forward slashes", shell: "bash", dir: `C:\Projects\rocket`, want: "/c/Projects/rocket"},
		{name: "unc share", dir: `\\fileserver\team\docs\specs`, length: 1, want: `\\fileserver\team\…\specs`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := &Context{
				LogicalDir: tt.dir,
				Home:       `C:\Users\astronaut`,
				Shell:      tt.shell,
				Grammar:    pathfmt.GrammarWindows,
			}
			cfg := defaultDirectoryConfig()
			cfg.TruncationLength = tt.length

			seg, err := Render(ctx, cfg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, seg.Value)
		})
	}
}

func TestContext_Separator(t *testing.T) {
	tests := []struct {
		shell   string
		grammar pathfmt.Grammar
		want    string
	}{
		{shell: "bash", grammar: pathfmt.GrammarWindows, want: "/"},
		{shell: "zsh", grammar: pathfmt.GrammarWindows, want: "/"},
		{shell: "fish", grammar: pathfmt.GrammarWindows, want: "/"},
		{shell: "powershell", grammar: pathfmt.GrammarWindows, want: `\`},
		{shell: "", grammar: pathfmt.GrammarWindows, want: `\`},
		{shell: "", grammar: pathfmt.GrammarPOSIX, want: "/"},
	}

	for _, tt := range tests {
		ctx := &Context{Shell: tt.shell, Grammar: tt.grammar}
		assert.Equal(t, tt.want, ctx.Separator(), "shell=%q grammar=%s", tt.shell, tt.grammar)
	}
}

func TestNewContext(t *testing.T) {
	t.Setenv("PWD", "/srv/app")
	t.Setenv(EnvShell, "fish")

	ctx := NewContext()
	assert.Equal(t, "/srv/app", ctx.LogicalDir)
	assert.Equal(t, "fish", ctx.Shell)
	assert.Equal(t, pathfmt.HostGrammar(), ctx.Grammar)
	assert.NotNil(t, ctx.Getwd)
	assert.Empty(t, ctx.RepoRoot)
}
