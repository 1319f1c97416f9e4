package pathfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecompose(t *testing.T, path string, g Grammar) Path {
	t.Helper()
	p, err := Decompose(path, g)
	require.NoError(t, err)
	return p
}

func names(segs ...string) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		switch s {
		case ".":
			out[i] = Segment{Kind: CurDir}
		case "..":
			out[i] = Segment{Kind: ParentDir}
		default:
			out[i] = NormalSegment(s)
		}
	}
	return out
}

func TestDecompose_POSIX(t *testing.T) {
	tests := []struct {
		name string
		path string
		want []Segment
	}{
		{name: "root", path: "/", want: nil},
		{name: "simple", path: "/usr/local/bin", want: names("usr", "local", "bin")},
		{name: "repeated and trailing separators", path: "//usr//local/", want: names("usr", "local")},
		{name: "interior dot dropped", path: "/usr/./bin", want: names("usr", "bin")},
		{name: "parent kept", path: "/usr/../bin", want: names("usr", "..", "bin")},
		{name: "backslash is a name character", path: `/tmp/a\b`, want: names(`a\b`)},
		{name: "unicode", path: "/home/目录/café", want: names("home", "目录", "café")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustDecompose(t, tt.path, GrammarPOSIX)
			assert.Nil(t, p.Root.Prefix)
			assert.True(t, p.Root.RootDir)
			assert.Equal(t, tt.want, p.Segments)
		})
	}
}

func TestDecompose_Windows(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		prefix  Prefix
		rootDir bool
		want    []Segment
	}{
		{
			name:    "drive",
			path:    `C:\Users\astronaut`,
			prefix:  Prefix{Kind: PrefixDisk, Disk: 'C'},
			rootDir: true,
			want:    names("Users", "astronaut"),
		},
		{
			name:    "lower-case drive with forward slashes",
			path:    "c:/Users/astronaut",
			prefix:  Prefix{Kind: PrefixDisk, Disk: 'C'},
			rootDir: true,
			want:    names("Users", "astronaut"),
		},
		{
			name:    "drive root",
			path:    `D:\`,
			prefix:  Prefix{Kind: PrefixDisk, Disk: 'D'},
			rootDir: true,
		},
		{
			name:    "verbatim disk",
			path:    `\\?\C:\Users\.\astronaut`,
			prefix:  Prefix{Kind: PrefixVerbatimDisk, Disk: 'C'},
			rootDir: true,
			want:    names("Users", ".", "astronaut"),
		},
		{
			name:    "verbatim disk keeps forward slashes in names",
			path:    `\\?\C:\a/b`,
			prefix:  Prefix{Kind: PrefixVerbatimDisk, Disk: 'C'},
			rootDir: true,
			want:    names("a/b"),
		},
		{
			name:    "unc",
			path:    `\\server\share\projects\rocket`,
			prefix:  Prefix{Kind: PrefixUNC, Server: "server", Share: "share"},
			rootDir: true,
			want:    names("projects", "rocket"),
		},
		{
			name:   "unc share only",
			path:   `\\server\share`,
			prefix: Prefix{Kind: PrefixUNC, Server: "server", Share: "share"},
		},
		{
			name:    "verbatim unc",
			path:    `\\?\UNC\server\share\projects`,
			prefix:  Prefix{Kind: PrefixVerbatimUNC, Server: "server", Share: "share"},
			rootDir: true,
			want:    names("projects"),
		},
		{
			name:   "device namespace",
			path:   `\\.\COM1`,
			prefix: Prefix{Kind: PrefixDeviceNS, Text: "COM1"},
		},
		{
			name:    "verbatim",
			path:    `\\?\pictures\holiday`,
			prefix:  Prefix{Kind: PrefixVerbatim, Text: "pictures"},
			rootDir: true,
			want:    names("holiday"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustDecompose(t, tt.path, GrammarWindows)
			require.NotNil(t, p.Root.Prefix)
			assert.Equal(t, tt.prefix, *p.Root.Prefix)
			assert.Equal(t, tt.rootDir, p.Root.RootDir)
			assert.Equal(t, tt.want, p.Segments)
		})
	}
}

func TestDecompose_Errors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		grammar Grammar
		wantErr error
	}{
		{name: "empty posix", path: "", grammar: GrammarPOSIX, wantErr: ErrEmptyPath},
		{name: "empty windows", path: "", grammar: GrammarWindows, wantErr: ErrEmptyPath},
		{name: "relative posix", path: "src/main.go", grammar: GrammarPOSIX, wantErr: ErrNotAbsolute},
		{name: "tilde is not a root", path: "~/src", grammar: GrammarPOSIX, wantErr: ErrNotAbsolute},
		{name: "windows path under posix", path: `C:\Users`, grammar: GrammarPOSIX, wantErr: ErrNotAbsolute},
		{name: "drive relative", path: "C:foo", grammar: GrammarWindows, wantErr: ErrNotAbsolute},
		{name: "rooted without drive", path: `\Users`, grammar: GrammarWindows, wantErr: ErrNotAbsolute},
		{name: "incomplete unc", path: `\\server`, grammar: GrammarWindows, wantErr: ErrNotAbsolute},
		{name: "relative windows", path: `Users\astronaut`, grammar: GrammarWindows, wantErr: ErrNotAbsolute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decompose(tt.path, tt.grammar)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGrammar_Separator(t *testing.T) {
	assert.Equal(t, "/", GrammarPOSIX.Separator())
	assert.Equal(t, `\`, GrammarWindows.Separator())
	assert.Equal(t, "posix", GrammarPOSIX.String())
	assert.Equal(t, "windows", GrammarWindows.String())
}

func TestPath_Base(t *testing.T) {
	assert.Equal(t, "rocket-controls", mustDecompose(t, "/dev/rocket-controls", GrammarPOSIX).Base())
	assert.Equal(t, "", mustDecompose(t, "/", GrammarPOSIX).Base())
	assert.Equal(t, "", mustDecompose(t, "/dev/..", GrammarPOSIX).Base())
}
