package pathfmt

import (
	"fmt"
	"strings"
)

// Decompose splits an absolute path into its root and body segments using
// the given grammar.
//
// Empty segments and interior "." segments are dropped, ".." is kept. In
// Windows verbatim paths (\\?\...) only '\' separates components and "." is
// kept. Relative and empty paths are rejected with ErrNotAbsolute and
// ErrEmptyPath; they are never silently resolved.
func Decompose(path string, g Grammar) (Path, error) {
	if path == "" {
		return Path{}, ErrEmptyPath
	}

	if g == GrammarWindows {
		return decomposeWindows(path)
	}
	return decomposePOSIX(path)
}

func decomposePOSIX(path string) (Path, error) {
	if !strings.HasPrefix(path, "/") {
		return Path{}, fmt.Errorf("%w: %s", ErrNotAbsolute, path)
	}

	return Path{
		Root:     Root{RootDir: true},
		Segments: splitBody(path, isPOSIXSep, false),
	}, nil
}

func decomposeWindows(path string) (Path, error) {
	prefix, rest, verbatim := parseWindowsPrefix(path)
	if prefix == nil {
		// \foo is rooted but still drive-relative on Windows.
		return Path{}, fmt.Errorf("%w: %s", ErrNotAbsolute, path)
	}

	isSep := isWindowsSep
	if verbatim {
		isSep = isBackslash
	}

	rootDir := rest != "" && isSep(rest[0])
	if prefix.Kind == PrefixDisk && !rootDir {
		// C:foo is relative to the current directory of drive C.
		return Path{}, fmt.Errorf("%w: %s", ErrNotAbsolute, path)
	}

	return Path{
		Root:     Root{Prefix: prefix, RootDir: rootDir},
		Segments: splitBody(rest, isSep, verbatim),
	}, nil
}

// parseWindowsPrefix recognises the prefix forms of a Windows path and
// returns the prefix, the remainder of the path after it, and whether the
// path is verbatim.
func parseWindowsPrefix(path string) (*Prefix, string, bool) {
	if rest, ok := strings.CutPrefix(path, `\\?\`); ok {
		if rest, ok := strings.CutPrefix(rest, `UNC\`); ok {
			server, rest := nextComponent(rest, isBackslash)
			share, rest := nextComponent(skipSep(rest, isBackslash), isBackslash)
			return &Prefix{Kind: PrefixVerbatimUNC, Server: server, Share: share}, rest, true
		}
		comp, after := nextComponent(rest, isBackslash)
		if drive, ok := parseDrive(comp); ok && len(comp) == 2 {
			return &Prefix{Kind: PrefixVerbatimDisk, Disk: drive}, after, true
		}
		return &Prefix{Kind: PrefixVerbatim, Text: comp}, after, true
	}

	if len(path) >= 2 && isWindowsSep(path[0]) && isWindowsSep(path[1]) {
		rest := path[2:]
		if len(rest) >= 2 && rest[0] == '.' && isWindowsSep(rest[1]) {
			device, after := nextComponent(rest[2:], isWindowsSep)
			return &Prefix{Kind: PrefixDeviceNS, Text: device}, after, false
		}
		server, rest := nextComponent(rest, isWindowsSep)
		share, rest := nextComponent(skipSep(rest, isWindowsSep), isWindowsSep)
		if server == "" || share == "" {
			return nil, path, false
		}
		return &Prefix{Kind: PrefixUNC, Server: server, Share: share}, rest, false
	}

	if drive, ok := parseDrive(path); ok {
		return &Prefix{Kind: PrefixDisk, Disk: drive}, path[2:], false
	}
	return nil, path, false
}

// nextComponent returns the text up to the next separator and the remainder
// after that separator. The returned remainder keeps the separator so
// callers can detect a root directory.
func nextComponent(path string, isSep func(byte) bool) (string, string) {
	for i := 0; i < len(path); i++ {
		if isSep(path[i]) {
			return path[:i], path[i:]
		}
	}
	return path, ""
}

func skipSep(path string, isSep func(byte) bool) string {
	if path != "" && isSep(path[0]) {
		return path[1:]
	}
	return path
}

func parseDrive(s string) (byte, bool) {
	if len(s) < 2 || s[1] != ':' {
		return 0, false
	}
	c := s[0]
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A', true
	case c >= 'A' && c <= 'Z':
		return c, true
	}
	return 0, false
}

func splitBody(path string, isSep func(byte) bool, verbatim bool) []Segment {
	var segs []Segment
	start := 0
	for i := 0; i <= len(path); i++ {
		if i < len(path) && !isSep(path[i]) {
			continue
		}
		part := path[start:i]
		start = i + 1

		switch part {
		case "":
			continue
		case ".":
			if verbatim {
				segs = append(segs, Segment{Kind: CurDir})
			}
		case "..":
			segs = append(segs, Segment{Kind: ParentDir})
		default:
			segs = append(segs, NormalSegment(part))
		}
	}
	return segs
}

func isPOSIXSep(c byte) bool   { return c == '/' }
func isWindowsSep(c byte) bool { return c == '/' || c == '\\' }
func isBackslash(c byte) bool  { return c == '\\' }
