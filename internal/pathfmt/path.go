// Package pathfmt turns absolute filesystem paths into short, prompt-friendly
// strings. It understands both POSIX and Windows path grammars regardless of
// the host it runs on, and performs no I/O.
package pathfmt

import (
	"runtime"
	"strings"
)

// Grammar selects the path syntax used to decompose a path.
type Grammar int

const (
	// GrammarPOSIX treats '/' as the only separator and root.
	GrammarPOSIX Grammar = iota
	// GrammarWindows understands drive letters, UNC shares and verbatim
	// prefixes, and accepts both '\' and '/' as separators.
	GrammarWindows
)

// HostGrammar returns the grammar native to the running OS.
func HostGrammar() Grammar {
	if runtime.GOOS == "windows" {
		return GrammarWindows
	}
	return GrammarPOSIX
}

// Separator returns the native separator for the grammar.
func (g Grammar) Separator() string {
	if g == GrammarWindows {
		return `\`
	}
	return "/"
}

func (g Grammar) String() string {
	if g == GrammarWindows {
		return "windows"
	}
	return "posix"
}

// PrefixKind identifies the flavour of a Windows path prefix.
type PrefixKind int

const (
	// PrefixDisk is a drive letter such as C:.
	PrefixDisk PrefixKind = iota
	// PrefixVerbatimDisk is \\?\C:.
	PrefixVerbatimDisk
	// PrefixUNC is \\server\share.
	PrefixUNC
	// PrefixVerbatimUNC is \\?\UNC\server\share.
	PrefixVerbatimUNC
	// PrefixVerbatim is any other \\?\ path.
	PrefixVerbatim
	// PrefixDeviceNS is a device namespace path such as \\.\COM1.
	PrefixDeviceNS
)

// Prefix is the platform-specific head of a Windows path.
type Prefix struct {
	Kind PrefixKind
	// Disk is the upper-cased drive letter for disk prefixes.
	Disk byte
	// Server and Share are set for UNC prefixes.
	Server string
	Share  string
	// Text is the embedded component of verbatim and device prefixes.
	Text string
}

// Equal reports whether two prefixes name the same root. Drive letters are
// stored upper-cased, so C: and c: are equal.
func (p Prefix) Equal(o Prefix) bool {
	return p == o
}

// Root is the prefix/root-directory group that starts an absolute path.
// The zero value is an empty root, as carried by contracted paths.
type Root struct {
	Prefix  *Prefix
	RootDir bool
}

// IsZero reports whether the root is empty.
func (r Root) IsZero() bool {
	return r.Prefix == nil && !r.RootDir
}

// Equal reports whether two roots are the same.
func (r Root) Equal(o Root) bool {
	if r.RootDir != o.RootDir {
		return false
	}
	if r.Prefix == nil || o.Prefix == nil {
		return r.Prefix == nil && o.Prefix == nil
	}
	return r.Prefix.Equal(*o.Prefix)
}

// SegmentKind identifies a body component.
type SegmentKind int

const (
	// Normal is a named directory or file.
	Normal SegmentKind = iota
	// CurDir is ".".
	CurDir
	// ParentDir is "..".
	ParentDir
)

// Segment is one component of a path body. Prefix and root components live
// in Root and never appear here.
type Segment struct {
	Kind SegmentKind
	Name string
}

// NormalSegment returns a Normal segment named name.
func NormalSegment(name string) Segment {
	return Segment{Kind: Normal, Name: name}
}

func (s Segment) String() string {
	switch s.Kind {
	case CurDir:
		return "."
	case ParentDir:
		return ".."
	default:
		return s.Name
	}
}

// Path is a decomposed path: an optional root followed by body segments.
type Path struct {
	Root     Root
	Segments []Segment
}

// HasPrefix reports whether top is a component-wise prefix of p.
func (p Path) HasPrefix(top Path) bool {
	if !p.Root.Equal(top.Root) || len(top.Segments) > len(p.Segments) {
		return false
	}
	for i, s := range top.Segments {
		if p.Segments[i] != s {
			return false
		}
	}
	return true
}

// Equal reports whether two paths have the same root and segments.
func (p Path) Equal(o Path) bool {
	return len(p.Segments) == len(o.Segments) && p.HasPrefix(o)
}

// Base returns the last Normal segment name, or "" if there is none.
func (p Path) Base() string {
	if n := len(p.Segments); n > 0 && p.Segments[n-1].Kind == Normal {
		return p.Segments[n-1].Name
	}
	return ""
}

// String renders the path with the given separator and no truncation.
func (p Path) String(sep string) string {
	return Format(p, Options{Separator: sep})
}

func joinSegments(segs []Segment, sep string) string {
	parts := make([]string, len(segs))
	for i, s := range segs {
		parts[i] = s.String()
	}
	return strings.Join(parts, sep)
}
