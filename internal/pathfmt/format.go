package pathfmt

import "strings"

// Ellipsis replaces the elided head of a truncated path.
const Ellipsis = "…"

// Options controls how a path is rendered.
type Options struct {
	// Separator joins rendered components, "/" or "\".
	Separator string
	// TruncationLength is the number of trailing segments to keep. Zero
	// keeps all of them.
	TruncationLength int
	// FishStyleLength, when positive, renders the elided head as
	// abbreviations of this many grapheme clusters instead of an ellipsis.
	FishStyleLength int
}

// Format renders p according to opts.
func Format(p Path, opts Options) string {
	sep := opts.Separator
	if sep == "" {
		sep = "/"
	}

	var b strings.Builder
	b.WriteString(FormatRoot(p.Root, sep, len(p.Segments) > 0))

	head, tail := Truncate(p.Segments, opts.TruncationLength)
	if len(head) > 0 {
		if opts.FishStyleLength > 0 {
			b.WriteString(strings.Join(Abbreviate(head, opts.FishStyleLength), sep))
		} else {
			b.WriteString(Ellipsis)
		}
		b.WriteString(sep)
	}
	b.WriteString(joinSegments(tail, sep))

	return b.String()
}

// FormatRoot renders the prefix and root directory of a path. hasBody
// reports whether segments follow; a POSIX-style drive (/c) drops its
// trailing separator when nothing follows it.
func FormatRoot(r Root, sep string, hasBody bool) string {
	var b strings.Builder
	if r.Prefix != nil {
		b.WriteString(FormatPrefix(*r.Prefix, sep))
	}
	if r.RootDir {
		if r.Prefix != nil && !hasBody && isDisk(r.Prefix.Kind) && sep == "/" {
			return b.String()
		}
		b.WriteString(sep)
	}
	return b.String()
}

// FormatPrefix renders a Windows path prefix using sep.
//
// Drive letters are lower-cased. With a '\' separator they render as c:;
// with '/' they render as /c, the way MSYS and Git Bash name drives. UNC
// shares render as sep sep server sep share. Verbatim and device prefixes
// keep their embedded text.
func FormatPrefix(p Prefix, sep string) string {
	switch p.Kind {
	case PrefixDisk, PrefixVerbatimDisk:
		letter := string(lower(p.Disk))
		if strings.HasPrefix(sep, "/") {
			return "/" + letter
		}
		return letter + ":"
	case PrefixUNC, PrefixVerbatimUNC:
		return sep + sep + p.Server + sep + p.Share
	default:
		return p.Text
	}
}

func isDisk(k PrefixKind) bool {
	return k == PrefixDisk || k == PrefixVerbatimDisk
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
