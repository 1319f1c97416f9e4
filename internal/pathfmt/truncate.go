package pathfmt

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Truncate splits segs into an elided head and the tail that stays visible.
// The tail holds the last length segments. A length of zero, or one at least
// as large as len(segs), elides nothing.
func Truncate(segs []Segment, length int) (head, tail []Segment) {
	if length <= 0 || length >= len(segs) {
		return nil, segs
	}
	cut := len(segs) - length
	return segs[:cut], segs[cut:]
}

// Abbreviate shortens each segment to its first n grapheme clusters, the way
// fish shows $PWD. Segments no longer than n clusters are kept whole. Hidden
// directories keep one extra cluster so the leading dot does not use up the
// budget (.config becomes .c for n = 1). "." and ".." are never shortened.
func Abbreviate(segs []Segment, n int) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		if s.Kind != Normal {
			out[i] = s.String()
			continue
		}
		out[i] = abbreviateName(s.Name, n)
	}
	return out
}

func abbreviateName(name string, n int) string {
	if n <= 0 || uniseg.GraphemeClusterCount(name) <= n {
		return name
	}
	if strings.HasPrefix(name, ".") {
		n++
	}

	var (
		b     strings.Builder
		rest  = name
		state = -1
	)
	for i := 0; i < n && rest != ""; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		b.WriteString(cluster)
	}
	return b.String()
}
