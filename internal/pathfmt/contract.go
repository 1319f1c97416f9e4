package pathfmt

// Contract replaces top in full with token.
//
// The match is component-wise: full must have the same root as top and start
// with all of top's segments, so /home/bob2 never contracts under /home/bob.
// On a match the returned path is rootless and starts with a Normal segment
// holding token, followed by whatever segments of full remain below top. An
// empty token drops the matched part without a replacement. When full is not
// top or one of its descendants, it is returned unchanged and ok is false.
//
// Contracted paths are rootless, so contracting one again is a no-op.
func Contract(full, top Path, token string) (Path, bool) {
	if top.Root.IsZero() || !full.HasPrefix(top) {
		return full, false
	}

	rest := full.Segments[len(top.Segments):]
	segs := make([]Segment, 0, len(rest)+1)
	if token != "" {
		segs = append(segs, NormalSegment(token))
	}
	segs = append(segs, rest...)

	return Path{Segments: segs}, true
}
