package ui

import (
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/momorph/pwdline/internal/directory"
)

var ansiEscape = regexp.MustCompile(`\x1b\[[0-9;:]*[A-Za-z]`)

// RenderSegment styles seg.Value with seg.Style and surrounds it with the
// unstyled prefix and suffix. Escape sequences are wrapped for shell so the
// shell does not count them towards the prompt width.
func RenderSegment(r *lipgloss.Renderer, seg directory.Segment, shell string) (string, error) {
	style, err := ParseStyle(r, seg.Style)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(seg.Prefix)
	b.WriteString(style.Render(seg.Value))
	b.WriteString(seg.Suffix)

	return WrapEscapes(b.String(), shell), nil
}

// bashEscaper doubles backslashes and quotes the characters bash expands
// when it redraws PS1 with promptvars set. A single pass keeps the
// backslashes it inserts from being doubled again.
var bashEscaper = strings.NewReplacer(`\`, `\\`, "$", `\$`, "`", "\\`")

// WrapEscapes marks ANSI escape sequences as zero-width for bash (\[ \]) and
// zsh (%{ %}), and escapes characters those shells would otherwise decode
// or expand in a prompt string. Other shells get s unchanged.
func WrapEscapes(s, shell string) string {
	var begin, end string
	switch shell {
	case "bash":
		s = bashEscaper.Replace(s)
		begin, end = `\[`, `\]`
	case "zsh":
		s = strings.ReplaceAll(s, "%", "%%")
		begin, end = "%{", "%}"
	default:
		return s
	}

	return ansiEscape.ReplaceAllStringFunc(s, func(seq string) string {
		return begin + seq + end
	})
}
