package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ErrUnknownStyle is returned for style tokens ParseStyle does not know.
var ErrUnknownStyle = errors.New("unknown style token")

var namedColors = map[string]int{
	"black":  0,
	"red":    1,
	"green":  2,
	"yellow": 3,
	"blue":   4,
	"purple": 5,
	"cyan":   6,
	"white":  7,
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// NewRenderer returns a lipgloss renderer for prompt output. Prompt output
// is captured by the shell rather than written to a terminal, so the colour
// profile is forced instead of detected: Ascii when colored is false,
// otherwise TrueColor when COLORTERM advertises it and ANSI256 otherwise.
func NewRenderer(w io.Writer, colored bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch {
	case !colored:
		r.SetColorProfile(termenv.Ascii)
	case os.Getenv("COLORTERM") == "truecolor" || os.Getenv("COLORTERM") == "24bit":
		r.SetColorProfile(termenv.TrueColor)
	default:
		r.SetColorProfile(termenv.ANSI256)
	}
	return r
}

// ParseStyle turns a whitespace-separated style string such as
// "bold fg:#ff8800 bg:black" into a lipgloss style.
//
// Recognised tokens are bold, italic, underline, dimmed, inverted, blink,
// strikethrough and none, plus colours given as a name (optionally
// "bright-" prefixed), an ANSI number from 0 to 255 or #rrggbb. A bare
// colour sets the foreground; fg: and bg: select explicitly.
func ParseStyle(r *lipgloss.Renderer, value string) (lipgloss.Style, error) {
	style := r.NewStyle()

	for _, token := range strings.Fields(strings.ToLower(value)) {
		switch token {
		case "none":
			style = r.NewStyle()
		case "bold":
			style = style.Bold(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "dimmed":
			style = style.Faint(true)
		case "inverted":
			style = style.Reverse(true)
		case "blink":
			style = style.Blink(true)
		case "strikethrough":
			style = style.Strikethrough(true)
		default:
			if bg, ok := strings.CutPrefix(token, "bg:"); ok {
				color, err := parseColor(bg)
				if err != nil {
					return style, err
				}
				style = style.Background(color)
				continue
			}

			color, err := parseColor(strings.TrimPrefix(token, "fg:"))
			if err != nil {
				return style, err
			}
			style = style.Foreground(color)
		}
	}

	return style, nil
}

func parseColor(token string) (lipgloss.Color, error) {
	if hexColor.MatchString(token) {
		return lipgloss.Color(token), nil
	}

	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 || n > 255 {
			return "", fmt.Errorf("%w: color %d out of range", ErrUnknownStyle, n)
		}
		return lipgloss.Color(token), nil
	}

	name, bright := strings.CutPrefix(token, "bright-")
	if n, ok := namedColors[name]; ok {
		if bright {
			n += 8
		}
		return lipgloss.Color(strconv.Itoa(n)), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownStyle, token)
}
