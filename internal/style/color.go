package style

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/young1lin/tablo/internal/grid/config"
)

const sentinel = "X"

// ColorSpec describes a text style by lipgloss color names: ANSI numbers
// ("9"), 256-color numbers ("208") or hex ("#ff8800").
type ColorSpec struct {
	Fg        string `yaml:"fg"`
	Bg        string `yaml:"bg"`
	Bold      bool   `yaml:"bold"`
	Italic    bool   `yaml:"italic"`
	Underline bool   `yaml:"underline"`
}

// IsZero reports whether s sets nothing.
func (s ColorSpec) IsZero() bool { return s == ColorSpec{} }

// Resolve renders s with the given color profile and splits the escape
// sequences around the text into a prefix and a suffix. The Ascii profile
// yields the zero Color.
func (s ColorSpec) Resolve(profile termenv.Profile) config.Color {
	if s.IsZero() {
		return config.Color{}
	}

	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)

	st := r.NewStyle().Bold(s.Bold).Italic(s.Italic).Underline(s.Underline)
	if s.Fg != "" {
		st = st.Foreground(lipgloss.Color(s.Fg))
	}
	if s.Bg != "" {
		st = st.Background(lipgloss.Color(s.Bg))
	}

	out := st.Render(sentinel)
	i := strings.Index(out, sentinel)
	if i < 0 {
		return config.Color{}
	}
	return config.Color{Prefix: out[:i], Suffix: out[i+len(sentinel):]}
}

// Foreground is a shorthand for a ColorSpec with only a foreground color.
func Foreground(name string, profile termenv.Profile) config.Color {
	return ColorSpec{Fg: name}.Resolve(profile)
}
