package x_log

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
)

//
// ---------- Palette ----------

const (
	ColorTeal40    = "#3ddbd9"
	ColorBlue60    = "#4589ff"
	ColorBlue40    = "#78a9ff"
	ColorBlue70    = "#0043ce"
	ColorBlueBase  = "#0f62fe"
	ColorRed60     = "#da1e28"
	ColorRedStrong = "#ff0000"
	ColorOrange40  = "#ff832b"
	ColorGray60    = "#8d8d8d"
	ColorGray10    = "#f4f4f4"
	ColorGray90    = "#262626"
)

//
// ---------- Styles ----------

// Styles holds the lipgloss styles used by the console writer.
type Styles struct {
	Out             io.Writer
	NoColor         bool
	Timestamp       lipgloss.Style
	Message         lipgloss.Style
	Levels          map[zerolog.Level]lipgloss.Style
	Keys            map[string]lipgloss.Style
	DefaultKeyStyle lipgloss.Style
}

// DefaultStylesByName returns a theme by name ("dark", "light").
func DefaultStylesByName(name string) *Styles {
	switch strings.ToLower(name) {
	case "light":
		return DefaultStylesLight()
	default:
		return DefaultStylesDark()
	}
}

func (s *Styles) render(style lipgloss.Style, text string) string {
	if s.NoColor {
		return text
	}
	return style.Render(text)
}

//
// ---------- Console Formatter ----------

// ConsoleWriterWithStyles builds a zerolog.ConsoleWriter drawing with styles.
func ConsoleWriterWithStyles(styles *Styles) zerolog.ConsoleWriter {
	eq := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))

	return zerolog.ConsoleWriter{
		Out:        styles.Out,
		NoColor:    styles.NoColor,
		TimeFormat: "15:04:05.000",

		FormatLevel: func(i any) string {
			name := strings.ToLower(fmt.Sprint(i))
			lvl, err := zerolog.ParseLevel(name)
			if err != nil {
				lvl = zerolog.NoLevel
			}
			label := strings.ToUpper(name)
			if len(label) > 3 {
				label = label[:3]
			}
			style, ok := styles.Levels[lvl]
			if !ok {
				style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60))
			}
			return styles.render(style.Padding(0, 1), label)
		},

		FormatTimestamp: func(i any) string {
			return styles.render(styles.Timestamp, fmt.Sprintf("[%s]", i))
		},

		FormatFieldName: func(i any) string {
			key := fmt.Sprint(i)
			style, ok := styles.Keys[key]
			if !ok {
				style = styles.DefaultKeyStyle
			}
			return styles.render(style, key) + styles.render(eq, "=")
		},

		FormatMessage: func(i any) string {
			if i == nil {
				return ""
			}
			return styles.render(styles.Message, fmt.Sprint(i))
		},
	}
}

func levelBadges(info string) map[zerolog.Level]lipgloss.Style {
	badge := func(bg string) lipgloss.Style {
		return lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color(bg))
	}
	return map[zerolog.Level]lipgloss.Style{
		zerolog.TraceLevel: badge(ColorGray60),
		zerolog.DebugLevel: badge(ColorTeal40),
		zerolog.InfoLevel:  badge(info),
		zerolog.WarnLevel:  badge(ColorOrange40),
		zerolog.ErrorLevel: badge(ColorRed60),
		zerolog.FatalLevel: badge(ColorRedStrong),
		zerolog.PanicLevel: badge(ColorRedStrong),
	}
}

func fieldKeys(base string) map[string]lipgloss.Style {
	key := lipgloss.NewStyle().Foreground(lipgloss.Color(base))
	return map[string]lipgloss.Style{
		"module":  key.Bold(true),
		"file":    key,
		"run":     key,
		"support": key,
		"elapsed": key,
		"err":     lipgloss.NewStyle().Foreground(lipgloss.Color(ColorRed60)),
	}
}

//
// ---------- Themes ----------

func DefaultStylesDark() *Styles {
	return &Styles{
		Timestamp:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		Message:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray10)),
		DefaultKeyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlue40)),
		Levels:          levelBadges(ColorBlue60),
		Keys:            fieldKeys(ColorBlue40),
	}
}

func DefaultStylesLight() *Styles {
	return &Styles{
		Timestamp:       lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray60)),
		Message:         lipgloss.NewStyle().Foreground(lipgloss.Color(ColorGray90)),
		DefaultKeyStyle: lipgloss.NewStyle().Foreground(lipgloss.Color(ColorBlueBase)),
		Levels:          levelBadges(ColorBlue70),
		Keys:            fieldKeys(ColorBlueBase),
	}
}
