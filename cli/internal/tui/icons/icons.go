// ABOUTME: Icon system with Nerd Font detection and Unicode fallback
// ABOUTME: Provides consistent iconography across different terminal capabilities

package icons

import (
	"os"
	"strings"
	"sync"
)

var (
	nerdOnce sync.Once
	nerd     bool
)

// nerdTerminals usually ship with a patched font
var nerdTerminals = []string{"iterm.app", "alacritty", "wezterm", "kitty", "ghostty"}

// detectNerdFonts honours LEDWALL_NERD_FONTS, then guesses from the terminal
func detectNerdFonts(getenv func(string) string) bool {
	if v := getenv("LEDWALL_NERD_FONTS"); v != "" {
		return v == "1" || strings.EqualFold(v, "true")
	}
	seen := strings.ToLower(getenv("TERM_PROGRAM") + " " + getenv("TERM"))
	for _, t := range nerdTerminals {
		if strings.Contains(seen, t) {
			return true
		}
	}
	return false
}

// HasNerdFonts reports whether icons render as Nerd Font glyphs
func HasNerdFonts() bool {
	nerdOnce.Do(func() { nerd = detectNerdFonts(os.Getenv) })
	return nerd
}

// Icon represents an icon with Nerd Font and Unicode fallback variants
type Icon struct {
	NerdFont string
	Fallback string
}

// String returns the appropriate icon based on font availability
func (i Icon) String() string {
	if HasNerdFonts() {
		return i.NerdFont
	}
	return i.Fallback
}

// Icon definitions - Nerd Font codepoints with Unicode fallbacks
var (
	// Wall figures
	Resolution = Icon{"󰍹", "▦"} // nf-md-monitor
	Power      = Icon{"󱐋", "ϟ"} // nf-md-lightning_bolt
	Weight     = Icon{"󰖡", "▼"} // nf-md-weight
	Cabinet    = Icon{"󰆧", "□"} // nf-md-cube_outline
	Curve      = Icon{"󰘦", "◠"} // nf-md-vector_curve
	Processor  = Icon{"", "▣"} // nf-oct-cpu
	Port       = Icon{"󰈀", "⇌"} // nf-md-ethernet

	// Status indicators
	CheckOK  = Icon{"", "✓"} // nf-oct-check_circle
	Warning  = Icon{"", "⚠"} // nf-oct-alert
	Critical = Icon{"", "✗"} // nf-oct-x_circle
	Info     = Icon{"", "ℹ"} // nf-oct-info

	// Actions
	Edit    = Icon{"󰏫", "✎"} // nf-md-pencil
	Advisor = Icon{"󰭹", "?"} // nf-md-chat_question
	Back    = Icon{"󰁍", "←"} // nf-md-arrow_left
	Quit    = Icon{"󰗼", "×"} // nf-md-exit_to_app

	// Application
	App      = Icon{"󰍹", "◈"} // nf-md-monitor
	Settings = Icon{"󰒓", "⚙"} // nf-md-cog
)
