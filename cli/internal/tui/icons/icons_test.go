package icons

import "testing"

func TestDetectNerdFonts(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want bool
	}{
		{"nothing set", nil, false},
		{"explicit on", map[string]string{"LEDWALL_NERD_FONTS": "true"}, true},
		{"explicit off beats terminal", map[string]string{"LEDWALL_NERD_FONTS": "0", "TERM_PROGRAM": "WezTerm"}, false},
		{"known terminal program", map[string]string{"TERM_PROGRAM": "iTerm.app"}, true},
		{"known TERM", map[string]string{"TERM": "xterm-kitty"}, true},
		{"plain xterm", map[string]string{"TERM": "xterm-256color"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(k string) string { return tt.env[k] }
			if got := detectNerdFonts(getenv); got != tt.want {
				t.Errorf("detectNerdFonts() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIconFallback(t *testing.T) {
	nerdOnce.Do(func() {})
	nerd = false
	if got := Curve.String(); got != "◠" {
		t.Errorf("Curve fallback = %q, want ◠", got)
	}
}
