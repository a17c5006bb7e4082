package parse

import "strings"

// App represents the focused application component
type App struct {
	Package  string `json:"package"`
	Activity string `json:"activity"`
}

var focusMarkers = []string{"mCurrentFocus", "mFocusedApp"}

// FocusedApp scans "dumpsys window windows" output for the first focus line that
// carries a package/activity token. Later focus lines are not consulted once a
// token was extracted.
func FocusedApp(output string) (*App, bool) {
	for _, line := range strings.Split(output, "\n") {
		if !hasFocusMarker(line) || !strings.Contains(line, "/") {
			continue
		}
		for _, token := range strings.Fields(line) {
			if !strings.Contains(token, "/") || !strings.Contains(token, ".") {
				continue
			}
			parts := strings.Split(strings.TrimRight(token, "}"), "/")
			return &App{Package: parts[0], Activity: parts[1]}, true
		}
	}
	return nil, false
}

func hasFocusMarker(line string) bool {
	for _, marker := range focusMarkers {
		if strings.Contains(line, marker) {
			return true
		}
	}
	return false
}
