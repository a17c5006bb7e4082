package parse

import (
	"regexp"
	"strings"
)

const (
	packageMarker = "pkg="
	titleMarker   = "android.title="
	textMarker    = "android.text="
)

// Notification represents a posted notification
type Notification struct {
	Package string `json:"package,omitempty"`
	Title   string `json:"title,omitempty"`
	Text    string `json:"text,omitempty"`
}

func (n *Notification) empty() bool {
	return n.Package == "" && n.Title == "" && n.Text == ""
}

// typedValue matches extras rendered as "String (value)"
var typedValue = regexp.MustCompile(`^[A-Za-z]+ \((.*)\)$`)

// Notifications parses "dumpsys notification --noredact" output.
//
// A line with a pkg= marker starts a new record (the previous one is kept when
// non-empty); title and text lines fill the current record.
func Notifications(output string) []Notification {
	var result = make([]Notification, 0)
	current := Notification{}
	for _, line := range strings.Split(output, "\n") {
		switch {
		case strings.Contains(line, packageMarker):
			if !current.empty() {
				result = append(result, current)
			}
			current = Notification{}
			for _, field := range strings.Fields(line) {
				if strings.HasPrefix(field, packageMarker) {
					current.Package = field[len(packageMarker):]
				}
			}
		case strings.Contains(line, titleMarker):
			current.Title = extraValue(line, titleMarker)
		case strings.Contains(line, textMarker):
			current.Text = extraValue(line, textMarker)
		}
	}
	if !current.empty() {
		result = append(result, current)
	}
	return result
}

func extraValue(line, marker string) string {
	value := strings.TrimSpace(line[strings.LastIndex(line, marker)+len(marker):])
	if match := typedValue.FindStringSubmatch(value); match != nil {
		return match[1]
	}
	return value
}
