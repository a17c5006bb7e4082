package parse

import (
	"strconv"
	"strings"
)

// Device represents a row of "adb devices"
type Device struct {
	Serial string `json:"serial"`
	State  string `json:"state"`
}

// Devices parses "adb devices" output, skipping the header, daemon notices and blank lines
func Devices(output string) []Device {
	var result = make([]Device, 0)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		result = append(result, Device{Serial: fields[0], State: fields[1]})
	}
	return result
}

// LastColonValue returns the text after the last colon, e.g. "Physical size: 1080x1920"
func LastColonValue(output string) (string, bool) {
	output = strings.TrimSpace(output)
	index := strings.LastIndex(output, ":")
	if index == -1 {
		return "", false
	}
	return strings.TrimSpace(output[index+1:]), true
}

// ScreenSize parses "<width>x<height>"
func ScreenSize(value string) (width, height int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(value), "x", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	var err error
	if width, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, false
	}
	if height, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, false
	}
	return width, height, true
}
