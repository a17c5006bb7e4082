package parse

import "strings"

// Process represents a "ps -A" row
type Process struct {
	User string `json:"user"`
	PID  string `json:"pid"`
	Name string `json:"name"`
}

// Battery parses "dumpsys battery" into snake_case keys
func Battery(output string) map[string]string {
	info := map[string]string{}
	for _, line := range strings.Split(output, "\n") {
		key, value, ok := strings.Cut(strings.TrimSpace(line), ":")
		if !ok {
			continue
		}
		key = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_")
		info[key] = strings.TrimSpace(value)
	}
	return info
}

var wifiFields = []struct {
	marker string
	key    string
}{
	{marker: "SSID:", key: "ssid"},
	{marker: "RSSI:", key: "rssi"},
	{marker: "Link speed:", key: "link_speed"},
}

// Wifi parses the mWifiInfo lines of "dumpsys wifi"
func Wifi(output string) map[string]string {
	info := map[string]string{}
	for _, line := range strings.Split(output, "\n") {
		if !strings.Contains(line, "mWifiInfo") {
			continue
		}
		for _, field := range wifiFields {
			index := strings.Index(line, field.marker)
			if index == -1 {
				continue
			}
			value := line[index+len(field.marker):]
			if comma := strings.Index(value, ","); comma != -1 {
				value = value[:comma]
			}
			info[field.key] = strings.TrimSpace(value)
		}
	}
	return info
}

// RouteSource extracts the source address of "ip route get" output
func RouteSource(output string) (string, bool) {
	index := strings.Index(output, "src")
	if index == -1 {
		return "", false
	}
	fields := strings.Fields(output[index+len("src"):])
	if len(fields) == 0 {
		return "", false
	}
	return fields[0], true
}

// Processes parses "ps -A" output, skipping the header row
func Processes(output string) []Process {
	var result = make([]Process, 0)
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) < 2 {
		return result
	}
	for _, line := range lines[1:] {
		fields := strings.Fields(line)
		if len(fields) < 9 {
			continue
		}
		result = append(result, Process{User: fields[0], PID: fields[1], Name: fields[len(fields)-1]})
	}
	return result
}
