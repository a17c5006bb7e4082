package parse

import "strings"

// Packages parses "pm list packages" output
func Packages(output string) []string {
	var result = make([]string, 0)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if name, ok := strings.CutPrefix(line, "package:"); ok && name != "" {
			result = append(result, name)
		}
	}
	return result
}

// AppInfo parses "dumpsys package <name>" output; later entries override earlier ones
func AppInfo(packageName, output string) map[string]string {
	info := map[string]string{"package": packageName}
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch key {
		case "versionName":
			info["version_name"] = value
		case "versionCode":
			if fields := strings.Fields(value); len(fields) > 0 {
				info["version_code"] = fields[0]
			}
		case "firstInstallTime":
			info["first_install"] = value
		case "lastUpdateTime":
			info["last_update"] = value
		}
	}
	return info
}
