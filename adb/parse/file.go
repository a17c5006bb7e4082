package parse

import "strings"

// File represents an "ls -la" entry
type File struct {
	Permissions string `json:"permissions"`
	Size        string `json:"size"`
	Date        string `json:"date"`
	Name        string `json:"name"`
	IsDir       bool   `json:"is_dir"`
}

// Files parses toybox "ls -la" output; rows with fewer than eight columns are skipped
func Files(output string) []File {
	var result = make([]File, 0)
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 8 {
			continue
		}
		result = append(result, File{
			Permissions: fields[0],
			Size:        fields[4],
			Date:        fields[5] + " " + fields[6],
			Name:        strings.Join(fields[7:], " "),
			IsDir:       strings.HasPrefix(fields[0], "d"),
		})
	}
	return result
}
