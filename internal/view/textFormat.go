package view

import (
	"fmt"
	"strings"
)

// FitOutputToWidth truncates or pads every line to exactly width
// characters so a redraw fully covers the previous frame.
func FitOutputToWidth(width int, out string) string {
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if len(line) > width {
			lines[i] = line[:width]
		} else {
			lines[i] = fmt.Sprintf("%-*s", width, line)
		}
	}
	return strings.Join(lines, "\n")
}

// FormatByteCount renders a byte count in binary units, e.g. "4.5 MiB".
func FormatByteCount(bytes int) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := unit, 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
