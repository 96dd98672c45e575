package call

import "fmt"

// FormatDuration renders elapsed seconds as MM:SS, or HH:MM:SS from one hour
// on. Every component is zero-padded to two digits. Negative input is
// treated as zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	secs := seconds % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}
