package util

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration as m:ss, or with two decimals when it
// is shorter than ten seconds.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d < 10*time.Second {
		return fmt.Sprintf("%.2fs", d.Seconds())
	}
	total := int(d.Seconds())
	m := total / 60
	s := total % 60
	return fmt.Sprintf("%d:%02d", m, s)
}
