// Package format renders durations and dates the way the room shows them
package format

import (
	"fmt"
	"math"
	"time"
)

// Time renders seconds as m:ss. Zero, negative and NaN become 0:00.
func Time(seconds float64) string {
	if math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds <= 0 {
		return "0:00"
	}
	mins := int(seconds / 60)
	secs := int(math.Mod(seconds, 60))
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// Duration is Time for a time.Duration.
func Duration(d time.Duration) string {
	return Time(d.Seconds())
}

// Date renders t like "Jan 2, 2006".
func Date(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
