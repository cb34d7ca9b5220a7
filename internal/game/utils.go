package game

import (
	"fmt"
	"time"
)

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// formatDuration formats a duration as MM:SS
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// frameDuration converts a frame count at tps ticks per second into time.
func frameDuration(frames uint64, tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Duration(frames) * time.Second / time.Duration(tps)
}
