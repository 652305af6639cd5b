package security

import (
	"strconv"
	"strings"
	"time"
)

// Submission window for the render-to-submit heuristic. Anything faster than
// MinSubmitDelay is treated as an automated instant submission, anything
// slower than MaxSubmitDelay as a stale or replayed form render. This is a
// heuristic requiring no server-side state, not a security control.
const (
	MinSubmitDelay = 3 * time.Second
	MaxSubmitDelay = time.Hour
)

// CheckSubmitWindow reports whether a client-supplied render timestamp
// (epoch milliseconds) falls inside the plausible human-interaction window
// relative to now. The interval is closed on both ends. An unparseable
// timestamp is a rejection.
func CheckSubmitWindow(timestamp string, now time.Time) bool {
	sent, err := strconv.ParseInt(strings.TrimSpace(timestamp), 10, 64)
	if err != nil || sent <= 0 {
		return false
	}
	elapsedMs := now.UnixMilli() - sent
	return elapsedMs >= MinSubmitDelay.Milliseconds() && elapsedMs <= MaxSubmitDelay.Milliseconds()
}
