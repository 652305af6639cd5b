package security

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func timestampAgo(now time.Time, ago time.Duration) string {
	return strconv.FormatInt(now.Add(-ago).UnixMilli(), 10)
}

func TestCheckSubmitWindow(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		timestamp string
		want      bool
	}{
		{"five seconds ago", timestampAgo(now, 5*time.Second), true},
		{"lower bound inclusive", timestampAgo(now, 3*time.Second), true},
		{"upper bound inclusive", timestampAgo(now, time.Hour), true},
		{"instant submission", timestampAgo(now, 0), false},
		{"just under lower bound", timestampAgo(now, 2900*time.Millisecond), false},
		{"just over upper bound", timestampAgo(now, time.Hour+time.Second), false},
		{"future timestamp", timestampAgo(now, -10*time.Second), false},
		{"unparseable", "not-a-number", false},
		{"empty", "", false},
		{"whitespace padded valid", " " + timestampAgo(now, 10*time.Second) + " ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CheckSubmitWindow(tt.timestamp, now))
		})
	}
}
