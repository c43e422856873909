package util

import (
	"testing"
	"time"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "0.00s"},
		{900 * time.Millisecond, "0.90s"},
		{9500 * time.Millisecond, "9.50s"},
		{10 * time.Second, "0:10"},
		{125 * time.Second, "2:05"},
	}
	for _, tt := range tests {
		if got := FormatDuration(tt.in); got != tt.want {
			t.Fatalf("FormatDuration(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
