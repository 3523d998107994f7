package timeutil

import (
	"strconv"
	"time"
)

// Millis returns the epoch milliseconds for t.
func Millis(t time.Time) int64 {
	return t.UnixMilli()
}

// FormatMillis renders t as stringified epoch milliseconds, the shape the
// cache timestamp key stores.
func FormatMillis(t time.Time) string {
	return strconv.FormatInt(t.UnixMilli(), 10)
}

// ParseMillis parses stringified epoch milliseconds.
func ParseMillis(value string) (time.Time, error) {
	ms, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms), nil
}
