// Package timeutil formats wall-clock timestamps for run logs.
package timeutil

import "time"

// Layout is the timestamp layout, e.g. "2024-03-09 14:05:07".
const Layout = "2006-01-02 15:04:05"

// Now returns the current local time in Layout.
func Now() string {
	return Format(time.Now())
}

// Format renders t in Layout.
func Format(t time.Time) string {
	return t.Format(Layout)
}
