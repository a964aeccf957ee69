// Package bytesize formats byte counts for terminal output.
package bytesize

import "fmt"

var units = []struct {
	suffix string
	size   int64
}{
	{"GB", 1 << 30},
	{"MB", 1 << 20},
	{"KB", 1 << 10},
}

// Format renders size with a 1024-based unit, e.g. "1.50MB".
// Negative sizes render as "0B".
func Format(size int64) string {
	if size < 0 {
		size = 0
	}
	for _, u := range units {
		if size >= u.size {
			return fmt.Sprintf("%.2f%s", float64(size)/float64(u.size), u.suffix)
		}
	}
	return fmt.Sprintf("%dB", size)
}
