package fsutils

import "strconv"

// GetSizeShortText returns a compact human readable size string, rounded to
// the nearest unit and capped at TB.
func GetSizeShortText(size int64) string {
	const unit = 1024
	if size < unit {
		return strconv.FormatInt(size, 10) + "B"
	}
	div, exp := int64(unit), 0
	for n := size / unit; n >= unit && exp < 3; n /= unit {
		div *= unit
		exp++
	}
	val := (size + div/2) / div
	// Rounding up can push the value into the next unit
	if val >= unit && exp < 3 {
		val /= unit
		exp++
	}
	units := []string{"KB", "MB", "GB", "TB"}
	if exp >= len(units) {
		exp = len(units) - 1
	}
	return strconv.FormatInt(val, 10) + units[exp]
}
