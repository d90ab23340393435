package system

import "strconv"

const gib = 1 << 30

// Gigabytes converts a byte count to GiB rendered with two decimals
func Gigabytes(bytes uint64) string {
	return Float2string(float64(bytes)/gib, 2) + " GB"
}

// Float2string converts float to string with specified precision
func Float2string(f float64, precision int) string {
	return strconv.FormatFloat(f, 'f', precision, 64)
}
