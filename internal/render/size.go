package render

import "fmt"

// sizeUnits are the binary unit suffixes, largest last.
var sizeUnits = [...]string{"B", "K", "M", "G", "T", "P"}

// FormatSize scales bytes by powers of 1024 to the largest unit, up to P, that keeps the value at or above 1, and
// prints it with one decimal place (e.g. "113.0G").
func FormatSize(bytes uint64) string {
	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f%s", value, sizeUnits[unit])
}
