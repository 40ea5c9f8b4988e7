package render

import (
	"fmt"
	"math"
)

// FormatKm shows whole kilometers, rounded down
func FormatKm(km float64) string {
	return fmt.Sprintf("%d km", int64(math.Floor(km)))
}

// FormatMultiplier shows the multiplier with one decimal
func FormatMultiplier(m float64) string {
	return fmt.Sprintf("x%.1f", m)
}

// FormatCO2 shows kilograms with one decimal
func FormatCO2(kg float64) string {
	return fmt.Sprintf("%.1f kg CO2", kg)
}

// FormatRemaining shows whole seconds left
func FormatRemaining(sec int) string {
	return fmt.Sprintf("%ds", sec)
}
