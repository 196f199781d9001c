package service

import "fmt"

// formatStride renders a stride length in centimeters with one decimal
func formatStride(cm float64) string {
	return fmt.Sprintf("%.1f cm", cm)
}
