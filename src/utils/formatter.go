package utils

import (
	"fmt"
	"math"
	"strings"
)

type Formatter struct {
}

func (m *Formatter) Round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func (m *Formatter) ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(m.Round(num*output)) / output
}

// FormatPercent renders a share with one decimal place, e.g. 45.2%.
func (m *Formatter) FormatPercent(percent float64) string {
	return fmt.Sprintf("%.1f%%", m.ToFixed(percent, 1))
}

func (m *Formatter) FormatSliceLabel(label string, percent float64) string {
	return fmt.Sprintf("%s %s", label, m.FormatPercent(percent))
}

func (m *Formatter) FormatCurrency(currency string) string {
	if currency == "" {
		return "USD"
	}

	return strings.ToUpper(currency)
}

func (m *Formatter) FormatCompact(value float64) string {
	abs := math.Abs(value)

	switch true {
	case abs >= 1e12:
		return fmt.Sprintf("%.2fT", value/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", value/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", value/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", value/1e3)
	}

	return fmt.Sprintf("%.2f", value)
}
