// Package util holds small formatting helpers shared by the CLI
// driver, trimmed down from toy-spice/pkg/util to the one formatter
// the nanowire domain still has a use for: engineering-notation values
// for volts and seconds. The frequency/magnitude/phase formatters
// toy-spice carries for AC analysis have no AC sweep to format here
// and were dropped.
package util

import (
	"fmt"
	"math"
)

// FormatValueFactor renders value in engineering notation with the
// given unit suffix, e.g. FormatValueFactor(0.0025, "V") -> "2.500 mV".
func FormatValueFactor(value float64, unit string) string {
	absValue := math.Abs(value)
	switch {
	case absValue == 0, absValue >= 1:
		return fmt.Sprintf("%.3f %s", value, unit)
	case absValue >= 1e-3:
		return fmt.Sprintf("%.3f m%s", value*1e3, unit)
	case absValue >= 1e-6:
		return fmt.Sprintf("%.3f u%s", value*1e6, unit)
	case absValue >= 1e-9:
		return fmt.Sprintf("%.3f n%s", value*1e9, unit)
	case absValue >= 1e-12:
		return fmt.Sprintf("%.3f p%s", value*1e12, unit)
	default:
		return fmt.Sprintf("%.3e %s", value, unit)
	}
}
