// Package report renders a forecast period into the fixed multi-line
// weather report. Formatting is pure: no I/O, and a missing field never
// aborts the report, it only falls back to a display default.
package report

import (
	"fmt"
	"strconv"

	"github.com/greyskies/nimbus/internal/models"
)

const unknown = "Unknown"

// Format produces the weather report text from the location display name,
// the geocoded coordinates, and the first forecast period.
func Format(locationDisplay string, coords models.Coordinates, period models.ForecastPeriod) string {
	temperature := unknown
	if period.Temperature != nil {
		temperature = strconv.Itoa(*period.Temperature)
	}

	detailed := period.DetailedForecast
	if detailed == "" {
		detailed = "No detailed forecast available"
	}

	return fmt.Sprintf(`
Weather for %s:
Coordinates: %s, %s
Forecast: %s
Temperature: %s°%s
Conditions: %s
Wind: %s %s
Details: %s
`,
		locationDisplay,
		formatCoordinate(coords.Latitude),
		formatCoordinate(coords.Longitude),
		orUnknown(period.Name),
		temperature,
		orUnknown(period.TemperatureUnit),
		orUnknown(period.ShortForecast),
		orUnknown(period.WindSpeed),
		period.WindDirection,
		detailed,
	)
}

func orUnknown(s string) string {
	if s == "" {
		return unknown
	}
	return s
}

func formatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
