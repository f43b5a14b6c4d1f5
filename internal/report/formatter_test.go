package report_test

import (
	"testing"

	"github.com/greyskies/nimbus/internal/models"
	"github.com/greyskies/nimbus/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	coords := models.Coordinates{Latitude: 37.7749, Longitude: -122.4194}

	t.Run("fully populated period", func(t *testing.T) {
		temperature := 58
		period := models.ForecastPeriod{
			Name:             "Tonight",
			Temperature:      &temperature,
			TemperatureUnit:  "F",
			ShortForecast:    "Clear",
			WindSpeed:        "5 mph",
			WindDirection:    "W",
			DetailedForecast: "Clear skies.",
		}

		got := report.Format("San Francisco, CA", coords, period)

		want := `
Weather for San Francisco, CA:
Coordinates: 37.7749, -122.4194
Forecast: Tonight
Temperature: 58°F
Conditions: Clear
Wind: 5 mph W
Details: Clear skies.
`
		assert.Equal(t, want, got)
	})

	t.Run("missing fields never abort formatting", func(t *testing.T) {
		got := report.Format("San Francisco, CA", coords, models.ForecastPeriod{})

		assert.Contains(t, got, "Forecast: Unknown\n")
		assert.Contains(t, got, "Temperature: Unknown°Unknown\n")
		assert.Contains(t, got, "Conditions: Unknown\n")
		assert.Contains(t, got, "Wind: Unknown \n")
		assert.Contains(t, got, "Details: No detailed forecast available\n")
	})

	t.Run("missing wind direction leaves empty text", func(t *testing.T) {
		period := models.ForecastPeriod{WindSpeed: "5 mph"}

		got := report.Format("San Francisco, CA", coords, period)

		assert.Contains(t, got, "Wind: 5 mph \n")
	})

	t.Run("formatting is deterministic", func(t *testing.T) {
		temperature := 58
		period := models.ForecastPeriod{Name: "Tonight", Temperature: &temperature}

		first := report.Format("San Francisco, CA", coords, period)
		second := report.Format("San Francisco, CA", coords, period)

		assert.Equal(t, first, second)
	})
}
