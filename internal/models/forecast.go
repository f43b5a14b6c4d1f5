package models

// GridReference addresses forecast data inside the National Weather Service
// tiling scheme: a forecast office code plus X/Y offsets within its grid.
type GridReference struct {
	ID string // Forecast office identifier, e.g. "MTR".
	X  int    // Grid X offset.
	Y  int    // Grid Y offset.
}

// ForecastPeriod is one discrete time window (e.g. "Tonight", "Monday")
// of a forecast response. Every field is optional on the wire; absent
// fields decode to their zero value and the report layer substitutes
// display defaults.
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      *int   `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	ShortForecast    string `json:"shortForecast"`
	DetailedForecast string `json:"detailedForecast"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
}
