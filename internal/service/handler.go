package service

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/greyskies/nimbus/internal/tools"
)

// getWeatherParams are the tool parameters of get_weather.
type getWeatherParams struct {
	City string `json:"city"`
}

// GetWeatherHandler exposes GetWeather as a tool handler. Pipeline
// failures are not transport failures: they arrive as text inside the
// report field of a successful envelope.
func (ws *WeatherService) GetWeatherHandler() http.HandlerFunc {
	return func(writer http.ResponseWriter, req *http.Request) {
		var params getWeatherParams
		if err := json.NewDecoder(req.Body).Decode(&params); err != nil {
			tools.WriteError(writer, http.StatusBadRequest, "invalid JSON body")
			return
		}

		if strings.TrimSpace(params.City) == "" {
			tools.WriteError(writer, http.StatusBadRequest, "city is required")
			return
		}

		weatherReport := ws.GetWeather(req.Context(), params.City)
		tools.WriteData(writer, map[string]string{"report": weatherReport})
	}
}
