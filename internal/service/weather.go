package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/greyskies/nimbus/internal/geocoding"
	"github.com/greyskies/nimbus/internal/metrics"
	"github.com/greyskies/nimbus/internal/models"
	"github.com/greyskies/nimbus/internal/nws"
	"github.com/greyskies/nimbus/internal/report"
)

// Request outcomes used as metric labels.
const (
	outcomeSuccess        = "success"
	outcomeGeocodeFailed  = "geocode_failed"
	outcomeGridFailed     = "grid_failed"
	outcomeForecastFailed = "forecast_failed"
	outcomeNoPeriods      = "no_periods"
	outcomePanic          = "panic"
)

// WeatherService sequences geocoding, grid resolution, and forecast
// retrieval into a single weather report. Every invocation runs its own
// independent pipeline; the service holds no per-request state.
type WeatherService struct {
	log          *slog.Logger       // Logger for logging service activities
	geocoder     geocoding.Provider // Geocoding provider for place-name resolution
	providerName string             // Name of the geocoding provider for metrics labeling
	forecaster   nws.Interface      // National Weather Service client
	metrics      *metrics.Metrics   // Metrics for tracking service performance
}

// NewWeatherService creates a new instance of WeatherService. It takes a
// logger, a geocoding provider, the provider name for metrics, an NWS
// client, and the metric set.
func NewWeatherService(
	log *slog.Logger,
	geocoder geocoding.Provider,
	providerName string,
	forecaster nws.Interface,
	m *metrics.Metrics,
) *WeatherService {
	return &WeatherService{
		log:          log,
		geocoder:     geocoder,
		providerName: providerName,
		forecaster:   forecaster,
		metrics:      m,
	}
}

// GetWeather resolves a city name to a formatted weather report. Every
// outcome is surfaced as returned text, never as an error crossing this
// boundary; even a panic inside the pipeline is rendered as text.
//
// The points lookup is fetched once and reused for both the grid
// reference and the display name.
func (ws *WeatherService) GetWeather(ctx context.Context, city string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			ws.log.ErrorContext(ctx, "Recovered panic in get_weather", "city", city, "panic", rec)
			ws.metrics.RequestsHandled.WithLabelValues(outcomePanic).Inc()
			result = fmt.Sprintf("Unexpected error in get_weather: %v", rec)
		}
	}()

	coords, err := ws.geocode(ctx, city)
	if err != nil {
		ws.log.InfoContext(ctx, "Failed to geocode city", "city", city, "error", err)
		ws.metrics.RequestsHandled.WithLabelValues(outcomeGeocodeFailed).Inc()
		ws.metrics.UpstreamErrors.Inc()
		return "Could not find coordinates for city: " + city
	}

	points, err := ws.points(ctx, *coords)

	var grid models.GridReference
	if err == nil {
		grid, err = points.Grid()
	}
	if err != nil {
		ws.log.InfoContext(ctx, "Failed to resolve weather grid", "city", city, "error", err)
		ws.metrics.RequestsHandled.WithLabelValues(outcomeGridFailed).Inc()
		ws.metrics.UpstreamErrors.Inc()
		return "Could not determine weather grid for this location. " +
			"Please check your city name or try a different city."
	}

	periods, err := ws.forecast(ctx, grid)
	if err != nil {
		ws.log.InfoContext(ctx, "Failed to fetch forecast", "city", city, "grid", grid.ID, "error", err)
		ws.metrics.RequestsHandled.WithLabelValues(outcomeForecastFailed).Inc()
		ws.metrics.UpstreamErrors.Inc()
		return "Failed to retrieve forecast data from URL: " + ws.forecaster.ForecastURL(grid)
	}

	if len(periods) == 0 {
		ws.log.InfoContext(ctx, "Forecast contained no periods", "city", city, "grid", grid.ID)
		ws.metrics.RequestsHandled.WithLabelValues(outcomeNoPeriods).Inc()
		return "No forecast periods available in the API response."
	}

	ws.metrics.RequestsHandled.WithLabelValues(outcomeSuccess).Inc()

	return report.Format(points.DisplayName(city), *coords, periods[0])
}

// geocode resolves the city through the configured provider, recording the
// request duration under the provider's name.
func (ws *WeatherService) geocode(ctx context.Context, city string) (*models.Coordinates, error) {
	start := time.Now()
	coords, err := ws.geocoder.Geocode(ctx, city)
	ws.metrics.UpstreamSeconds.WithLabelValues(ws.providerName).Observe(time.Since(start).Seconds())
	return coords, err
}

func (ws *WeatherService) points(ctx context.Context, coords models.Coordinates) (*nws.PointsResponse, error) {
	start := time.Now()
	points, err := ws.forecaster.Points(ctx, coords)
	ws.metrics.UpstreamSeconds.WithLabelValues("nws_points").Observe(time.Since(start).Seconds())
	return points, err
}

func (ws *WeatherService) forecast(ctx context.Context, grid models.GridReference) ([]models.ForecastPeriod, error) {
	start := time.Now()
	periods, err := ws.forecaster.Forecast(ctx, grid)
	ws.metrics.UpstreamSeconds.WithLabelValues("nws_forecast").Observe(time.Since(start).Seconds())
	return periods, err
}
