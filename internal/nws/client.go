package nws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/greyskies/nimbus/internal/models"
)

// API Docs: https://www.weather.gov/documentation/services-web-api
// Sample requests:
// - https://api.weather.gov/points/37.7749,-122.4194
// - https://api.weather.gov/gridpoints/MTR/85,105/forecast

// Interface describes the National Weather Service operations the
// orchestrator depends on. The concrete Client satisfies it; tests
// substitute mocks.
type Interface interface {
	Points(ctx context.Context, coords models.Coordinates) (*PointsResponse, error)
	Forecast(ctx context.Context, grid models.GridReference) ([]models.ForecastPeriod, error)
	ForecastURL(grid models.GridReference) string
}

// HTTPClient defines the interface for making HTTP requests.
// This allows for easy mocking in tests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Common errors for the NWS client.
var (
	ErrPointsUnavailable   = errors.New("failed to retrieve points data")
	ErrGridIncomplete      = errors.New("grid information is missing")
	ErrForecastUnavailable = errors.New("failed to retrieve forecast data")
)

// Client talks to the National Weather Service API.
type Client struct {
	client    HTTPClient   // HTTP client for making requests
	baseURL   string       // Base URL for the NWS API
	userAgent string       // Identifying header sent with every request
	log       *slog.Logger // Logger for logging operations
}

// NewClient creates a National Weather Service client. The base URL and
// User-Agent are injected from configuration; the timeout bounds every call.
func NewClient(baseURL, userAgent string, timeout time.Duration, log *slog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL:   baseURL,
		userAgent: userAgent,
		log:       log,
	}
}

// NewClientWithClient creates an NWS client with a custom HTTP client.
// Useful for testing with mocked HTTP clients.
func NewClientWithClient(client HTTPClient, baseURL, userAgent string, log *slog.Logger) *Client {
	return &Client{
		client:    client,
		baseURL:   baseURL,
		userAgent: userAgent,
		log:       log,
	}
}

// PointsResponse is the subset of a points lookup the pipeline reads.
type PointsResponse struct {
	Properties struct {
		GridID           string `json:"gridId"`
		GridX            int    `json:"gridX"`
		GridY            int    `json:"gridY"`
		RelativeLocation struct {
			Properties struct {
				City  string `json:"city"`
				State string `json:"state"`
			} `json:"properties"`
		} `json:"relativeLocation"`
	} `json:"properties"`
}

// forecastResponse is the subset of a gridpoints forecast the pipeline reads.
type forecastResponse struct {
	Properties struct {
		Periods []models.ForecastPeriod `json:"periods"`
	} `json:"properties"`
}

// Points fetches the points lookup for the given coordinates. Latitude and
// longitude are rounded to 4 decimal places before they are placed in the
// request path. Any transport, status, or decode failure is reported as
// ErrPointsUnavailable.
func (c *Client) Points(ctx context.Context, coords models.Coordinates) (*PointsResponse, error) {
	pointsURL := fmt.Sprintf("%s/points/%s,%s",
		c.baseURL, formatCoordinate(coords.Latitude), formatCoordinate(coords.Longitude))

	var resp PointsResponse
	if err := c.get(ctx, pointsURL, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPointsUnavailable, err)
	}

	return &resp, nil
}

// Grid extracts the grid reference from a points response. All three fields
// must be present; a partial reference is never returned.
func (p *PointsResponse) Grid() (models.GridReference, error) {
	props := p.Properties
	if props.GridID == "" || props.GridX == 0 || props.GridY == 0 {
		return models.GridReference{}, ErrGridIncomplete
	}

	return models.GridReference{ID: props.GridID, X: props.GridX, Y: props.GridY}, nil
}

// DisplayName returns a human-friendly "City, State" label from the points
// response's relative location, or the fallback text when the city is absent.
func (p *PointsResponse) DisplayName(fallback string) string {
	loc := p.Properties.RelativeLocation.Properties
	if loc.City == "" {
		return fallback
	}

	state := loc.State
	if state == "" {
		state = "Unknown"
	}

	return loc.City + ", " + state
}

// ForecastURL builds the gridpoints forecast URL for a grid reference.
func (c *Client) ForecastURL(grid models.GridReference) string {
	return fmt.Sprintf("%s/gridpoints/%s/%d,%d/forecast", c.baseURL, grid.ID, grid.X, grid.Y)
}

// Forecast fetches the forecast for a grid reference and returns its ordered
// periods. An empty period list is a legitimate response, not an error.
func (c *Client) Forecast(ctx context.Context, grid models.GridReference) ([]models.ForecastPeriod, error) {
	forecastURL := c.ForecastURL(grid)

	var resp forecastResponse
	if err := c.get(ctx, forecastURL, &resp); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}

	return resp.Properties.Periods, nil
}

// get issues one GET request with the NWS headers and decodes the JSON body.
func (c *Client) get(ctx context.Context, rawURL string, out any) error {
	c.log.DebugContext(ctx, "NWS request", "url", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.log.ErrorContext(ctx, "NWS API error", "url", rawURL, "status", resp.StatusCode, "body", string(body))
		return fmt.Errorf("NWS API returned status %d: %s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err = json.Unmarshal(body, out); err != nil {
		c.log.ErrorContext(ctx, "Failed to parse NWS response", "url", rawURL, "error", err)
		return fmt.Errorf("failed to decode NWS response: %w", err)
	}

	return nil
}

// formatCoordinate rounds a coordinate to 4 decimal places and trims
// trailing zeros, e.g. 39.73923580 -> "39.7392", 40.5 -> "40.5".
func formatCoordinate(v float64) string {
	const scale = 10000
	return strconv.FormatFloat(math.Round(v*scale)/scale, 'f', -1, 64)
}
