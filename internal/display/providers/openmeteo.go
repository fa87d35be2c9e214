package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"github.com/shoresign/shoresign/internal/display"
)

// OpenMeteoFetcher reads current conditions from Open-Meteo, which needs no
// API key.
type OpenMeteoFetcher struct {
	baseURL  string
	lat, lon float64
	httpCfg  HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

func NewOpenMeteoFetcher(client *http.Client, lat, lon float64) *OpenMeteoFetcher {
	return &OpenMeteoFetcher{
		baseURL: "https://api.open-meteo.com/v1/forecast",
		lat:     lat,
		lon:     lon,
		httpCfg: HTTPClientConfig{Client: client, Backoff: defaultBackoff()},
		circuit: newBreaker("openmeteo"),
	}
}

func (f *OpenMeteoFetcher) Fetch(ctx context.Context) (*display.WeatherRecord, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("latitude", fmt.Sprintf("%f", f.lat))
		values.Set("longitude", fmt.Sprintf("%f", f.lon))
		values.Set("current_weather", "true")
		return http.NewRequest(http.MethodGet, f.baseURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequest(ctx, f.httpCfg, f.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		CurrentWeather struct {
			Temperature   float64 `json:"temperature"`
			WindSpeed     float64 `json:"windspeed"`
			WindDirection float64 `json:"winddirection"`
			WeatherCode   int     `json:"weathercode"`
			Time          string  `json:"time"`
		} `json:"current_weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode openmeteo response: %w", err)
	}

	cw := payload.CurrentWeather

	ts, err := time.Parse("2006-01-02T15:04", cw.Time)
	if err != nil {
		ts = time.Now()
	}

	deg := int(math.Round(cw.WindDirection)) % 360
	if deg < 0 {
		deg += 360
	}

	return &display.WeatherRecord{
		TempC:   cw.Temperature,
		TempF:   fahrenheit(cw.Temperature),
		WindKmh: cw.WindSpeed,
		WindMph: mph(cw.WindSpeed),
		WindDeg: deg,
		Icon:    mapWeatherCode(cw.WeatherCode),
		// FetchedAt records when the reading was captured.
		FetchedAt: ts.UTC(),
	}, nil
}

// fahrenheit rounds after conversion, not before.
func fahrenheit(c float64) int {
	return int(math.Round(c*9/5 + 32))
}

// mph rounds after conversion, not before.
func mph(kmh float64) int {
	return int(math.Round(kmh * 0.621371))
}

// mapWeatherCode maps Open-Meteo WMO weather codes onto the closed icon
// set. Anything unmapped defaults to clear-day.
func mapWeatherCode(code int) display.IconTag {
	switch {
	case code == 0:
		return display.IconClearDay
	case code == 1 || code == 2:
		return display.IconPartlyCloudy
	case code == 3:
		return display.IconCloudy
	case code == 45 || code == 48:
		return display.IconFog
	case (code >= 51 && code <= 67) || (code >= 80 && code <= 82):
		return display.IconRain
	case (code >= 71 && code <= 77) || code == 85 || code == 86:
		return display.IconSnow
	case code >= 95 && code <= 99:
		return display.IconThunderstorm
	default:
		return display.IconClearDay
	}
}
