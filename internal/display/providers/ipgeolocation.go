package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/sony/gobreaker"

	"github.com/shoresign/shoresign/internal/clock"
	"github.com/shoresign/shoresign/internal/display"
)

// IPGeolocationFetcher reads sunrise/sunset and moon phase from the
// ipgeolocation.io astronomy endpoint. A missing API key degrades the
// source to unavailable instead of erroring.
type IPGeolocationFetcher struct {
	baseURL  string
	apiKey   string
	lat, lon float64
	clock    *clock.Clock
	httpCfg  HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

func NewIPGeolocationFetcher(client *http.Client, apiKey string, lat, lon float64, ck *clock.Clock) *IPGeolocationFetcher {
	return &IPGeolocationFetcher{
		baseURL: "https://api.ipgeolocation.io/astronomy",
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		clock:   ck,
		httpCfg: HTTPClientConfig{Client: client, Backoff: defaultBackoff()},
		circuit: newBreaker("ipgeolocation"),
	}
}

func (f *IPGeolocationFetcher) Fetch(ctx context.Context) (*display.AstronomyRecord, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("astronomy: %w: no api key", display.ErrUnavailable)
	}

	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("apiKey", f.apiKey)
		values.Set("lat", fmt.Sprintf("%f", f.lat))
		values.Set("long", fmt.Sprintf("%f", f.lon))
		return http.NewRequest(http.MethodGet, f.baseURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequest(ctx, f.httpCfg, f.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Sunrise   string `json:"sunrise"`
		Sunset    string `json:"sunset"`
		MoonPhase string `json:"moon_phase"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode astronomy response: %w", err)
	}
	if payload.Sunrise == "" || payload.Sunset == "" {
		return nil, fmt.Errorf("astronomy response missing sun times")
	}

	phase := payload.MoonPhase
	rec := &display.AstronomyRecord{
		Sunrise:   payload.Sunrise,
		Sunset:    payload.Sunset,
		MoonPhase: phase,
		MoonIcon:  display.MoonIcon(phase),
		Day:       f.clock.Now().Day,
	}
	if rec.MoonPhase == "" {
		rec.MoonPhase = display.PlaceholderLabel
	}
	return rec, nil
}
