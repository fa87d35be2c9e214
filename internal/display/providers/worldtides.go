package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/sony/gobreaker"

	"github.com/shoresign/shoresign/internal/clock"
	"github.com/shoresign/shoresign/internal/display"
)

// WorldTidesFetcher reads tide extrema from the WorldTides API. The primary
// query covers local midnight today through the end of tomorrow; if that
// yields nothing it retries once with a rolling window around now. A
// successful response with zero extrema produces an empty-but-present
// record so the day stamp still advances and the policy stops re-querying
// for the rest of the day.
type WorldTidesFetcher struct {
	baseURL  string
	apiKey   string
	lat, lon float64
	clock    *clock.Clock
	httpCfg  HTTPClientConfig
	circuit  *gobreaker.CircuitBreaker
}

func NewWorldTidesFetcher(client *http.Client, apiKey string, lat, lon float64, ck *clock.Clock) *WorldTidesFetcher {
	return &WorldTidesFetcher{
		baseURL: "https://www.worldtides.info/api/v3",
		apiKey:  apiKey,
		lat:     lat,
		lon:     lon,
		clock:   ck,
		httpCfg: HTTPClientConfig{Client: client, Backoff: defaultBackoff()},
		circuit: newBreaker("worldtides"),
	}
}

func (f *WorldTidesFetcher) Fetch(ctx context.Context) (*display.TideRecord, error) {
	if f.apiKey == "" {
		return nil, fmt.Errorf("tides: %w: no api key", display.ErrUnavailable)
	}

	now := f.clock.Now()
	loc := f.clock.Location()
	midnight := time.Date(now.Time.Year(), now.Time.Month(), now.Time.Day(), 0, 0, 0, 0, loc)

	// Primary window: today and tomorrow, anchored at local midnight.
	events, err := f.query(ctx, midnight, 48*time.Hour)
	if err != nil || len(events) == 0 {
		// Rolling fallback window around now.
		fallback, ferr := f.query(ctx, now.Time.Add(-12*time.Hour), 60*time.Hour)
		if ferr != nil {
			if err != nil {
				return nil, err
			}
			return nil, ferr
		}
		events = fallback
	}

	return f.bucket(events, now), nil
}

type tideExtreme struct {
	DT     int64   `json:"dt"`
	Height float64 `json:"height"`
	Type   string  `json:"type"`
}

func (f *WorldTidesFetcher) query(ctx context.Context, start time.Time, length time.Duration) ([]tideExtreme, error) {
	buildRequest := func() (*http.Request, error) {
		values := url.Values{}
		values.Set("extremes", "")
		values.Set("key", f.apiKey)
		values.Set("lat", fmt.Sprintf("%f", f.lat))
		values.Set("lon", fmt.Sprintf("%f", f.lon))
		values.Set("start", strconv.FormatInt(start.Unix(), 10))
		values.Set("length", strconv.FormatInt(int64(length.Seconds()), 10))
		return http.NewRequest(http.MethodGet, f.baseURL+"?"+values.Encode(), nil)
	}

	resp, err := doRequest(ctx, f.httpCfg, f.circuit, buildRequest)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var payload struct {
		Status   int           `json:"status"`
		Error    string        `json:"error"`
		Extremes []tideExtreme `json:"extremes"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode worldtides response: %w", err)
	}
	if payload.Status != 0 && payload.Status != http.StatusOK {
		return nil, fmt.Errorf("worldtides status %d: %s", payload.Status, payload.Error)
	}
	return payload.Extremes, nil
}

// bucket partitions extrema by each event's own local calendar day,
// sorts ascending, and caps each bucket.
func (f *WorldTidesFetcher) bucket(events []tideExtreme, now clock.Snapshot) *display.TideRecord {
	loc := f.clock.Location()
	tomorrow := now.Time.AddDate(0, 0, 1).Format(clock.DayFormat)

	rec := &display.TideRecord{Day: now.Day}
	for _, e := range events {
		t := time.Unix(e.DT, 0).In(loc)
		ev := display.TideEvent{
			Kind:   tideKind(e.Type),
			Time:   t,
			Height: e.Height,
		}
		switch t.Format(clock.DayFormat) {
		case now.Day:
			rec.Today = append(rec.Today, ev)
		case tomorrow:
			rec.Tomorrow = append(rec.Tomorrow, ev)
		}
	}

	sortAndCap(&rec.Today)
	sortAndCap(&rec.Tomorrow)
	return rec
}

func sortAndCap(events *[]display.TideEvent) {
	sort.Slice(*events, func(i, j int) bool {
		return (*events)[i].Time.Before((*events)[j].Time)
	})
	if len(*events) > display.MaxTideEvents {
		*events = (*events)[:display.MaxTideEvents]
	}
}

func tideKind(s string) display.TideKind {
	if strings.EqualFold(s, "High") {
		return display.TideHigh
	}
	return display.TideLow
}
