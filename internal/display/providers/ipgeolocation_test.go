package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoresign/shoresign/internal/clock"
	"github.com/shoresign/shoresign/internal/display"
)

func TestIPGeolocationMissingKeyIsUnavailable(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	f := NewIPGeolocationFetcher(srv.Client(), "", 0, 0, utcClock(t))
	f.baseURL = srv.URL

	_, err := f.Fetch(context.Background())
	assert.ErrorIs(t, err, display.ErrUnavailable)
	assert.Zero(t, calls, "no network call without a credential")
}

func TestIPGeolocationFetchNormalizes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "secret", r.URL.Query().Get("apiKey"))
		fmt.Fprint(w, `{"sunrise":"06:42","sunset":"19:38","moon_phase":"WAXING_GIBBOUS"}`)
	}))
	defer srv.Close()

	f := NewIPGeolocationFetcher(srv.Client(), "secret", 37.46, -122.43, utcClock(t))
	f.baseURL = srv.URL

	rec, err := f.Fetch(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "06:42", rec.Sunrise)
	assert.Equal(t, "19:38", rec.Sunset)
	assert.Equal(t, "WAXING_GIBBOUS", rec.MoonPhase)
	assert.Equal(t, "waxing-gibbous", rec.MoonIcon)
	assert.Equal(t, time.Now().UTC().Format(clock.DayFormat), rec.Day)
}

func TestIPGeolocationUnknownPhaseGetsDefaultIcon(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"sunrise":"06:42","sunset":"19:38","moon_phase":""}`)
	}))
	defer srv.Close()

	f := NewIPGeolocationFetcher(srv.Client(), "secret", 0, 0, utcClock(t))
	f.baseURL = srv.URL

	rec, err := f.Fetch(context.Background())
	require.NoError(t, err)
	assert.Equal(t, display.DefaultMoonIcon, rec.MoonIcon)
	assert.Equal(t, display.PlaceholderLabel, rec.MoonPhase)
}

func TestIPGeolocationMissingSunTimesFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	f := NewIPGeolocationFetcher(srv.Client(), "secret", 0, 0, utcClock(t))
	f.baseURL = srv.URL

	_, err := f.Fetch(context.Background())
	assert.Error(t, err)
}
