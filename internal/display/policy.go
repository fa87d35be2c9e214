package display

import "github.com/shoresign/shoresign/internal/clock"

// Refresh hours, local time. Astronomy turns over with the display day at
// 06:00; tides refresh at 02:00, ahead of the display day and in a
// low-traffic hour. If the external trigger skips the exact hour the record
// simply serves stale until the next day's matching hour.
const (
	astronomyRefreshHour = 6
	tideRefreshHour      = 2
)

// ShouldFetchWeather reports whether the weather source is due. Weather is
// refreshed on every invocation inside the active window; overnight the
// last known value is shown, unless the cache is completely cold.
func ShouldFetchWeather(now clock.Snapshot, cached *WeatherRecord) bool {
	return now.ActiveWindow() || cached == nil
}

// ShouldFetchAstronomy reports whether the astronomy source is due.
// Sunrise/sunset/moon data changes once per day, so the refresh is pinned
// to the 06:00 hour and guarded by the day stamp so the half-hourly trigger
// does not fetch twice within the same hour.
func ShouldFetchAstronomy(now clock.Snapshot, cached *AstronomyRecord, force bool) bool {
	if force || cached == nil {
		return true
	}
	return now.Hour == astronomyRefreshHour && cached.Day != now.Day
}

// ShouldFetchTides reports whether the tide source is due. Same shape as
// astronomy, pinned to the 02:00 hour.
func ShouldFetchTides(now clock.Snapshot, cached *TideRecord, force bool) bool {
	if force || cached == nil {
		return true
	}
	return now.Hour == tideRefreshHour && cached.Day != now.Day
}
