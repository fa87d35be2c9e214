package display

import (
	"strings"
	"time"
)

// IconTag is a normalized icon identifier understood by the page templates.
type IconTag string

const (
	IconClearDay     IconTag = "clear-day"
	IconPartlyCloudy IconTag = "partly-cloudy"
	IconCloudy       IconTag = "cloudy"
	IconRain         IconTag = "rain"
	IconFog          IconTag = "fog"
	IconSnow         IconTag = "snow"
	IconThunderstorm IconTag = "thunderstorm"
)

// WeatherRecord is the normalized current-conditions entry. It carries no
// calendar-day stamp: its freshness is governed purely by the active-window
// policy, not by comparison to "today".
type WeatherRecord struct {
	TempC     float64   `json:"tempC"`
	TempF     int       `json:"tempF"`
	WindKmh   float64   `json:"windKmh"`
	WindMph   int       `json:"windMph"`
	WindDeg   int       `json:"windDeg" validate:"min=0,max=359"`
	Icon      IconTag   `json:"icon" validate:"required"`
	FetchedAt time.Time `json:"fetchedAt"`
}

// AstronomyRecord holds sun and moon data for one local calendar day.
type AstronomyRecord struct {
	Sunrise   string `json:"sunrise" validate:"required"`
	Sunset    string `json:"sunset" validate:"required"`
	MoonPhase string `json:"moonPhase"`
	MoonIcon  string `json:"moonIcon"`

	// Day is the local date the record was captured for. The record is
	// current only while Day equals today.
	Day string `json:"day" validate:"omitempty,datetime=2006-01-02"`
}

// TideKind tags a tide extremum as a high or low water event.
type TideKind string

const (
	TideHigh TideKind = "high"
	TideLow  TideKind = "low"
)

// TideEvent is a single tide extremum.
type TideEvent struct {
	Kind   TideKind  `json:"kind" validate:"oneof=high low"`
	Time   time.Time `json:"time"`
	Height float64   `json:"height"` // meters
}

// TideRecord buckets upcoming tide extrema by local calendar day. Each
// bucket is sorted ascending by event time and holds at most MaxTideEvents
// entries. Day stamps the "today" bucket and drives rollover detection.
type TideRecord struct {
	Today    []TideEvent `json:"today" validate:"dive"`
	Tomorrow []TideEvent `json:"tomorrow" validate:"dive"`
	Day      string      `json:"day" validate:"omitempty,datetime=2006-01-02"`
}

// MaxTideEvents caps each tide bucket.
const MaxTideEvents = 4

// Placeholder values keep the rendered pages well-formed on a cold start
// with no credentials and no prior cache.
const (
	PlaceholderTime  = "--:--"
	PlaceholderLabel = "—"
)

// PlaceholderWeather returns the hard-coded weather entry used when no real
// data has ever been fetched.
func PlaceholderWeather(now time.Time) *WeatherRecord {
	return &WeatherRecord{
		TempC:     0,
		TempF:     32,
		Icon:      IconClearDay,
		FetchedAt: now,
	}
}

// PlaceholderAstronomy returns the hard-coded astronomy entry. The empty
// day stamp keeps the entry eligible for replacement at the next refresh
// hour once a credential appears.
func PlaceholderAstronomy() *AstronomyRecord {
	return &AstronomyRecord{
		Sunrise:   PlaceholderTime,
		Sunset:    PlaceholderTime,
		MoonPhase: PlaceholderLabel,
		MoonIcon:  DefaultMoonIcon,
	}
}

// PlaceholderTides returns the hard-coded tide entry with empty buckets.
func PlaceholderTides() *TideRecord {
	return &TideRecord{}
}

// DefaultMoonIcon is used when a moon-phase label is empty or not one of
// the principal phases.
const DefaultMoonIcon = "full-moon"

var moonIcons = map[string]struct{}{
	"new-moon":        {},
	"waxing-crescent": {},
	"first-quarter":   {},
	"waxing-gibbous":  {},
	"full-moon":       {},
	"waning-gibbous":  {},
	"last-quarter":    {},
	"waning-crescent": {},
}

// MoonIcon slugs a moon-phase label (lower-cased, spaces and underscores to
// hyphens) and falls back to DefaultMoonIcon for anything unrecognized.
func MoonIcon(label string) string {
	slug := strings.ToLower(strings.TrimSpace(label))
	slug = strings.ReplaceAll(slug, "_", " ")
	slug = strings.ReplaceAll(slug, " ", "-")
	if _, ok := moonIcons[slug]; !ok {
		return DefaultMoonIcon
	}
	return slug
}
